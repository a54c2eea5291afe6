// Package firebaseauth verifica tokens Bearer contra Firebase Authentication
// (el proveedor de identidad externo del sistema).
package firebaseauth

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/tu-usuario/medicamentos-api/internal/domain"
)

// Verifier implementa http.TokenVerifier con el Admin SDK de Firebase.
type Verifier struct {
	auth *auth.Client
}

// NewVerifier construye el verificador. client nil deja el verificador en modo
// degradado: todo token se rechaza (no hay proveedor contra quien validar).
func NewVerifier(client *auth.Client) *Verifier {
	return &Verifier{auth: client}
}

// Verify valida el ID token y devuelve uid y email del principal.
func (v *Verifier) Verify(ctx context.Context, idToken string) (uid, email string, err error) {
	if v.auth == nil {
		return "", "", domain.ErrStoreNoDisponible
	}
	tok, err := v.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if e, ok := tok.Claims["email"].(string); ok {
		email = e
	}
	return tok.UID, email, nil
}
