// Package firestore implementa los puertos de persistencia sobre Cloud
// Firestore (colecciones "medicamentos" y "movimientos"). La verificación de
// stock de las salidas corre dentro de una transacción de Firestore.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/tu-usuario/medicamentos-api/pkg/config"
)

// Nombres de colecciones.
const (
	colMedicamentos = "medicamentos"
	colMovimientos  = "movimientos"
)

// Store agrupa los clientes de Firebase. Con credenciales ausentes el servicio
// arranca en modo degradado: Client es nil y los endpoints de datos responden
// 503 (guard en interfaces/http).
type Store struct {
	Client *firestore.Client
	Auth   *auth.Client
}

// Disponible indica si hay conexión con Firestore.
func (s *Store) Disponible() bool {
	return s != nil && s.Client != nil
}

// Close libera el cliente de Firestore.
func (s *Store) Close() error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Close()
}

// NewStore inicializa Firebase con las credenciales de servicio del entorno.
// FIREBASE_CONFIG vacío no es un error: devuelve un Store degradado.
func NewStore(ctx context.Context, cfg config.FirebaseConfig) (*Store, error) {
	if cfg.CredentialsJSON == "" {
		return &Store{}, nil
	}

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}
	app, err := firebase.NewApp(ctx, fbCfg, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("inicializar firebase: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("cliente firestore: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cliente auth: %w", err)
	}
	return &Store{Client: client, Auth: authClient}, nil
}
