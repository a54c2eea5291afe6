package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medicamentos-api/internal/domain"
	apphttp "github.com/tu-usuario/medicamentos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUID   = "uid-001"
	testEmail = "enfermeria@hospital.test"
)

// fakeVerifier acepta un único token conocido; con err configurado siempre
// devuelve ese error (simula el proveedor de identidad caído).
type fakeVerifier struct {
	tokenValido string
	err         error
}

func (v *fakeVerifier) Verify(_ context.Context, idToken string) (string, string, error) {
	if v.err != nil {
		return "", "", v.err
	}
	if idToken == v.tokenValido {
		return testUID, testEmail, nil
	}
	return "", "", domain.ErrUnauthorized
}

func buildTestApp(verifier apphttp.TokenVerifier) *fiber.App {
	app := fiber.New()
	app.Post("/protected", apphttp.AuthMiddleware(verifier), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"user_email": apphttp.GetUserEmail(c),
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildTestApp(&fakeVerifier{tokenValido: "token-ok"})
	resp := doRequest(t, app, "Bearer token-ok")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUID, body["user_id"])
	assert.Equal(t, testEmail, body["user_email"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeVerifier{tokenValido: "token-ok"})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeVerifier{tokenValido: "token-ok"})
	resp := doRequest(t, app, "token-ok") // sin prefijo Bearer
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenRechazado_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeVerifier{tokenValido: "token-ok"})
	resp := doRequest(t, app, "Bearer token-robado")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Sin proveedor de identidad el token podría ser válido y no hay contra qué
// verificarlo: 503, no 401.
func TestAuthMiddleware_ProveedorCaido_Retorna503(t *testing.T) {
	app := buildTestApp(&fakeVerifier{err: domain.ErrStoreNoDisponible})
	resp := doRequest(t, app, "Bearer token-ok")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "AUTH_NO_DISPONIBLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireStore — modo degradado sin base de datos
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireStore_ConStoreDejaPasar(t *testing.T) {
	app := fiber.New()
	app.Get("/datos", apphttp.RequireStore(func() bool { return true }), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datos", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireStore_SinStore_Retorna503(t *testing.T) {
	app := fiber.New()
	app.Get("/datos", apphttp.RequireStore(func() bool { return false }), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datos", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "BD_NO_DISPONIBLE")
}
