package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jcastellanos/almacen-api/internal/interfaces/http"
	pkgjwt "github.com/jcastellanos/almacen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "maria"
	testIssuer    = "almacen-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con una ruta API
// protegida y una ruta web protegida (que redirige en lugar de responder 401).
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
		})
	})
	app.Get("/web", apphttp.WebAuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app
}

// validToken genera un JWT firmado con el secreto de test.
func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware (API)
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido en header Bearer → 200 con los claims en locals.
func TestAuthMiddleware_BearerValido(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))

	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
}

// Caso 2: token válido en la cookie de sesión → 200 (es lo que usa la web).
func TestAuthMiddleware_CookieValida(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: validToken(t)})

	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: sin token → 401 JSON.
func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)

	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token malformado → 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")

	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token firmado con otro secreto → 401.
func TestAuthMiddleware_SecretoDistinto_Retorna401(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, testUsername, testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests WebAuthMiddleware (rutas web)
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión, la web redirige al formulario de login en vez de responder 401.
func TestWebAuthMiddleware_SinSesion_RedirigeALogin(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/web", nil)

	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
}

func TestWebAuthMiddleware_ConCookie_Pasa(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/web", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: validToken(t)})

	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
