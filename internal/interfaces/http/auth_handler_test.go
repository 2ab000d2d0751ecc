package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/almacen-api/internal/application/auth"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	apphttp "github.com/jcastellanos/almacen-api/internal/interfaces/http"
)

// fakeUserRepo UserRepository en memoria para los tests del handler.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.Username] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.users[username], nil
}
func (f *fakeUserRepo) UpdatePassword(userID, hash string) error { return nil }
func (f *fakeUserRepo) List(int, int) ([]*entity.User, error)    { return nil, nil }

// buildAuthApp app con login/logout públicos y una ruta protegida, como el
// router real.
func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-de-maria"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"maria": {ID: testUserID, Username: "maria", PasswordHash: string(hash), IsActive: true},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	handler := apphttp.NewAuthHandler(uc, testExpMin)

	app := fiber.New()
	app.Get("/auth/login", handler.LoginPage)
	app.Post("/auth/login", handler.Login)
	app.Post("/auth/logout", handler.Logout)
	app.Get("/", apphttp.WebAuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app
}

func decodeJSON(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

// sessionCookie extrae la cookie de sesión de la respuesta (nil si no viene).
func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.SessionCookie {
			return ck
		}
	}
	return nil
}

// Ciclo completo: login deja la cookie, la cookie abre el dashboard,
// logout la invalida y el dashboard vuelve a redirigir al login.
func TestLogin_CicloDeSesionCompleto(t *testing.T) {
	app := buildAuthApp(t)

	// 1. Sin sesión: el dashboard redirige al login.
	resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	// 2. Login correcto: 200 y cookie HTTP-only con el token.
	body := strings.NewReader(`{"username":"maria","password":"clave-de-maria"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp = doRequest(t, app, req)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ck := sessionCookie(resp)
	require.NotNil(t, ck, "el login debe dejar la cookie de sesión")
	assert.True(t, ck.HttpOnly, "la cookie debe ser HTTP-only")
	assert.NotEmpty(t, ck.Value)

	// 3. Con la cookie, el dashboard responde.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	resp = doRequest(t, app, req)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// 4. Logout: la cookie vuelve expirada (el navegador la descarta).
	resp = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cleared := sessionCookie(resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value, "el logout debe vaciar la cookie")
}

// Credenciales incorrectas: 401 con mensaje genérico que no revela si el
// usuario existe.
func TestLogin_CredencialesInvalidas_MensajeGenerico(t *testing.T) {
	app := buildAuthApp(t)

	for _, payload := range []string{
		`{"username":"maria","password":"incorrecta"}`,
		`{"username":"no-existe","password":"clave-de-maria"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp := doRequest(t, app, req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Nil(t, sessionCookie(resp), "no debe dejarse cookie en un login fallido")

		var out map[string]string
		require.NoError(t, decodeJSON(resp, &out))
		assert.Equal(t, "credenciales inválidas", out["message"])
		resp.Body.Close()
	}
}

func TestLogin_SinCredenciales_Retorna400(t *testing.T) {
	app := buildAuthApp(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// GET /auth/login sirve el formulario HTML al que redirigen las rutas web.
func TestLogin_PaginaDeFormulario(t *testing.T) {
	app := buildAuthApp(t)

	resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body := new(strings.Builder)
	_, err := io.Copy(body, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), `action="/auth/login"`)
	assert.Contains(t, body.String(), `name="password"`)
	assert.NotContains(t, body.String(), "credenciales inválidas", "sin ?error no hay aviso")
}

// El formulario clásico urlencoded entra al dashboard con un redirect; si las
// credenciales fallan vuelve a la página con el aviso genérico y sin cookie.
func TestLogin_FormularioURLEncoded(t *testing.T) {
	app := buildAuthApp(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader("username=maria&password=clave-de-maria"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := doRequest(t, app, req)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.NotNil(t, sessionCookie(resp))

	req = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader("username=maria&password=incorrecta"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp = doRequest(t, app, req)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login?error=1", resp.Header.Get("Location"))
	assert.Nil(t, sessionCookie(resp), "no debe dejarse cookie en un login fallido")
}
