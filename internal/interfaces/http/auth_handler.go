package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastellanos/almacen-api/internal/application/auth"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/domain"
)

// AuthHandler maneja login, logout, registro y cambio de contraseña.
type AuthHandler struct {
	uc            *auth.AuthUseCase
	cookieMinutes int
}

// NewAuthHandler construye el handler. cookieMinutes fija la vida de la
// cookie de sesión (igual a la expiración del token).
func NewAuthHandler(uc *auth.AuthUseCase, cookieMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, cookieMinutes: cookieMinutes}
}

const loginFormHTML = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Almacén - Iniciar sesión</title></head>
<body>
  <h1>Iniciar sesión</h1>
  %s<form method="post" action="/auth/login">
    <label>Usuario <input type="text" name="username" required></label>
    <label>Contraseña <input type="password" name="password" required></label>
    <button type="submit">Entrar</button>
  </form>
</body>
</html>`

// isFormLogin distingue el formulario del navegador de los clientes JSON.
func isFormLogin(c *fiber.Ctx) bool {
	ct := c.Get(fiber.HeaderContentType)
	return strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

// LoginPage godoc
// @Summary      Formulario de inicio de sesión
// @Description  Página HTML mínima a la que redirigen las rutas web sin sesión.
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string
// @Router       /auth/login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	notice := ""
	if c.Query("error") != "" {
		// El mismo mensaje genérico del login JSON: no se revela si el usuario existe.
		notice = "<p>credenciales inválidas</p>\n  "
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fmt.Sprintf(loginFormHTML, notice))
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Verifica credenciales, emite el token JWT y lo deja en una
// @Description  cookie HTTP-only. El token también se devuelve en el cuerpo
// @Description  para clientes de API.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username y password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		if isFormLogin(c) {
			return c.Redirect("/auth/login?error=1", fiber.StatusFound)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrUnauthorized {
			// El formulario vuelve a la página; mensaje genérico en ambos
			// casos: no se revela si el usuario existe.
			if isFormLogin(c) {
				return c.Redirect("/auth/login?error=1", fiber.StatusFound)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(h.cookieMinutes) * time.Minute),
	})
	if isFormLogin(c) {
		// Con la cookie puesta, el navegador entra directo al dashboard.
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Invalida la cookie de sesión del navegador.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username y password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.RegisterUser(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el username ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "contraseña actual y nueva"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangePassword(userID, in); err != nil {
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "contraseña actual incorrecta"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la nueva contraseña no es válida o no coincide"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "contraseña actualizada"})
}
