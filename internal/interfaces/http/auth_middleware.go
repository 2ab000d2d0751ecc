package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/pkg/jwt"
)

// Nombre de la cookie de sesión que emite el login.
const SessionCookie = "almacen_token"

// Locals keys para UserID y Username en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
)

// extractToken busca el token en la cookie de sesión o en el header
// Authorization (Bearer). La cookie tiene prioridad: es la que usa la web.
func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookie); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware valida el token JWT (cookie o Bearer) y extrae UserID y
// Username a c.Locals. Sin token o token inválido responde 401 JSON.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticación requerida"})
		}
		userID, username, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// WebAuthMiddleware variante para las rutas web: en lugar de 401 redirige
// al formulario de login, como espera un navegador.
func WebAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Redirect("/auth/login", fiber.StatusFound)
		}
		userID, username, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Redirect("/auth/login", fiber.StatusFound)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUsername devuelve el Username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
