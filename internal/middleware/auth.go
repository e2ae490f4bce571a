package middleware

import (
	"net/http"
	"strings"

	"Stocked/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LocalsUserID is the fiber locals key under which the authenticated user's
// id is stored.
const LocalsUserID = "userID"

// RequireAuth gates a route behind a bearer token. Every failure mode maps
// to the same 401 so the client cannot probe for cause.
func RequireAuth(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return unauthorized(c)
		}
		token := strings.TrimSpace(header[len("Bearer "):])
		userID, err := authService.ValidateToken(token)
		if err != nil {
			return unauthorized(c)
		}
		c.Locals(LocalsUserID, userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "unauthorized"})
}
