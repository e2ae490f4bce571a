package handlers

import (
	"errors"
	"net/http"

	"Stocked/internal/services"

	"github.com/gofiber/fiber/v2"
)

// domainError maps a typed domain error to its HTTP response. Internal
// failures get a generic message so store details never leak to clients.
func domainError(c *fiber.Ctx, err error, notFoundMessage string) error {
	var validationErr *services.ValidationError
	var stockErr *services.InsufficientStockError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": validationErr.Message})
	case errors.As(err, &stockErr):
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": stockErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": notFoundMessage})
	case errors.Is(err, services.ErrUsernameTaken):
		return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "username already taken"})
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "invalid credentials"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "internal server error"})
	}
}
