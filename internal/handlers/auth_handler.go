package handlers

import (
	"net/http"

	"Stocked/internal/middleware"
	"Stocked/internal/models"
	"Stocked/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service services.AuthService
}

func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	user, token, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		return domainError(c, err, "user not found")
	}
	return c.Status(http.StatusCreated).JSON(authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	user, token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return domainError(c, err, "user not found")
	}
	return c.JSON(authResponse{Token: token, User: user})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalsUserID).(string)
	user, err := h.service.GetUser(userID)
	if err != nil {
		return domainError(c, err, "user not found")
	}
	return c.JSON(user)
}
