package handlers

import (
	"net/http"

	"Stocked/internal/services"

	"github.com/gofiber/fiber/v2"
)

type UsageHandler struct {
	service services.UsageService
}

func NewUsageHandler(service services.UsageService) *UsageHandler {
	return &UsageHandler{service: service}
}

func (h *UsageHandler) RecordUsage(c *fiber.Ctx) error {
	var req struct {
		BoxTypeID    string `json:"box_type_id"`
		QuantityUsed int    `json:"quantity_used"`
		Date         string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	record, err := h.service.RecordUsage(req.BoxTypeID, req.QuantityUsed, req.Date)
	if err != nil {
		return domainError(c, err, "box not found")
	}
	return c.Status(http.StatusCreated).JSON(record)
}

func (h *UsageHandler) ListUsage(c *fiber.Ctx) error {
	records, err := h.service.ListUsage(c.QueryInt("days", 30))
	if err != nil {
		return domainError(c, err, "box not found")
	}
	return c.JSON(records)
}

func (h *UsageHandler) UsageTrends(c *fiber.Ctx) error {
	trends, err := h.service.UsageTrends(c.QueryInt("days", 14))
	if err != nil {
		return domainError(c, err, "box not found")
	}
	return c.JSON(trends)
}
