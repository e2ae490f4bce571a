package handlers

import (
	"Stocked/internal/services"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service services.StatsService
}

func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats()
	if err != nil {
		return domainError(c, err, "stats unavailable")
	}
	return c.JSON(stats)
}
