package routers

import (
	"Stocked/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupUsageRouter(router fiber.Router, server *cmd.Server) {
	usageHandler := server.UsageHandler
	router.Post("/usage", usageHandler.RecordUsage)
	router.Get("/usage", usageHandler.ListUsage)
	router.Get("/usage/trends", usageHandler.UsageTrends)
}
