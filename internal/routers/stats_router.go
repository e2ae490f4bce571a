package routers

import (
	"Stocked/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRouter(router fiber.Router, server *cmd.Server) {
	router.Get("/stats", server.StatsHandler.GetStats)
}
