package routers

import (
	"Stocked/cmd"
	"Stocked/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupAuthRouter(app, server)

	protected := app.Group("/", middleware.RequireAuth(server.AuthService))
	SetupBoxRouter(protected, server)
	SetupUsageRouter(protected, server)
	SetupStatsRouter(protected, server)
	SetupExportRouter(protected, server)
}
