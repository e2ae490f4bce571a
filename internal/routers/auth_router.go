package routers

import (
	"Stocked/cmd"
	"Stocked/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRouter(app *fiber.App, server *cmd.Server) {
	authHandler := server.AuthHandler
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)
	app.Get("/auth/me", middleware.RequireAuth(server.AuthService), authHandler.Me)
}
