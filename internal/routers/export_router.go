package routers

import (
	"Stocked/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupExportRouter(router fiber.Router, server *cmd.Server) {
	router.Get("/export/inventory", server.ExportHandler.ExportInventory)
}
