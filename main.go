package main

import (
	"fmt"
	"log"
	"strings"

	"Stocked/database"
	"Stocked/internal/routers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()
	decimal.MarshalJSONWithoutQuotes = true

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)
	server.ReorderMonitor.StartSweepCycle()
	defer server.ReorderMonitor.Stop()

	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Stocked",
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Server.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	routers.SetupRoutes(app, server)

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
