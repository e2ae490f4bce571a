package cmd

import (
	"Stocked/internal/config"
	"Stocked/internal/handlers"
	"Stocked/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Configuration  *config.Configuration
	DB             *gorm.DB
	AuthService    services.AuthService
	AuthHandler    *handlers.AuthHandler
	BoxService     services.BoxTypeService
	BoxHandler     *handlers.BoxHandler
	UsageService   services.UsageService
	UsageHandler   *handlers.UsageHandler
	StatsHandler   *handlers.StatsHandler
	ExportHandler  *handlers.ExportHandler
	LogService     services.LogService
	ReorderMonitor *services.ReorderMonitor
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	authService services.AuthService,
	authHandler *handlers.AuthHandler,
	boxService services.BoxTypeService,
	boxHandler *handlers.BoxHandler,
	usageService services.UsageService,
	usageHandler *handlers.UsageHandler,
	statsHandler *handlers.StatsHandler,
	exportHandler *handlers.ExportHandler,
	logService services.LogService,
	reorderMonitor *services.ReorderMonitor,
) *Server {
	return &Server{
		Configuration:  configuration,
		DB:             db,
		AuthService:    authService,
		AuthHandler:    authHandler,
		BoxService:     boxService,
		BoxHandler:     boxHandler,
		UsageService:   usageService,
		UsageHandler:   usageHandler,
		StatsHandler:   statsHandler,
		ExportHandler:  exportHandler,
		LogService:     logService,
		ReorderMonitor: reorderMonitor,
	}
}
