//go:build wireinject
// +build wireinject

package main

import (
	"Stocked/cmd"
	"Stocked/database"
	"Stocked/internal/config"
	"Stocked/internal/handlers"
	"Stocked/internal/repository"
	"Stocked/internal/services"

	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("stocked.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewBoxTypeRepository,
		repository.NewUsageRepository,
		repository.NewUserRepository,
		services.NewLogService,
		services.NewBoxTypeService,
		services.NewUsageService,
		services.NewPredictionService,
		services.NewStatsService,
		services.NewExportService,
		services.NewAuthService,
		services.NewReorderMonitor,
		handlers.NewAuthHandler,
		handlers.NewBoxHandler,
		handlers.NewUsageHandler,
		handlers.NewStatsHandler,
		handlers.NewExportHandler,
		Provider,
	)
	return nil, nil
}
