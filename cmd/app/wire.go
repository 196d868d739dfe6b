//go:build wireinject
// +build wireinject

package main

import (
	"timetable/config"
	"timetable/internal/bot"
	"timetable/internal/command"
	"timetable/internal/cron"
	"timetable/internal/database"
	"timetable/internal/handler"
	"timetable/internal/middleware"
	"timetable/internal/roster"
	"timetable/internal/router"
	"timetable/internal/service"
	"timetable/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			roster.ProviderSet,
			bot.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(
		database.ProviderSet,
		telemetry.ProviderSet,
		command.ProviderSet,
	))
}
