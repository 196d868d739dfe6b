package cron

import (
	"context"

	"timetable/config"
	"timetable/internal/roster"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger         *zap.Logger
	server         *cron.Cron
	conf           *config.Configuration
	rosterProvider *roster.Provider
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, rosterProvider *roster.Provider) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:         logger,
		server:         server,
		conf:           conf,
		rosterProvider: rosterProvider,
	}
}

func (c *Cron) Run() error {
	spec := c.conf.Roster.ReloadSpec
	if spec == "" {
		spec = "0 */5 * * * *" // 每五分鐘
	}
	if _, err := c.server.AddFunc(spec, c.reloadRoster); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) reloadRoster() {
	if err := c.rosterProvider.Reload(context.Background()); err != nil {
		c.logger.Error("scheduled roster reload failed", zap.Error(err))
	}
}
