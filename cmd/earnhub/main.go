package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"earnhub/internal/server"
	"earnhub/pkg/cache"
	"earnhub/pkg/config"
	"earnhub/pkg/db"
	"earnhub/pkg/gen"
	"earnhub/pkg/health"
	"earnhub/pkg/logger"
	"earnhub/pkg/otelcol"
	"earnhub/pkg/redis"
	"earnhub/pkg/task"
	"earnhub/services/analytics"
	"earnhub/services/automation"
	"earnhub/services/earning"
	"earnhub/services/entitlement"
	"earnhub/services/opportunity"
	"earnhub/services/platform"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		otelcol.Module,
		db.Module,
		redis.Module,
		gen.Module,
		cache.Module,
		task.Client,
		health.Module,
		server.Module,

		entitlement.Module,
		earning.Module,
		analytics.Module,
		opportunity.Module,
		automation.Module,
		platform.Module,

		fx.Invoke(migrate, instrumentDB),
		fxLogger,
	)

	app.Run()
}

var fxLogger = fx.WithLogger(func(cfg *config.Config, logger *zap.Logger) fxevent.Logger {
	return fxevent.NopLogger
})

func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&earning.Record{},
		&opportunity.Opportunity{},
		&automation.Automation{},
		&platform.Connection{},
	)
}

func instrumentDB(cfg *config.Config, gdb *gorm.DB) error {
	if err := db.Otel(gdb); err != nil {
		return err
	}
	return db.Metric(gdb, cfg.Database.DBNAME)
}
