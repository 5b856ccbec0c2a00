package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"earnhub/pkg/cache"
	"earnhub/pkg/config"
	"earnhub/pkg/db"
	"earnhub/pkg/gen"
	"earnhub/pkg/logger"
	"earnhub/pkg/redis"
	"earnhub/pkg/task"
	"earnhub/services/automation"
	"earnhub/services/earning"
	"earnhub/services/platform"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		db.Module,
		redis.Module,
		gen.Module,
		cache.Module,
		task.Client,
		task.Server,

		fx.Provide(
			earning.NewService,
			automation.NewService,
			platform.NewService,
		),
		fx.Invoke(
			automation.RegisterHandlers,
			platform.RegisterHandlers,
		),
		fxLogger,
	)

	app.Run()
}

var fxLogger = fx.WithLogger(func(cfg *config.Config, logger *zap.Logger) fxevent.Logger {
	return fxevent.NopLogger
})
