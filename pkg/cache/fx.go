package cache

import (
	"earnhub/pkg/config"

	"go.uber.org/fx"
)

var Module = fx.Module("cache", fx.Provide(Provide))

func Provide(cfg *config.Config) *Cache {
	return New(cfg.Cache.TTL)
}
