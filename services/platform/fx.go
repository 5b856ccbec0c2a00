package platform

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Module("platform.service",
	fx.Provide(
		NewService,
		NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(e *gin.Engine, h *Handler) {
	g := e.Group("/v1/platforms")
	g.GET("", h.Catalog)
	g.GET("/connections", h.Connections)
	g.POST("/:id/connect", h.Connect)
	g.POST("/:id/disconnect", h.Disconnect)
	g.POST("/:id/sync", h.Sync)
}
