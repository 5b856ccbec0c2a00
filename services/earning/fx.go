package earning

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Module("earning.service",
	fx.Provide(
		NewService,
		NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(e *gin.Engine, h *Handler) {
	g := e.Group("/v1/earnings")
	g.GET("", h.List)
	g.POST("", h.Add)
	g.DELETE("/:id", h.Delete)
}
