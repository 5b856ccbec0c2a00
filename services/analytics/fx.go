package analytics

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Module("analytics.service",
	fx.Provide(
		NewService,
		NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(e *gin.Engine, h *Handler) {
	e.GET("/v1/analytics", h.Summary)
}
