package automation

import (
	"earnhub/services/entitlement"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Module("automation.service",
	fx.Provide(
		NewService,
		NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(e *gin.Engine, h *Handler, r *entitlement.Resolver) {
	g := e.Group("/v1/automations", entitlement.Require(r, entitlement.FeatureAutomationTools))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PATCH("/:id/toggle", h.Toggle)
	g.DELETE("/:id", h.Delete)
}
