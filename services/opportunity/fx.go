package opportunity

import (
	"earnhub/services/entitlement"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Module("opportunity.service",
	fx.Provide(
		NewService,
		NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(e *gin.Engine, h *Handler, r *entitlement.Resolver) {
	g := e.Group("/v1/opportunities")
	g.GET("", h.List)
	g.GET("/recommended", entitlement.Require(r, entitlement.FeatureAIRecommendations), h.Recommended)
}
