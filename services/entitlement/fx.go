package entitlement

import (
	"net/http"

	"earnhub/pkg/errutil"
	"earnhub/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Module("entitlement.service",
	fx.Provide(NewResolver),
	fx.Invoke(registerRoutes),
)

func registerRoutes(e *gin.Engine, r *Resolver) {
	e.GET("/v1/entitlements", func(c *gin.Context) {
		tier, err := ParseTier(middleware.TierLabel(c))
		if err != nil {
			c.Error(errutil.BadRequest(err.Error()))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"tier":     tier,
			"features": r.FeaturesFor(tier),
		})
	})
}
