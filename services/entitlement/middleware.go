package entitlement

import (
	"earnhub/pkg/errutil"
	"earnhub/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// Require rejects requests whose subscription tier is not on the feature's
// allow-list. An unparseable tier label is treated as no entitlement at all.
func Require(r *Resolver, feature Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		tier, err := ParseTier(middleware.TierLabel(c))
		if err != nil {
			c.AbortWithStatusJSON(400, errutil.BaseError{
				Code:    errutil.StatusBadRequest,
				Message: err.Error(),
			}.JSON())
			return
		}

		if !r.HasAccess(tier, feature) {
			c.AbortWithStatusJSON(403, errutil.BaseError{
				Code:    errutil.StatusForbidden,
				Message: "subscription tier does not include " + string(feature),
			}.JSON())
			return
		}

		c.Next()
	}
}
