package analytics

import (
	"net/http"

	"earnhub/pkg/errutil"
	"earnhub/pkg/middleware"
	"earnhub/services/entitlement"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      *Service
	resolver *entitlement.Resolver
}

func NewHandler(svc *Service, resolver *entitlement.Resolver) *Handler {
	return &Handler{svc: svc, resolver: resolver}
}

func (h *Handler) Summary(c *gin.Context) {
	tier, err := entitlement.ParseTier(middleware.TierLabel(c))
	if err != nil {
		c.Error(errutil.BadRequest(err.Error()))
		return
	}

	rangeToken := c.DefaultQuery("range", "30d")

	// The 90-day view is part of advanced analytics; the shorter windows
	// ship with every tier.
	feature := entitlement.FeatureBasicAnalytics
	if rangeToken == "90d" {
		feature = entitlement.FeatureAdvancedAnalytics
	}

	if !h.resolver.HasAccess(tier, feature) {
		c.Error(errutil.Forbidden("subscription tier does not include " + string(feature)))
		return
	}

	refresh := c.Query("refresh") == "true"

	summary, _, err := h.svc.Summary(c.Request.Context(), middleware.UserID(c), rangeToken, refresh)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
