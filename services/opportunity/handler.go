package opportunity

import (
	"net/http"

	"earnhub/pkg/errutil"
	"earnhub/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) List(c *gin.Context) {
	var f Filters
	if err := c.ShouldBindQuery(&f); err != nil {
		c.Error(errutil.BadRequest("invalid query parameters", errutil.WithErr(err)))
		return
	}

	refresh := c.Query("refresh") == "true"

	opportunities, _, err := h.svc.List(c.Request.Context(), middleware.UserID(c), f, refresh)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opportunities": opportunities})
}

func (h *Handler) Recommended(c *gin.Context) {
	opportunities, _, err := h.svc.Recommended(c.Request.Context(), middleware.UserID(c), 3)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opportunities": opportunities})
}
