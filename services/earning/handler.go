package earning

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

	page, _, err := h.svc.List(c.Request.Context(), middleware.UserID(c), f, refresh)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) Add(c *gin.Context) {
	var in AddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}

	record, err := h.svc.Add(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
