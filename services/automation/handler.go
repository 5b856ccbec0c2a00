package automation

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
	refresh := c.Query("refresh") == "true"

	automations, _, err := h.svc.List(c.Request.Context(), middleware.UserID(c), refresh)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"automations": automations})
}

func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}

	automation, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, automation)
}

func (h *Handler) Toggle(c *gin.Context) {
	automation, err := h.svc.Toggle(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, automation)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
