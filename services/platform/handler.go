package platform

import (
	"net/http"

	"earnhub/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": Catalog()})
}

func (h *Handler) Connections(c *gin.Context) {
	connections, err := h.svc.Connections(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"connections": connections})
}

func (h *Handler) Connect(c *gin.Context) {
	connection, err := h.svc.Connect(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, connection)
}

func (h *Handler) Disconnect(c *gin.Context) {
	connection, err := h.svc.Disconnect(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, connection)
}

func (h *Handler) Sync(c *gin.Context) {
	if err := h.svc.Sync(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sync scheduled"})
}
