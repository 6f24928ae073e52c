package handlers

import (
	"net/http"

	"zambus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications/ws
func (h *Handler) Notifications(c *gin.Context) {
	if h.Hub == nil {
		respondError(c, http.StatusServiceUnavailable, "unavailable", "notifications are not enabled", nil)
		return
	}
	h.Hub.ServeWS(c.Writer, c.Request, middleware.Actor(c).UserID)
}
