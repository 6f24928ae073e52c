package handlers

import (
	"net/http"
	"strings"

	"zambus/internal/domain/models"
	"zambus/internal/http/middleware"
	"zambus/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) routes(c *gin.Context) services.RouteService {
	return services.RouteService{Env: h.env(c)}
}

// GET /api/routes?origin=Lusaka&destination=Kitwe
func (h *Handler) ListRoutes(c *gin.Context) {
	list, err := h.routes(c).List(middleware.Actor(c), strings.TrimSpace(c.Query("origin")), strings.TrimSpace(c.Query("destination")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/routes/:id
func (h *Handler) GetRoute(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	route, err := h.routes(c).Get(middleware.Actor(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// POST /api/routes
func (h *Handler) CreateRoute(c *gin.Context) {
	var req models.RouteInput
	if !BindJSONOrError(c, &req) {
		return
	}
	route, err := h.routes(c).Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// PUT /api/routes/:id
func (h *Handler) UpdateRoute(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req models.RouteInput
	if !BindJSONOrError(c, &req) {
		return
	}
	route, err := h.routes(c).Update(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// DELETE /api/routes/:id?confirm=true
func (h *Handler) DeleteRoute(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.routes(c).Delete(c.Request.Context(), middleware.Actor(c), id, confirmed(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PATCH /api/routes/:id/status
func (h *Handler) SetRouteStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req statusPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	route, err := h.routes(c).SetStatus(c.Request.Context(), middleware.Actor(c), id, models.RouteStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}
