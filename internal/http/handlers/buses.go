package handlers

import (
	"net/http"
	"strings"

	"zambus/internal/domain/models"
	"zambus/internal/http/middleware"
	"zambus/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) fleet(c *gin.Context) services.FleetService {
	return services.FleetService{Env: h.env(c)}
}

// GET /api/buses
func (h *Handler) ListBuses(c *gin.Context) {
	list, err := h.fleet(c).List(middleware.Actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/buses/:id
func (h *Handler) GetBus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	bus, err := h.fleet(c).Get(middleware.Actor(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// POST /api/buses
func (h *Handler) CreateBus(c *gin.Context) {
	var req models.BusInput
	if !BindJSONOrError(c, &req) {
		return
	}
	bus, err := h.fleet(c).Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bus)
}

// PUT /api/buses/:id
func (h *Handler) UpdateBus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req models.BusInput
	if !BindJSONOrError(c, &req) {
		return
	}
	bus, err := h.fleet(c).Update(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// DELETE /api/buses/:id?confirm=true
func (h *Handler) DeleteBus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.fleet(c).Delete(c.Request.Context(), middleware.Actor(c), id, confirmed(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PATCH /api/buses/:id/status
func (h *Handler) SetBusStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req statusPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	bus, err := h.fleet(c).SetStatus(c.Request.Context(), middleware.Actor(c), id, models.BusStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}
