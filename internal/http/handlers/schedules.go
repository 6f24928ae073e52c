package handlers

import (
	"net/http"
	"strings"

	"zambus/internal/domain/models"
	"zambus/internal/http/middleware"
	"zambus/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) schedules(c *gin.Context) services.ScheduleService {
	return services.ScheduleService{Env: h.env(c)}
}

// GET /api/schedules
func (h *Handler) ListSchedules(c *gin.Context) {
	list, err := h.schedules(c).List(middleware.Actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/schedules/:id
func (h *Handler) GetSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	sc, err := h.schedules(c).Get(middleware.Actor(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// POST /api/schedules
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req models.ScheduleInput
	if !BindJSONOrError(c, &req) {
		return
	}
	sc, err := h.schedules(c).Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sc)
}

// PUT /api/schedules/:id
func (h *Handler) UpdateSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req models.ScheduleInput
	if !BindJSONOrError(c, &req) {
		return
	}
	sc, err := h.schedules(c).Update(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// DELETE /api/schedules/:id?confirm=true
func (h *Handler) DeleteSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.schedules(c).Delete(c.Request.Context(), middleware.Actor(c), id, confirmed(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PATCH /api/schedules/:id/status
func (h *Handler) SetScheduleStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req statusPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	sc, err := h.schedules(c).SetStatus(c.Request.Context(), middleware.Actor(c), id, models.ScheduleStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}
