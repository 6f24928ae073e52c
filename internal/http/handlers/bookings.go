package handlers

import (
	"net/http"

	"zambus/internal/domain/models"
	"zambus/internal/http/middleware"
	"zambus/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{Env: h.env(c)}
}

// GET /api/bookings
func (h *Handler) ListBookings(c *gin.Context) {
	list, err := h.bookings(c).List(middleware.Actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	b, err := h.bookings(c).Get(middleware.Actor(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var req models.BookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := h.bookings(c).Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT /api/bookings/:id
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req models.BookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := h.bookings(c).Update(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings/:id/cancel?confirm=true
func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	b, err := h.bookings(c).Cancel(c.Request.Context(), middleware.Actor(c), id, confirmed(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings/:id/complete
func (h *Handler) CompleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	b, err := h.bookings(c).Complete(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/bookings/:id/eticket
func (h *Handler) BookingETicket(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	data, filename, err := services.DocsService{Env: h.env(c)}.ETicket(middleware.Actor(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}
