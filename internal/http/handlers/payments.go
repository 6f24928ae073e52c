package handlers

import (
	"net/http"

	"zambus/internal/domain/models"
	"zambus/internal/http/middleware"
	"zambus/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{Env: h.env(c), Gateway: h.Gateway}
}

// GET /api/payments
func (h *Handler) ListPayments(c *gin.Context) {
	list, err := h.payments(c).List(middleware.Actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/payments/:id
func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.payments(c).Get(middleware.Actor(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/payments
func (h *Handler) CreatePayment(c *gin.Context) {
	var req models.PaymentInput
	if !BindJSONOrError(c, &req) {
		return
	}
	p, err := h.payments(c).Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// POST /api/payments/:id/refund?confirm=true
func (h *Handler) RefundPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.payments(c).Refund(c.Request.Context(), middleware.Actor(c), id, confirmed(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/payments/:id/receipt
func (h *Handler) PaymentReceipt(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	data, filename, err := services.DocsService{Env: h.env(c)}.Receipt(middleware.Actor(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}
