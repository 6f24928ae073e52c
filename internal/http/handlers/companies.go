package handlers

import (
	"net/http"

	"zambus/internal/domain/models"
	"zambus/internal/http/middleware"
	"zambus/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) companies(c *gin.Context) services.CompanyService {
	return services.CompanyService{Env: h.env(c)}
}

// GET /api/companies
func (h *Handler) ListCompanies(c *gin.Context) {
	list, err := h.companies(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/companies/:id
func (h *Handler) GetCompany(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	company, err := h.companies(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// GET /api/company/profile
func (h *Handler) GetCompanyProfile(c *gin.Context) {
	company, err := h.companies(c).Get(middleware.Actor(c).UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// PUT /api/company/profile
func (h *Handler) UpdateCompanyProfile(c *gin.Context) {
	var req models.CompanyProfileInput
	if !BindJSONOrError(c, &req) {
		return
	}
	company, err := h.companies(c).UpdateProfile(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// GET /api/company/dashboard
func (h *Handler) CompanyDashboard(c *gin.Context) {
	stats, err := h.companies(c).Stats(middleware.Actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/insurance/plans
func InsurancePlans(c *gin.Context) {
	c.JSON(http.StatusOK, services.InsurancePlans())
}
