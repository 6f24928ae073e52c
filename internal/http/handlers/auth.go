package handlers

import (
	"net/http"

	"zambus/internal/auth"
	"zambus/internal/domain/models"
	"zambus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginInput
	if !BindJSONOrError(c, &req) {
		return
	}
	session, err := h.authService(c).Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, session.Token, int(h.Tokens.TTL().Seconds()), "/", "", h.SecureCookies, true)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"user":      session.User,
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
	})
}

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.authService(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    user,
	})
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.authService(c).Logout(c.Request.Context(), middleware.Actor(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.SecureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.authService(c).Me(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
