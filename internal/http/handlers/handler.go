package handlers

import (
	"zambus/internal/auth"
	"zambus/internal/http/middleware"
	"zambus/internal/notify"
	"zambus/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler carries what the endpoints share. Services are built per request
// so that their logs carry the request id.
type Handler struct {
	Env           services.Env
	Tokens        *auth.Manager
	Gateway       services.Gateway
	Hub           *notify.Hub
	SecureCookies bool
}

func (h *Handler) env(c *gin.Context) services.Env {
	return h.Env.WithRequest(middleware.GetRequestID(c))
}

func (h *Handler) authService(c *gin.Context) services.AuthService {
	return services.AuthService{Env: h.env(c), Tokens: h.Tokens}
}

// Authenticator adapts the auth service for middleware.RequireAuth.
func (h *Handler) Authenticator() middleware.Authenticator {
	return services.AuthService{Env: h.Env, Tokens: h.Tokens}
}
