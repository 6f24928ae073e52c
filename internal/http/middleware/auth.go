package middleware

import (
	"context"
	"net/http"

	"zambus/internal/auth"
	"zambus/internal/domain"
	"zambus/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "userID"
	userRoleKey  = "userRole"
	sessionIDKey = "sessionID"
)

// Authenticator resolves a token to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.RequestContext, models.PublicUser, error)
}

// RequireAuth rejects requests without a valid token for an open session.
// The token is read from the Authorization header or the session cookie.
func RequireAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.FromRequest(c.Request)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Please log in to continue")
			return
		}
		actor, _, err := a.Authenticate(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			msg := err.Error()
			if !domain.IsUnauthorized(err) {
				status, msg = http.StatusInternalServerError, "Something went wrong. Please try again."
			}
			abort(c, status, msg)
			return
		}
		c.Set(userIDKey, actor.UserID)
		c.Set(userRoleKey, string(actor.Role))
		c.Set(sessionIDKey, actor.SessionID)
		c.Next()
	}
}

// Actor returns the authenticated caller set by RequireAuth.
func Actor(c *gin.Context) domain.RequestContext {
	id, _ := c.Get(userIDKey)
	uid, _ := id.(domain.ID)
	return domain.RequestContext{
		UserID:    uid,
		Role:      domain.Role(c.GetString(userRoleKey)),
		SessionID: c.GetString(sessionIDKey),
	}
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      msg,
		"request_id": GetRequestID(c),
	})
}
