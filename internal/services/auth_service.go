package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"zambus/internal/auth"
	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/repositories"
	"zambus/internal/utils"
	"zambus/internal/validators"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Env
	Tokens *auth.Manager
}

// Session is what a successful login hands back to the client.
type Session struct {
	User      models.PublicUser `json:"user"`
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

const invalidCredentials = "Invalid credentials"

// Register creates an account. Company accounts also get an operator profile
// listed next to the default companies.
func (s AuthService) Register(ctx context.Context, in models.RegisterInput) (models.PublicUser, error) {
	user, password, err := validators.Registration(in)
	if err != nil {
		return models.PublicUser{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.PublicUser{}, domain.InternalError{Err: err}
	}
	user.PasswordHash = string(hash)

	err = s.DB.Update(ctx, func(st *db.State) error {
		users := repositories.UserRepo{S: st}
		if _, err := users.GetByEmail(user.Email); err == nil {
			return domain.ConflictError{Resource: "User", Msg: "User already exists"}
		}
		user = users.Insert(user)
		if user.Type == domain.RoleCompany {
			repositories.CompanyRepo{S: st}.Upsert(models.Company{
				ID:     user.ID,
				Name:   user.Name,
				Email:  user.Email,
				Routes: []string{},
			})
		}
		return nil
	})
	if err != nil {
		utils.LogError(s.RequestID, "auth", "register", err)
		return models.PublicUser{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d type=%s", user.ID, user.Type))
	return user.ToPublic(), nil
}

// Login checks the password and opens a new session.
func (s AuthService) Login(ctx context.Context, in models.LoginInput) (Session, error) {
	creds, err := validators.Login(in)
	if err != nil {
		return Session{}, err
	}

	var user models.User
	err = s.view(func(st *db.State) error {
		var err error
		user, err = repositories.UserRepo{S: st}.GetByEmail(creds.Email)
		return err
	})
	if err != nil {
		return Session{}, domain.UnauthorizedError{Msg: invalidCredentials}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("rejected user_id=%d", user.ID))
		return Session{}, domain.UnauthorizedError{Msg: invalidCredentials}
	}

	sid, err := newSessionID()
	if err != nil {
		return Session{}, domain.InternalError{Err: err}
	}
	token, claims, err := s.Tokens.Issue(user.ID, user.Type, sid)
	if err != nil {
		return Session{}, domain.InternalError{Err: err}
	}
	public := user.ToPublic()
	if err := auth.NewStore(s.DB.Storage(), sid).Login(ctx, public); err != nil {
		return Session{}, domain.InternalError{Msg: "failed to save session", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", user.ID))
	return Session{User: public, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Logout revokes the session; its token stops working immediately.
func (s AuthService) Logout(ctx context.Context, actor domain.RequestContext) error {
	if err := auth.NewStore(s.DB.Storage(), actor.SessionID).Logout(ctx); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "logout", fmt.Sprintf("user_id=%d", actor.UserID))
	return nil
}

// Authenticate resolves a bearer token to the signed-in user of a live session.
func (s AuthService) Authenticate(ctx context.Context, token string) (domain.RequestContext, models.PublicUser, error) {
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return domain.RequestContext{}, models.PublicUser{}, domain.UnauthorizedError{Msg: "Invalid or expired token"}
	}
	user, ok, err := auth.NewStore(s.DB.Storage(), claims.SessionID()).Current(ctx)
	if err != nil {
		return domain.RequestContext{}, models.PublicUser{}, domain.InternalError{Err: err}
	}
	if !ok || user.ID != claims.UserID {
		return domain.RequestContext{}, models.PublicUser{}, domain.UnauthorizedError{Msg: "Session has ended. Please log in again"}
	}
	return domain.RequestContext{UserID: claims.UserID, Role: claims.Role, SessionID: claims.SessionID()}, user, nil
}

// Me returns the user of the current session.
func (s AuthService) Me(ctx context.Context, actor domain.RequestContext) (models.PublicUser, error) {
	user, ok, err := auth.NewStore(s.DB.Storage(), actor.SessionID).Current(ctx)
	if err != nil {
		return models.PublicUser{}, domain.InternalError{Err: err}
	}
	if !ok {
		return models.PublicUser{}, domain.UnauthorizedError{Msg: "Session has ended. Please log in again"}
	}
	return user, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
