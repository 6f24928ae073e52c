package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"zambus/internal/domain"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie the web pages check for.
const CookieName = "zambus-current-user"

var (
	ErrNoToken            = errors.New("missing or malformed Authorization")
	ErrInvalidSigningAlgo = errors.New("unexpected signing method")
)

// Claims carried by access tokens.
type Claims struct {
	UserID domain.ID   `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwtlib.RegisteredClaims
}

// SessionID is the token id, shared with the session's auth store.
func (c *Claims) SessionID() string {
	return c.ID
}

// Manager handles JWT creation and validation.
type Manager struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

func NewManager(secret string, accessTTL time.Duration) (*Manager, error) {
	s := strings.TrimSpace(secret)
	if s == "" {
		return nil, fmt.Errorf("jwt: empty secret key")
	}
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &Manager{secret: []byte(s), accessTTL: accessTTL, now: time.Now}, nil
}

// Issue signs a token for the user under a new session id.
func (m *Manager) Issue(userID domain.ID, role domain.Role, sessionID string) (string, *Claims, error) {
	if !role.Valid() {
		return "", nil, fmt.Errorf("invalid role: %s", role)
	}
	now := m.now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        sessionID,
			Subject:   strconv.FormatInt(int64(userID), 10),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(m.secret)
	return signed, claims, err
}

// Parse verifies signature and standard claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(m.now),
	)
	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwtlib.Token) (any, error) {
		if t.Method != jwtlib.SigningMethodHS256 {
			return nil, ErrInvalidSigningAlgo
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || !claims.Role.Valid() || claims.ID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// TTL is the lifetime of issued tokens.
func (m *Manager) TTL() time.Duration {
	return m.accessTTL
}

// FromRequest reads "Authorization: Bearer <token>" and falls back to the session cookie.
func FromRequest(r *http.Request) (string, error) {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")); tok != "" {
			return tok, nil
		}
	}
	if c, err := r.Cookie(CookieName); err == nil && strings.TrimSpace(c.Value) != "" {
		return strings.TrimSpace(c.Value), nil
	}
	return "", ErrNoToken
}
