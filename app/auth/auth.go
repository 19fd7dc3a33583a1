package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession    = errors.New("no session")
	ErrInvalidToken = errors.New("invalid session token")
)

// Session is the authenticated identity attached to a request. It is minted
// by the external identity layer; this package only verifies and reads it.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Config captures which OAuth providers the identity layer has credentials
// for. It is computed once at startup and passed down; handlers never
// re-check the environment.
type Config struct {
	SessionSecret string
	GitHub        bool
	Google        bool
}

// NewConfig derives provider availability from credential presence.
func NewConfig(sessionSecret, githubID, githubSecret, googleID, googleSecret string) Config {
	return Config{
		SessionSecret: sessionSecret,
		GitHub:        githubID != "" && githubSecret != "",
		Google:        googleID != "" && googleSecret != "",
	}
}

// Enabled reports whether at least one OAuth provider is configured.
func (c Config) Enabled() bool {
	return c.GitHub || c.Google
}

// Providers lists the configured provider names.
func (c Config) Providers() []string {
	providers := []string{}
	if c.GitHub {
		providers = append(providers, "github")
	}
	if c.Google {
		providers = append(providers, "google")
	}
	return providers
}

// SessionFromRequest verifies the bearer token on r and returns the session
// it carries. A missing header is ErrNoSession; anything malformed, signed
// with the wrong key, or expired is ErrInvalidToken.
func SessionFromRequest(r *http.Request, secret string) (*Session, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrNoSession
	}
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	session := &Session{
		ID:    stringClaim(claims, "sub"),
		Name:  stringClaim(claims, "name"),
		Email: stringClaim(claims, "email"),
	}
	if session.ID == "" && session.Email == "" {
		return nil, ErrInvalidToken
	}
	return session, nil
}

// SignSession mints a session token the way the identity layer does. Used
// by tests and local tooling.
func SignSession(session Session, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   session.ID,
		"name":  session.Name,
		"email": session.Email,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

type contextKey struct{}

// WithSession attaches a session to ctx.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// FromContext returns the session attached by the auth middleware, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(contextKey{}).(*Session)
	return session, ok && session != nil
}
