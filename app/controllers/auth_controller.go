package controllers

import (
	"net/http"

	"pulsewave/app/auth"
)

// AuthController exposes the provider capability and the current session so
// a client can render its sign-in state.
type AuthController struct {
	authConfig auth.Config
}

// NewAuthController creates a new AuthController
func NewAuthController(authConfig auth.Config) *AuthController {
	return &AuthController{authConfig: authConfig}
}

type sessionResponse struct {
	Enabled   bool          `json:"enabled"`
	Providers []string      `json:"providers"`
	User      *auth.Session `json:"user,omitempty"`
}

// Session reports whether OAuth is configured and who, if anyone, the
// request is authenticated as.
func (ac *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{
		Enabled:   ac.authConfig.Enabled(),
		Providers: ac.authConfig.Providers(),
	}
	if session, ok := auth.FromContext(r.Context()); ok {
		resp.User = session
	}
	sendJSON(w, http.StatusOK, resp)
}
