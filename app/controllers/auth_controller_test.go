package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsewave/app/auth"
)

func TestAuthControllerSession(t *testing.T) {
	t.Run("reports disabled when no provider is configured", func(t *testing.T) {
		controller := NewAuthController(auth.NewConfig(testSessionSecret, "", "", "", ""))

		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		w := httptest.NewRecorder()
		controller.Session(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Enabled   bool     `json:"enabled"`
			Providers []string `json:"providers"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Enabled)
		assert.Empty(t, response.Providers)
	})

	t.Run("lists configured providers", func(t *testing.T) {
		controller := NewAuthController(auth.NewConfig(testSessionSecret, "gh-id", "gh-secret", "", ""))

		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		w := httptest.NewRecorder()
		controller.Session(w, req)

		var response struct {
			Enabled   bool     `json:"enabled"`
			Providers []string `json:"providers"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Enabled)
		assert.Equal(t, []string{"github"}, response.Providers)
	})

	t.Run("echoes the authenticated user", func(t *testing.T) {
		controller := NewAuthController(auth.NewConfig(testSessionSecret, "gh-id", "gh-secret", "", ""))

		token, err := auth.SignSession(auth.Session{ID: "u-1", Name: "Aki Tanaka"}, testSessionSecret, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		session, err := auth.SessionFromRequest(req, testSessionSecret)
		require.NoError(t, err)
		req = req.WithContext(auth.WithSession(req.Context(), session))

		w := httptest.NewRecorder()
		controller.Session(w, req)

		var response struct {
			User *auth.Session `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.User)
		assert.Equal(t, "Aki Tanaka", response.User.Name)
	})
}
