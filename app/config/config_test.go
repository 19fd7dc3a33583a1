package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PULSEWAVE_ADDR", "")
	t.Setenv("PULSEWAVE_DB_PATH", "")
	t.Setenv("BOT_POST_SECRET", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data/badger", cfg.DBPath)
	assert.Empty(t, cfg.BotSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PULSEWAVE_ADDR", ":9090")
	t.Setenv("PULSEWAVE_DB_PATH", "/tmp/pulsewave")
	t.Setenv("BOT_POST_SECRET", "hunter2")
	t.Setenv("SESSION_SECRET", "session")
	t.Setenv("GITHUB_ID", "gh-id")
	t.Setenv("GITHUB_SECRET", "gh-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/pulsewave", cfg.DBPath)
	assert.Equal(t, "hunter2", cfg.BotSecret)

	authConfig := cfg.AuthConfig()
	assert.True(t, authConfig.Enabled())
	assert.Equal(t, []string{"github"}, authConfig.Providers())
}
