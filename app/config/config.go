package config

import (
	"os"

	"github.com/joho/godotenv"

	"pulsewave/app/auth"
)

// Config is the full environment-driven configuration, read once at
// startup.
type Config struct {
	Addr          string
	DBPath        string
	BotSecret     string
	SessionSecret string

	GitHubID           string
	GitHubSecret       string
	GoogleClientID     string
	GoogleClientSecret string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	godotenv.Load()

	return Config{
		Addr:               getenv("PULSEWAVE_ADDR", ":8080"),
		DBPath:             getenv("PULSEWAVE_DB_PATH", "data/badger"),
		BotSecret:          os.Getenv("BOT_POST_SECRET"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		GitHubID:           os.Getenv("GITHUB_ID"),
		GitHubSecret:       os.Getenv("GITHUB_SECRET"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	}
}

// AuthConfig derives the provider capability value passed down to the
// router.
func (c Config) AuthConfig() auth.Config {
	return auth.NewConfig(c.SessionSecret, c.GitHubID, c.GitHubSecret, c.GoogleClientID, c.GoogleClientSecret)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
