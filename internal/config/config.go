package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded once at startup and passed by
// injection. The live/sample data-source decision is an explicit field here
// rather than an ambient environment lookup, so it can be tested and
// overridden without touching the process environment.
type Config struct {
	Port        string
	BackendURL  string // upstream Tube Virality data API; empty selects sample mode
	RedisURL    string
	SampleData  string // optional path overriding the embedded sample corpus
	LogLevel    string
	Environment string
	CORSOrigins string

	// UseSampleData is true when no backend URL is configured: the gateway
	// serves the bundled sample corpus instead of the live API.
	UseSampleData bool
}

// Load reads configuration from the environment (and an optional .env file).
func Load() *Config {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	backendURL := os.Getenv("BACKEND_URL")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		BackendURL:    backendURL,
		RedisURL:      os.Getenv("REDIS_URL"),
		SampleData:    os.Getenv("SAMPLE_DATA_PATH"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		UseSampleData: backendURL == "",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
