// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the service reads at startup.
type Config struct {
	Port         string `env:"PORT" envDefault:"3000"`
	DatabaseURL  string `env:"DATABASE_URL,required"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	JWTSecret    string `env:"JWT_SECRET"`
	LocalDBPath  string `env:"LOCAL_DB_PATH" envDefault:"wellvest.db"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Address returns the host:port the HTTP server binds to.
func (c Config) Address() string {
	return ":" + c.Port
}
