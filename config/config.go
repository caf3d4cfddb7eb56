package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration read from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DBURL selects postgres when set; otherwise a local sqlite file is used.
	DBURL      string `env:"DB_URL"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"testvar.db"`

	// JWTSecret signs and verifies bearer tokens. A missing secret is a
	// startup error, never a silent default.
	JWTSecret string `env:"JWT_SECRET,notEmpty"`

	AllowedOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
