// Package config loads process configuration from the environment once at startup.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is built once in main and passed to every component that needs it.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"2"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"bogenliga"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"12h"`

	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"false"`
	VerifySchema   bool `env:"VERIFY_SCHEMA" envDefault:"true"`

	ChangeLogCompressThreshold int `env:"CHANGELOG_COMPRESS_THRESHOLD" envDefault:"4096"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.JWTSecret) < 16 {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	return cfg, nil
}

// Development reports whether the process runs with developer defaults.
func (c Config) Development() bool {
	return c.AppEnv == "development"
}
