package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DevSessionSecret is only acceptable outside production.
	DevSessionSecret = "tweetmood-dev-secret-change-me"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DBDriver        string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DBPath          string        `env:"DB_PATH" envDefault:"reviews.db"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	AdminEmail      string        `env:"ADMIN_EMAIL" envDefault:"admin@gmail.com"`
	AdminPassword   string        `env:"ADMIN_PASSWORD" envDefault:"admin@##123"`
	SessionSecret   string        `env:"SESSION_SECRET" envDefault:"tweetmood-dev-secret-change-me"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	ContactAddress  string        `env:"CONTACT_ADDRESS" envDefault:"contact@tweetmood.app"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and then the process environment.
// Real environment variables win over values from the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("DB_PATH is required when DB_DRIVER is sqlite")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.AdminEmail == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must not be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.IsProduction() && c.SessionSecret == DevSessionSecret {
		return errors.New("SESSION_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
