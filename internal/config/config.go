package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port          string `env:"PORT" envDefault:"3300"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`

	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer  string `env:"JWT_ISSUER" envDefault:"movies-be"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`

	AllowAdminRegistration bool     `env:"ALLOW_ADMIN_REGISTRATION" envDefault:"false"`
	CORSOrigins            []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	LoginRateLimitRPS   float64 `env:"LOGIN_RATE_LIMIT_RPS" envDefault:"1"`
	LoginRateLimitBurst int     `env:"LOGIN_RATE_LIMIT_BURST" envDefault:"10"`

	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	c.JWTSecret = strings.TrimSpace(c.JWTSecret)

	origins := make([]string, 0, len(c.CORSOrigins))
	for _, origin := range c.CORSOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.CORSOrigins = origins
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.StorageDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres storage driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.LoginRateLimitRPS <= 0 || c.LoginRateLimitBurst <= 0 {
		return errors.New("LOGIN_RATE_LIMIT_RPS and LOGIN_RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}
