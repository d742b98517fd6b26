package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const defaultSQLitePath = "customers.db"

type Config struct {
	Port            string        `env:"PORT,default=8080"`
	DatabaseDriver  string        `env:"DATABASE_DRIVER,default=postgres"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DBMaxConns      int32         `env:"DB_MAX_CONNS,default=10"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	BodyLimit       string        `env:"HTTP_BODY_LIMIT,default=1M"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load reads optional .env files, then decodes the environment. Variables
// already set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}
	case "sqlite":
		if c.DatabaseURL == "" {
			c.DatabaseURL = defaultSQLitePath
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
