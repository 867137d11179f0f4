package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App     App
		HTTP    HTTP
		Log     Log
		DB      DB
		Swagger Swagger
	}

	App struct {
		Name    string `env:"APP_NAME" envDefault:"foreman"`
		Version string `env:"APP_VERSION" envDefault:"0.1.0"`
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT" envDefault:"8080"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	// DB configures the connection pool. URL is optional on purpose: without
	// it the service starts with database helpers disabled.
	DB struct {
		URL            string        `env:"DATABASE_URL"`
		PoolMinSize    int           `env:"DB_POOL_MIN_SIZE" envDefault:"1"`
		PoolMaxSize    int           `env:"DB_POOL_MAX_SIZE" envDefault:"10"`
		CommandTimeout time.Duration `env:"DB_COMMAND_TIMEOUT" envDefault:"30s"`
		AcquireTimeout time.Duration `env:"DB_ACQUIRE_TIMEOUT" envDefault:"5s"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
