package app

import (
	"net"
	"time"

	"github.com/joefazee/countryconfig/app/database"
	"github.com/joefazee/countryconfig/internal/cache"
	"github.com/joefazee/countryconfig/internal/nexus"
)

const ProductionEnv = "production"

type Config struct {
	DB    database.Config
	Cache cache.Config

	AppHost         string        `env:"APP_HOST" env-default:"localhost"`
	AppPort         string        `env:"APP_PORT" env-default:"8080" validate:"required,numeric"`
	Env             string        `env:"APP_ENV" env-default:"development"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info error fatal off"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.AppHost, c.AppPort)
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == ProductionEnv
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
