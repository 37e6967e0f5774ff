// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import "fmt"

// Config is the root configuration of the relevance service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Engine   EngineConfig   `yaml:"engine"`
}

// ServiceConfig holds the HTTP server settings.
type ServiceConfig struct {
	Name            string `yaml:"name" env:"SERVICE_NAME"`
	Port            int    `yaml:"port" env:"SERVICE_PORT"`
	Version         string `yaml:"version" env:"SERVICE_VERSION"`
	RateLimitRPS    int    `yaml:"rate_limit_rps" env:"RATE_LIMIT_RPS"`
	RateLimitBurst  int    `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_seconds" env:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// DatabaseConfig holds the catalog store settings. An empty DSN runs the
// service without a store: requests must then carry inline candidates.
type DatabaseConfig struct {
	Driver          string `yaml:"driver" env:"DB_DRIVER"`
	DSN             string `yaml:"dsn" env:"DB_DSN"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime_seconds" env:"DB_CONN_MAX_LIFETIME_SECONDS"`
}

// LoggingConfig holds the structured logging settings.
type LoggingConfig struct {
	Level       string `yaml:"level" env:"LOG_LEVEL"`
	Development bool   `yaml:"development" env:"LOG_DEVELOPMENT"`
}

// EngineConfig holds the relevance engine tunables.
type EngineConfig struct {
	MinTokenLength int   `yaml:"min_token_length" env:"ENGINE_MIN_TOKEN_LENGTH"`
	ReasoningSeed  int64 `yaml:"reasoning_seed" env:"ENGINE_REASONING_SEED"`
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid service port: %d", c.Service.Port)
	}
	if c.Database.DSN != "" {
		switch c.Database.Driver {
		case "postgres", "sqlite3":
		default:
			return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
		}
	}
	return nil
}

func setDefaults(c *Config) {
	if c.Service.Name == "" {
		c.Service.Name = "relevance"
	}
	if c.Service.Port == 0 {
		c.Service.Port = 8080
	}
	if c.Service.Version == "" {
		c.Service.Version = "dev"
	}
	if c.Service.RateLimitRPS == 0 {
		c.Service.RateLimitRPS = 50
	}
	if c.Service.RateLimitBurst == 0 {
		c.Service.RateLimitBurst = 100
	}
	if c.Service.ShutdownTimeout == 0 {
		c.Service.ShutdownTimeout = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Engine.MinTokenLength == 0 {
		c.Engine.MinTokenLength = 3
	}
}
