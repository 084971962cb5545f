// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types, and validates them so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate values so the app fails fast on bad config.
//   - Provide defaults for every block, so an empty environment still boots.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix HELLO_. The prefix is stripped, the
	rest is lowercased and a double underscore marks nesting:

	  HELLO_SERVER__PORT                  -> server.port
	  HELLO_SERVER__CORS_ALLOWED_ORIGINS  -> server.cors_allowed_origins
	  HELLO_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level

	List values are comma separated.
*/

// EnvPrefix is the prefix every recognised environment variable carries.
const EnvPrefix = "HELLO_"

// ServiceName labels logs and traces.
const ServiceName = "hello-backend"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Host               string   `koanf:"host"`
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1,dive,url"`
}

// Address is the host:port pair the HTTP server listens on.
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

// DefaultConfig listens on every interface on port 8000 and accepts the
// Next.js dev server on port 3000.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               "8000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey converts HELLO_SERVER__PORT into server.port.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix HELLO_
//   - Unmarshals over the defaults, so unset keys keep their default
//   - Validates struct tags with go-playground/validator
//   - Forces observability service name + environment
//   - Runs ObservabilityConfig.Validate
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	mainConfig := DefaultConfig()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
