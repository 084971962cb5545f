package config

import (
	"fmt"
	"slices"
)

// ObservabilityConfig groups all configuration related to telemetry and runtime visibility.
//
// It is embedded under Config.Observability. If omitted, defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// Always overwritten with ServiceName by LoadConfig.
	ServiceName string `koanf:"service_name"`

	// Environment splits telemetry by environment (production, development, ...).
	// Always overwritten with Primary.Env by LoadConfig.
	Environment string `koanf:"environment"`

	Logging LoggingConfig `koanf:"logging"`

	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Empty means "pick by environment", see GetLogLevel.
	Level string `koanf:"level"`

	// Format selects "json" or "console" output.
	Format string `koanf:"format"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey disables the agent entirely.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// DefaultObservabilityConfig provides the defaults used when nothing is configured.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "",
			Format: "console",
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // mixes agent output into app logs
		},
	}
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "console"}
)

// Validate applies rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if c.Logging.Level != "" && !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if !slices.Contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (must be one of: json, console)", c.Logging.Format)
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// An explicit level always wins. Otherwise production defaults to "info"
// and everything else to "debug".
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}

	if c.IsProduction() {
		return "info"
	}

	return "debug"
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// NewRelicEnabled reports whether the New Relic agent should be started.
func (c *ObservabilityConfig) NewRelicEnabled() bool {
	return c.NewRelic.LicenseKey != ""
}
