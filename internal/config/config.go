package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/addrsplit/internal/logging"
)

// Environment variable names understood by the service
const (
	EnvHost         = "WEB_HOST"
	EnvPort         = "WEB_PORT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvMaxBodyBytes = "MAX_BODY_BYTES"
	EnvMetrics      = "ENABLE_METRICS"
	EnvCORS         = "ENABLE_CORS"
)

// Config holds everything the service reads from its environment
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Limits   LimitsConfig
	Features FeatureConfig
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Host string
	Port int
}

// LogConfig controls log verbosity and encoding
type LogConfig struct {
	Level  string
	Format string
}

// LimitsConfig bounds what a single request may carry
type LimitsConfig struct {
	MaxBodyBytes int64
}

// FeatureConfig toggles optional endpoints and middleware
type FeatureConfig struct {
	Metrics bool
	CORS    bool
}

// Load reads the service configuration from the environment, consulting a
// .env file when one is present, and validates the result
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: GetEnv(EnvHost, "0.0.0.0"),
			Port: GetEnvInt(EnvPort, 8080),
		},
		Log: LogConfig{
			Level:  GetEnv(EnvLogLevel, "info"),
			Format: GetEnv(EnvLogFormat, logging.FormatJSON),
		},
		Limits: LimitsConfig{
			MaxBodyBytes: GetEnvInt64(EnvMaxBodyBytes, 1<<20),
		},
		Features: FeatureConfig{
			Metrics: GetEnvBool(EnvMetrics, true),
			CORS:    GetEnvBool(EnvCORS, true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the host:port the HTTP server binds to
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Host == "" {
		problems = append(problems, "host must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("port %d out of range 1-65535", c.Server.Port))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}
	if c.Log.Format != logging.FormatJSON && c.Log.Format != logging.FormatConsole {
		problems = append(problems, fmt.Sprintf("unknown log format %q", c.Log.Format))
	}
	if c.Limits.MaxBodyBytes < 1 {
		problems = append(problems, fmt.Sprintf("max body bytes %d must be positive", c.Limits.MaxBodyBytes))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
