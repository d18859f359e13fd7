package config

import (
	"time"

	"github.com/maxviazov/gym-console/internal/logger"
)

// DefaultPageSize is how many rows each list view shows when nothing is configured.
const DefaultPageSize = 5

type Config struct {
	App     AppConfig           `mapstructure:"app"`
	Logger  logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Backend BackendConfig       `mapstructure:"backend"`
	Console ConsoleConfig       `mapstructure:"console"`
	Metrics MetricsConfig       `mapstructure:"metrics"`
	Tracing TracingConfig       `mapstructure:"tracing"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Port            int           `mapstructure:"port" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// BackendConfig points the console at the gym REST API.
type BackendConfig struct {
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	HealthPath  string        `mapstructure:"health_path"`
	StartupPing bool          `mapstructure:"startup_ping"`
}

type ConsoleConfig struct {
	PageSize int `mapstructure:"page_size" validate:"gt=0"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
}

// TracingConfig enables OTLP export; the exporter itself also honours the
// standard OTEL_EXPORTER_OTLP_* variables.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Protocol    string  `mapstructure:"protocol" validate:"oneof=grpc http/protobuf"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
}
