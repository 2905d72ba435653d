package o11y

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/caarlos0/env/v10"
)

// DefaultServiceName names the tracer and metrics when SERVICE_NAME is not set.
const DefaultServiceName = "fragility"

// Configurator is what the Observer needs to know about its environment.
type Configurator interface {
	LogLevel() slog.Level
	StrLevel() string
	OtelURL() string
	ServiceName() string
	TrimModules() []string
	TrimPaths() []string
}

// Configuration is the environment-driven Configurator.
type Configuration struct {
	logLevel    slog.Level
	strLevel    string
	otelURL     string
	serviceName string
	trimModules []string
	trimPaths   []string
}

type envConfig struct {
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	OtelHost    string   `env:"OTEL_HOST"`
	OtelPort    string   `env:"OTEL_PORT" envDefault:"4318"`
	ServiceName string   `env:"SERVICE_NAME" envDefault:"fragility"`
	TrimModules []string `env:"TRIM_MODULES" envSeparator:","`
	TrimPaths   []string `env:"TRIM_PATHS" envSeparator:","`
}

// LoadConfig reads the Observer configuration from the environment.
func LoadConfig() (cfg *Configuration, fault error) {
	ec := envConfig{}

	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("could not parse o11y environment: %w", err)
	}

	return CreateConfig(StringToLevel(ec.LogLevel), ec.OtelHost, ec.OtelPort, ec.ServiceName, ec.TrimModules, ec.TrimPaths), nil
}

// CreateConfig builds a Configuration without reading the environment. An empty otelHost disables span export.
func CreateConfig(level slog.Level, otelHost, otelPort, serviceName string, trimModules, trimPaths []string) *Configuration {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	otelURL := ""
	if otelHost != "" {
		if otelPort == "" {
			otelPort = "4318"
		}

		otelURL = "http://" + net.JoinHostPort(otelHost, otelPort)
	}

	return &Configuration{
		logLevel:    level,
		strLevel:    LevelName(level),
		otelURL:     otelURL,
		serviceName: serviceName,
		trimModules: trimModules,
		trimPaths:   trimPaths,
	}
}

// LogLevel returns the minimum level that will be logged.
func (c *Configuration) LogLevel() slog.Level {
	return c.logLevel
}

// StrLevel returns the minimum log level as written in log lines.
func (c *Configuration) StrLevel() string {
	return c.strLevel
}

// OtelURL returns the OTLP HTTP collector URL, or "" when tracing export is disabled.
func (c *Configuration) OtelURL() string {
	return c.otelURL
}

// ServiceName returns the name reported to the tracing backend.
func (c *Configuration) ServiceName() string {
	return c.serviceName
}

// TrimModules returns the module prefixes stripped from the source function in log lines.
func (c *Configuration) TrimModules() []string {
	return c.trimModules
}

// TrimPaths returns the path prefixes stripped from the source file in log lines.
func (c *Configuration) TrimPaths() []string {
	return c.trimPaths
}
