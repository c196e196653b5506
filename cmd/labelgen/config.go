package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/vrhotelo/labelgen/internal/core/routing"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all application configuration.
type Config struct {
	Domain  DomainConfig  `mapstructure:"domain"`
	Routing RoutingConfig `mapstructure:"routing"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// DomainConfig holds the domains routes are generated for.
type DomainConfig struct {
	BaseDomain     string `mapstructure:"base_domain"`
	SslipIP        string `mapstructure:"sslip_ip"`
	IngressNetwork string `mapstructure:"ingress_network"`
}

// RoutingConfig holds router and service settings.
type RoutingConfig struct {
	CertResolver string `mapstructure:"cert_resolver"`
	ServicePort  int    `mapstructure:"service_port"`
}

// OutputConfig holds output rendering settings.
type OutputConfig struct {
	// Format is one of "labels", "yaml" or "compose".
	Format string `mapstructure:"format"`

	// ComposeService is the service labelled in compose format.
	ComposeService string `mapstructure:"compose_service"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Params builds generator parameters for appID.
func (c *Config) Params(appID string) routing.Params {
	return routing.Params{
		AppID:          appID,
		BaseDomain:     c.Domain.BaseDomain,
		SslipIP:        c.Domain.SslipIP,
		CertResolver:   c.Routing.CertResolver,
		ServicePort:    c.Routing.ServicePort,
		IngressNetwork: c.Domain.IngressNetwork,
	}
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("domain.base_domain", routing.DefaultBaseDomain)
	v.SetDefault("domain.sslip_ip", routing.DefaultSslipIP)
	v.SetDefault("domain.ingress_network", routing.DefaultIngressNetwork)
	v.SetDefault("routing.cert_resolver", routing.DefaultCertResolver)
	v.SetDefault("routing.service_port", routing.DefaultServicePort)
	v.SetDefault("output.format", "labels")
	v.SetDefault("output.compose_service", "app")
	v.SetDefault("log.level", "warn") // operator messages only
	v.SetDefault("log.format", "text")

	// An explicitly named file must exist and parse
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("LABELGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
