package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Config Loading Tests
// =============================================================================

func TestLoadConfig_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "app.vrhotelo.com", cfg.Domain.BaseDomain)
	assert.Equal(t, "161.97.75.123", cfg.Domain.SslipIP)
	assert.Equal(t, "coolify", cfg.Domain.IngressNetwork)
	assert.Equal(t, "letsencrypt", cfg.Routing.CertResolver)
	assert.Equal(t, 80, cfg.Routing.ServicePort)
	assert.Equal(t, "labels", cfg.Output.Format)
	assert.Equal(t, "app", cfg.Output.ComposeService)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfig_FromFile(t *testing.T) {
	clearEnv(t)

	configContent := `
domain:
  base_domain: "example.org"
  sslip_ip: "10.0.0.1"
  ingress_network: "proxy"

routing:
  cert_resolver: "staging"
  service_port: 3000

output:
  format: "yaml"

log:
  level: "debug"
  format: "json"
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "example.org", cfg.Domain.BaseDomain)
	assert.Equal(t, "10.0.0.1", cfg.Domain.SslipIP)
	assert.Equal(t, "proxy", cfg.Domain.IngressNetwork)
	assert.Equal(t, "staging", cfg.Routing.CertResolver)
	assert.Equal(t, 3000, cfg.Routing.ServicePort)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	clearEnv(t)

	t.Setenv("LABELGEN_DOMAIN_BASE_DOMAIN", "env.example.com")
	t.Setenv("LABELGEN_ROUTING_SERVICE_PORT", "8080")
	t.Setenv("LABELGEN_LOG_LEVEL", "error")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "env.example.com", cfg.Domain.BaseDomain)
	assert.Equal(t, 8080, cfg.Routing.ServicePort)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_NoPath_UsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "app.vrhotelo.com", cfg.Domain.BaseDomain)
}

func TestLoadConfig_ExplicitFileNotFound(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_UnsupportedExtension(t *testing.T) {
	clearEnv(t)

	tmpFile := filepath.Join(t.TempDir(), "config.conf")
	require.NoError(t, os.WriteFile(tmpFile, []byte("domain.base_domain=x"), 0644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	clearEnv(t)

	tmpFile := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("invalid: yaml: content: [[["), 0644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestConfig_Params(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	params := cfg.Params("abc123")
	assert.Equal(t, "abc123", params.AppID)
	assert.Equal(t, "abc123.161.97.75.123.sslip.io", params.SslipDomain())
	assert.Equal(t, 80, params.ServicePort)
}

// =============================================================================
// Logger Setup Tests
// =============================================================================

func TestSetupLogger_Levels(t *testing.T) {
	tests := []struct {
		level      string
		debugShown bool
		warnShown  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"invalid", false, true}, // falls back to info
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := SetupLogger(&Config{Log: LogConfig{Level: tt.level, Format: "text"}}, &buf)

			logger.Debug("debug-message")
			logger.Warn("warn-message")

			assert.Equal(t, tt.debugShown, bytes.Contains(buf.Bytes(), []byte("debug-message")))
			assert.Equal(t, tt.warnShown, bytes.Contains(buf.Bytes(), []byte("warn-message")))
		})
	}
}

func TestSetupLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&Config{Log: LogConfig{Level: "info", Format: "json"}}, &buf)

	logger.Info("hello", "lines", 3)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"lines":3`)
}

// =============================================================================
// Test Helpers
// =============================================================================

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"LABELGEN_DOMAIN_BASE_DOMAIN",
		"LABELGEN_DOMAIN_SSLIP_IP",
		"LABELGEN_DOMAIN_INGRESS_NETWORK",
		"LABELGEN_ROUTING_CERT_RESOLVER",
		"LABELGEN_ROUTING_SERVICE_PORT",
		"LABELGEN_OUTPUT_FORMAT",
		"LABELGEN_OUTPUT_COMPOSE_SERVICE",
		"LABELGEN_LOG_LEVEL",
		"LABELGEN_LOG_FORMAT",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}
