package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(nil)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8000", cfg.ServerAddr())
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "memory", cfg.Roster.Backend)
	require.False(t, cfg.Roster.EnforceCapacity)
	require.False(t, cfg.Roster.ValidateEmail)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
	require.Equal(t, "/static/index.html", cfg.Static.Index)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ROSTER_ENFORCE_CAPACITY", "true")
	t.Setenv("ROSTER_SEED_FILE", "/etc/roster.hcl")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "750ms")

	cfg, err := NewConfig(nil)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.True(t, cfg.Roster.EnforceCapacity)
	require.Equal(t, "/etc/roster.hcl", cfg.Roster.SeedFile)
	require.Equal(t, 750*time.Millisecond, cfg.HTTP.RequestTimeout)
}

func TestNewConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--port", "7070", "--validate-email"}))

	cfg, err := NewConfig(flags)
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.True(t, cfg.Roster.ValidateEmail)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Server:  ServerConfig{Port: 8000},
		HTTP:    HTTPConfig{RequestTimeout: time.Second},
		Roster:  RosterConfig{Backend: "memory"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	require.NoError(t, valid.Validate())

	badPort := valid
	badPort.Server.Port = 0
	require.Error(t, badPort.Validate())

	badTimeout := valid
	badTimeout.HTTP.RequestTimeout = 0
	require.Error(t, badTimeout.Validate())

	noBackend := valid
	noBackend.Roster.Backend = ""
	require.Error(t, noBackend.Validate())

	badPath := valid
	badPath.Metrics.Path = "metrics"
	require.Error(t, badPath.Validate())
}
