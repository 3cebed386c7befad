// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
// Flags, when given, take precedence over the environment.
func NewConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)
	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)

	v.SetDefault("roster.backend", "memory")
	v.SetDefault("roster.seed_file", "")
	v.SetDefault("roster.enforce_capacity", false)
	v.SetDefault("roster.validate_email", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("static.dir", "static")
	v.SetDefault("static.index", "/static/index.html")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"roster.backend",
		"roster.seed_file",
		"roster.enforce_capacity",
		"roster.validate_email",
		"metrics.enabled",
		"metrics.path",
		"static.dir",
		"static.index",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"host":             "server.host",
	"port":             "server.port",
	"log-level":        "logging.level",
	"seed-file":        "roster.seed_file",
	"enforce-capacity": "roster.enforce_capacity",
	"validate-email":   "roster.validate_email",
	"static-dir":       "static.dir",
}

// RegisterFlags declares the flags understood by NewConfig.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("host", "", "address to bind the HTTP server to")
	flags.Int("port", 0, "port to bind the HTTP server to")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("seed-file", "", "HCL file with the initial activities")
	flags.Bool("enforce-capacity", false, "reject signups once max_participants is reached")
	flags.Bool("validate-email", false, "reject signups with a malformed email")
	flags.String("static-dir", "", "directory served under /static")
}

// bindFlags binds only flags the user actually set so unset flags do not
// shadow environment values and defaults.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
