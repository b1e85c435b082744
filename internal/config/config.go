// Package config loads sugarctl settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	BackendExec   = "exec"
	BackendRemote = "remote"

	defaultSugarBin = "sugar"
)

var (
	ErrUnknownBackend  = errors.New("unknown backend")
	ErrSocketRequired  = errors.New("socket path is required")
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrDryRunRemote    = errors.New("dry run needs the exec backend")
)

// Config selects and configures the implementation behind the façade.
// Empty strings leave the corresponding sugar option to the binary.
type Config struct {
	Backend  string `env:"SUGARCTL_BACKEND"   envDefault:"exec"`
	Socket   string `env:"SUGARCTL_SOCKET"`
	SugarBin string `env:"SUGARCTL_SUGAR_BIN" envDefault:"sugar"`
	Keypair  string `env:"SUGARCTL_KEYPAIR"`
	Config   string `env:"SUGARCTL_CONFIG"`
	Cache    string `env:"SUGARCTL_CACHE"`
	Assets   string `env:"SUGARCTL_ASSETS"`

	// SugarLogLevel is passed to the sugar binary, LogLevel drives sugarctl's
	// own logger.
	SugarLogLevel string `env:"SUGARCTL_SUGAR_LOG_LEVEL"`
	LogLevel      string `env:"SUGARCTL_LOG_LEVEL" envDefault:"info"`

	DryRun bool `env:"SUGARCTL_DRY_RUN"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendExec:
	case BackendRemote:
		if c.Socket == "" {
			return fmt.Errorf("%w for the %s backend", ErrSocketRequired, BackendRemote)
		}
		if c.DryRun {
			return ErrDryRunRemote
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// IgnoredByRemote names the sugar binary settings that are set but have no
// effect because the remote backend is selected. The serving process applies
// its own.
func (c Config) IgnoredByRemote() []string {
	if c.Backend != BackendRemote {
		return nil
	}
	var ignored []string
	if c.SugarBin != "" && c.SugarBin != defaultSugarBin {
		ignored = append(ignored, "sugar-bin")
	}
	for _, setting := range []struct {
		name  string
		value string
	}{
		{"keypair", c.Keypair},
		{"config", c.Config},
		{"cache", c.Cache},
		{"assets-dir", c.Assets},
		{"sugar-log-level", c.SugarLogLevel},
	} {
		if setting.value != "" {
			ignored = append(ignored, setting.name)
		}
	}
	return ignored
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w %q", ErrUnknownLogLevel, c.LogLevel)
	}
}
