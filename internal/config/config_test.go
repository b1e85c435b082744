package config

import (
	"errors"
	"log/slog"
	"os"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SUGARCTL_BACKEND", "SUGARCTL_SOCKET", "SUGARCTL_SUGAR_BIN",
		"SUGARCTL_KEYPAIR", "SUGARCTL_LOG_LEVEL", "SUGARCTL_DRY_RUN",
	} {
		// Setenv restores the original value after the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != BackendExec {
		t.Errorf("Backend = %q, want %q", cfg.Backend, BackendExec)
	}
	if cfg.SugarBin != "sugar" {
		t.Errorf("SugarBin = %q, want sugar", cfg.SugarBin)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Keypair != "" || cfg.Socket != "" || cfg.DryRun {
		t.Errorf("unexpected non-zero settings: %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SUGARCTL_BACKEND", "remote")
	t.Setenv("SUGARCTL_SOCKET", "/run/sugar.sock")
	t.Setenv("SUGARCTL_KEYPAIR", "/keys/id.json")
	t.Setenv("SUGARCTL_DRY_RUN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != BackendRemote || cfg.Socket != "/run/sugar.sock" {
		t.Errorf("backend settings = %q %q", cfg.Backend, cfg.Socket)
	}
	if cfg.Keypair != "/keys/id.json" {
		t.Errorf("Keypair = %q", cfg.Keypair)
	}
	if !cfg.DryRun {
		t.Error("DryRun = false, want true")
	}
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("SUGARCTL_DRY_RUN", "sometimes")
	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want parse failure")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "exec", cfg: Config{Backend: BackendExec}},
		{name: "remote with socket", cfg: Config{Backend: BackendRemote, Socket: "/tmp/s.sock"}},
		{name: "remote without socket", cfg: Config{Backend: BackendRemote}, wantErr: ErrSocketRequired},
		{name: "remote dry run", cfg: Config{Backend: BackendRemote, Socket: "/tmp/s.sock", DryRun: true}, wantErr: ErrDryRunRemote},
		{name: "exec dry run", cfg: Config{Backend: BackendExec, DryRun: true}},
		{name: "unknown backend", cfg: Config{Backend: "wasm"}, wantErr: ErrUnknownBackend},
		{name: "bad log level", cfg: Config{Backend: BackendExec, LogLevel: "loud"}, wantErr: ErrUnknownLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := Config{LogLevel: tt.in}.SlogLevel()
		if err != nil {
			t.Errorf("SlogLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIgnoredByRemote(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "exec uses every setting",
			cfg:  Config{Backend: BackendExec, Keypair: "id.json", SugarBin: "/opt/sugar"},
		},
		{
			name: "remote with defaults",
			cfg:  Config{Backend: BackendRemote, SugarBin: "sugar"},
		},
		{
			name: "remote with binary settings",
			cfg: Config{
				Backend:       BackendRemote,
				SugarBin:      "/opt/sugar",
				Keypair:       "id.json",
				Cache:         "cache.json",
				SugarLogLevel: "debug",
			},
			want: []string{"sugar-bin", "keypair", "cache", "sugar-log-level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.IgnoredByRemote()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("IgnoredByRemote() = %q, want %q", got, tt.want)
			}
		})
	}
}
