package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dendrascience/sugarctl/internal/config"
	"github.com/dendrascience/sugarctl/sugar"
	"github.com/dendrascience/sugarctl/sugar/execbackend"
	"github.com/dendrascience/sugarctl/sugar/remote"
	"github.com/spf13/cobra"
)

// App is the state shared by every subcommand: configuration (environment
// first, flags on top), the logger and the façade built from them.
type App struct {
	cfg config.Config
	// loadErr is the environment parse failure; setup reports it.
	loadErr error
	logger  *slog.Logger
	facade  *sugar.Facade

	// impl, when set, replaces the configured backend.
	impl sugar.Commands

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp() *App {
	return &App{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// loadConfig reads the SUGARCTL_* environment. Flags registered afterwards
// use the loaded values as their defaults.
func (a *App) loadConfig() {
	a.cfg, a.loadErr = config.Load()
}

// setup runs before every façade command: it validates the configuration
// and builds the logger and façade.
func (a *App) setup(cmd *cobra.Command, args []string) error {
	if a.loadErr != nil {
		return fmt.Errorf("loading configuration: %w", a.loadErr)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	level, err := a.cfg.SlogLevel()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	if ignored := a.cfg.IgnoredByRemote(); len(ignored) > 0 && a.impl == nil {
		a.logger.Warn("settings ignored by the remote backend", "settings", ignored)
	}

	impl, err := a.backend()
	if err != nil {
		return err
	}
	a.facade = sugar.New(impl, sugar.WithLogger(a.logger))
	return nil
}

// backend resolves the implementation the façade forwards to.
func (a *App) backend() (sugar.Commands, error) {
	if a.impl != nil {
		return a.impl, nil
	}
	switch a.cfg.Backend {
	case config.BackendExec:
		return a.execBackend(), nil
	case config.BackendRemote:
		return remote.NewClient(a.cfg.Socket, a.logger), nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, a.cfg.Backend)
	}
}

func (a *App) execBackend() sugar.Commands {
	if a.impl != nil {
		return a.impl
	}
	return execbackend.New(execbackend.Options{
		Binary:   a.cfg.SugarBin,
		Keypair:  a.cfg.Keypair,
		Config:   a.cfg.Config,
		Cache:    a.cfg.Cache,
		Assets:   a.cfg.Assets,
		LogLevel: a.cfg.SugarLogLevel,
		DryRun:   a.cfg.DryRun,
		Stdin:    a.stdin,
		Stdout:   a.stdout,
		Stderr:   a.stderr,
		Logger:   a.logger,
	})
}

// optionalString returns nil unless the flag was given on the command line,
// so unset flags reach the implementation as absent rather than as "".
func optionalString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func optionalUint64(cmd *cobra.Command, name string, value uint64) *uint64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func optionalUint8(cmd *cobra.Command, name string, value uint8) *uint8 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// optionalArg returns the positional argument at i, or nil.
func optionalArg(args []string, i int) *string {
	if i >= len(args) {
		return nil
	}
	return &args[i]
}

// addRPCFlag registers the --rpc-url flag shared by every networked command.
func addRPCFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "rpc-url", "r", "", "RPC endpoint (defaults to the implementation's endpoint)")
}

func addCandyMachineFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "candy-machine", "", "Candy machine address (defaults to the cache file's)")
}
