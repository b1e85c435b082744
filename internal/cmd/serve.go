package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dendrascience/sugarctl/internal/config"
	"github.com/dendrascience/sugarctl/sugar/remote"
	"github.com/dendrascience/sugarctl/version"
	"github.com/spf13/cobra"
)

var errServeRemoteBackend = errors.New("serve cannot host the remote backend")

// NewServeCmd creates the serve command, which hosts the sugar binary behind
// the socket protocol so another process can drive it with the remote
// backend.
func NewServeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve sugar commands on a Unix socket",
		Long: `Listen on --socket and run each incoming call with the sugar binary.

Clients connect with --backend remote and the same --socket path. Every
connection carries one call; calls run concurrently.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a)
		},
	}
}

func runServe(ctx context.Context, a *App) error {
	if a.cfg.Socket == "" {
		return fmt.Errorf("%w for serve", config.ErrSocketRequired)
	}
	if a.impl == nil && a.cfg.Backend == config.BackendRemote {
		return errServeRemoteBackend
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info("sugarctl serving", "version", version.GetVersion(), "socket", a.cfg.Socket)
	server := remote.NewServer(a.cfg.Socket, a.execBackend(), a.logger)
	if err := server.Serve(ctx); err != nil {
		return err
	}
	a.logger.Info("shutdown complete")
	return nil
}
