package cmd

import (
	"context"

	"github.com/dendrascience/sugarctl/sugar"
	"github.com/spf13/cobra"
)

// newEndpointCmd builds a command whose only parameter is the RPC endpoint.
func newEndpointCmd(use, short, long string, run func(ctx context.Context, rpcURL *string) error) *cobra.Command {
	var rpcURL string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), optionalString(cmd, "rpc-url", rpcURL))
		},
	}

	addRPCFlag(cmd, &rpcURL)

	return cmd
}

// NewCreateConfigCmd creates the create-config command.
func NewCreateConfigCmd(a *App) *cobra.Command {
	return newEndpointCmd("create-config", "Interactively create a candy machine config file",
		`Walk through the candy machine settings (price, supply, creators, guards,
upload method) and write them to a config file.`,
		func(ctx context.Context, rpcURL *string) error {
			return a.facade.CreateConfig(ctx, sugar.CreateConfigParams{RPCURL: rpcURL})
		})
}

// NewDeployCmd creates the deploy command.
func NewDeployCmd(a *App) *cobra.Command {
	return newEndpointCmd("deploy", "Create a candy machine and write its config lines", "",
		func(ctx context.Context, rpcURL *string) error {
			return a.facade.Deploy(ctx, sugar.DeployParams{RPCURL: rpcURL})
		})
}

// NewUploadCmd creates the upload command.
func NewUploadCmd(a *App) *cobra.Command {
	return newEndpointCmd("upload", "Upload assets to the configured storage", "",
		func(ctx context.Context, rpcURL *string) error {
			return a.facade.Upload(ctx, sugar.UploadParams{RPCURL: rpcURL})
		})
}

// NewRevealCmd creates the reveal command.
func NewRevealCmd(a *App) *cobra.Command {
	return newEndpointCmd("reveal", "Reveal hidden-settings NFTs after mint", "",
		func(ctx context.Context, rpcURL *string) error {
			return a.facade.Reveal(ctx, sugar.RevealParams{RPCURL: rpcURL})
		})
}

// NewVerifyCmd creates the verify command.
func NewVerifyCmd(a *App) *cobra.Command {
	return newEndpointCmd("verify", "Verify on-chain config lines against the cache", "",
		func(ctx context.Context, rpcURL *string) error {
			return a.facade.Verify(ctx, sugar.VerifyParams{RPCURL: rpcURL})
		})
}
