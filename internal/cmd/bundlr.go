package cmd

import (
	"github.com/dendrascience/sugarctl/sugar"
	"github.com/spf13/cobra"
)

// NewBundlrCmd creates the bundlr command. Its balance and withdraw
// subcommands map onto the two bundlr actions.
func NewBundlrCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundlr",
		Short: "Inspect or withdraw the Bundlr storage balance",
		Long: `Interact with the Bundlr network account that funds asset storage.

  balance   show the funded balance
  withdraw  withdraw the funded balance back to the wallet`,
	}
	cmd.AddCommand(
		newBundlrActionCmd(a, sugar.BundlrBalance, "Show the Bundlr storage balance"),
		newBundlrActionCmd(a, sugar.BundlrWithdraw, "Withdraw the Bundlr storage balance"),
	)
	return cmd
}

func newBundlrActionCmd(a *App, action sugar.BundlrAction, short string) *cobra.Command {
	var rpcURL string

	cmd := &cobra.Command{
		Use:   action.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Bundlr(cmd.Context(), sugar.BundlrParams{
				RPCURL: optionalString(cmd, "rpc-url", rpcURL),
				Action: action,
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)

	return cmd
}
