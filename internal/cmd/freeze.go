package cmd

import (
	"github.com/dendrascience/sugarctl/sugar"
	"github.com/spf13/cobra"
)

// NewFreezeCmd creates the freeze command. Freezing holds minted NFTs and
// treasury funds until the freeze period ends or the freeze is lifted.
func NewFreezeCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Control the freeze guard of a candy machine",
	}
	cmd.AddCommand(
		newFreezeEnableCmd(a),
		newFreezeDisableCmd(a),
		newFreezeThawCmd(a),
		newFreezeUnlockFundsCmd(a),
	)
	return cmd
}

func newFreezeEnableCmd(a *App) *cobra.Command {
	var (
		rpcURL       string
		candyMachine string
		freezeDays   uint8
	)

	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Enable freezing of minted NFTs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.FreezeEnable(cmd.Context(), sugar.FreezeEnableParams{
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				CandyMachine: optionalString(cmd, "candy-machine", candyMachine),
				FreezeDays:   optionalUint8(cmd, "freeze-days", freezeDays),
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)
	cmd.Flags().Uint8Var(&freezeDays, "freeze-days", 0, "Number of days to freeze for")

	return cmd
}

func newFreezeDisableCmd(a *App) *cobra.Command {
	var rpcURL, candyMachine string

	cmd := &cobra.Command{
		Use:   "disable",
		Short: "Disable freezing of minted NFTs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.FreezeDisable(cmd.Context(), sugar.FreezeDisableParams{
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				CandyMachine: optionalString(cmd, "candy-machine", candyMachine),
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)

	return cmd
}

func newFreezeThawCmd(a *App) *cobra.Command {
	var (
		rpcURL       string
		candyMachine string
		all          bool
	)

	cmd := &cobra.Command{
		Use:   "thaw [NFT_MINT]",
		Short: "Thaw one frozen NFT, or all of them with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Thaw(cmd.Context(), sugar.ThawParams{
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				All:          all,
				CandyMachine: optionalString(cmd, "candy-machine", candyMachine),
				NFTMint:      optionalArg(args, 0),
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)
	cmd.Flags().BoolVar(&all, "all", false, "Thaw every NFT minted from the candy machine")

	return cmd
}

func newFreezeUnlockFundsCmd(a *App) *cobra.Command {
	var rpcURL, candyMachine string

	cmd := &cobra.Command{
		Use:   "unlock-funds",
		Short: "Release treasury funds held by the freeze escrow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.UnfreezeFunds(cmd.Context(), sugar.UnfreezeFundsParams{
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				CandyMachine: optionalString(cmd, "candy-machine", candyMachine),
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)

	return cmd
}
