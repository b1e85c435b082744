package cmd

import (
	"github.com/dendrascience/sugarctl/sugar"
	"github.com/spf13/cobra"
)

// NewMintCmd creates the mint command.
func NewMintCmd(a *App) *cobra.Command {
	var (
		rpcURL       string
		number       uint64
		receiver     string
		candyMachine string
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint NFTs from a candy machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Mint(cmd.Context(), sugar.MintParams{
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				Number:       optionalUint64(cmd, "number", number),
				Receiver:     optionalString(cmd, "receiver", receiver),
				CandyMachine: optionalString(cmd, "candy-machine", candyMachine),
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)
	cmd.Flags().Uint64VarP(&number, "number", "n", 0, "Number of NFTs to mint")
	cmd.Flags().StringVar(&receiver, "receiver", "", "Wallet that receives the minted NFTs")

	return cmd
}

// NewShowCmd creates the show command.
func NewShowCmd(a *App) *cobra.Command {
	var (
		rpcURL   string
		unminted bool
	)

	cmd := &cobra.Command{
		Use:   "show [CANDY_MACHINE]",
		Short: "Show the on-chain state of a candy machine",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Show(cmd.Context(), sugar.ShowParams{
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				CandyMachine: optionalArg(args, 0),
				Unminted:     unminted,
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	cmd.Flags().BoolVar(&unminted, "unminted", false, "List the indices of items not yet minted")

	return cmd
}

// NewSignCmd creates the sign command.
func NewSignCmd(a *App) *cobra.Command {
	var rpcURL, mint, candyMachineID string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign minted NFTs as a verified creator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Sign(cmd.Context(), sugar.SignParams{
				RPCURL:         optionalString(cmd, "rpc-url", rpcURL),
				Mint:           optionalString(cmd, "mint", mint),
				CandyMachineID: optionalString(cmd, "candy-machine-id", candyMachineID),
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	cmd.Flags().StringVar(&mint, "mint", "", "Sign a single NFT by mint address")
	cmd.Flags().StringVar(&candyMachineID, "candy-machine-id", "", "Sign every NFT of this candy machine")

	return cmd
}

// NewUpdateCmd creates the update command.
func NewUpdateCmd(a *App) *cobra.Command {
	var rpcURL, newAuthority, candyMachine string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the candy machine config or authority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Update(cmd.Context(), sugar.UpdateParams{
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				NewAuthority: optionalString(cmd, "new-authority", newAuthority),
				CandyMachine: optionalString(cmd, "candy-machine", candyMachine),
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)
	cmd.Flags().StringVar(&newAuthority, "new-authority", "", "Transfer update authority to this address")

	return cmd
}

// NewWithdrawCmd creates the withdraw command.
func NewWithdrawCmd(a *App) *cobra.Command {
	var (
		rpcURL       string
		candyMachine string
		list         bool
	)

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw rent from candy machines, or list them with --list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Withdraw(cmd.Context(), sugar.WithdrawParams{
				CandyMachine: optionalString(cmd, "candy-machine", candyMachine),
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				List:         list,
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)
	cmd.Flags().BoolVar(&list, "list", false, "Only list the candy machines that can be withdrawn")

	return cmd
}
