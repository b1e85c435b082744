package cmd

import (
	"github.com/dendrascience/sugarctl/sugar"
	"github.com/spf13/cobra"
)

// NewCollectionCmd creates the collection command with its set and remove
// subcommands.
func NewCollectionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage the collection associated with a candy machine",
	}
	cmd.AddCommand(newCollectionSetCmd(a), newCollectionRemoveCmd(a))
	return cmd
}

func newCollectionSetCmd(a *App) *cobra.Command {
	var rpcURL, candyMachine, collectionMint string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the collection mint of a candy machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.CollectionSet(cmd.Context(), sugar.CollectionSetParams{
				RPCURL:         optionalString(cmd, "rpc-url", rpcURL),
				CandyMachine:   optionalString(cmd, "candy-machine", candyMachine),
				CollectionMint: collectionMint,
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)
	cmd.Flags().StringVar(&collectionMint, "collection-mint", "", "Mint address of the collection NFT (required)")
	cmd.MarkFlagRequired("collection-mint")

	return cmd
}

func newCollectionRemoveCmd(a *App) *cobra.Command {
	var rpcURL, candyMachine string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the collection from a candy machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.CollectionRemove(cmd.Context(), sugar.CollectionRemoveParams{
				RPCURL:       optionalString(cmd, "rpc-url", rpcURL),
				CandyMachine: optionalString(cmd, "candy-machine", candyMachine),
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	addCandyMachineFlag(cmd, &candyMachine)

	return cmd
}
