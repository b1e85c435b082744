package cmd

import (
	"github.com/dendrascience/sugarctl/sugar"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd(a *App) *cobra.Command {
	var strict, skipCollectionPrompt bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the assets and config before upload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Validate(cmd.Context(), sugar.ValidateParams{
				Strict:               strict,
				SkipCollectionPrompt: skipCollectionPrompt,
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat validation warnings as errors")
	cmd.Flags().BoolVar(&skipCollectionPrompt, "skip-collection-prompt", false, "Do not prompt when no collection is set")

	return cmd
}

// NewHashCmd creates the hash command.
func NewHashCmd(a *App) *cobra.Command {
	var compare string

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute the hidden-settings hash, or compare it with --compare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Hash(cmd.Context(), sugar.HashParams{
				Compare: optionalString(cmd, "compare", compare),
			})
		},
	}

	cmd.Flags().StringVar(&compare, "compare", "", "Hash to compare the computed value against")

	return cmd
}
