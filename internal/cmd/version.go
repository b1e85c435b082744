package cmd

import (
	"github.com/dendrascience/sugarctl/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No façade is needed, so configuration is not validated.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			version.FprintVersion(cmd.OutOrStdout(), "sugarctl")
		},
	}
}
