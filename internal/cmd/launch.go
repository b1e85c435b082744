package cmd

import (
	"github.com/dendrascience/sugarctl/sugar"
	"github.com/spf13/cobra"
)

// NewLaunchCmd creates the launch command, which validates, uploads and
// deploys in one go.
func NewLaunchCmd(a *App) *cobra.Command {
	var (
		rpcURL               string
		strict               bool
		skipCollectionPrompt bool
	)

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Validate, upload and deploy in one step",
		Long: `Run validate, upload and deploy in sequence.

With --strict, validation warnings become errors. With
--skip-collection-prompt, the missing-collection prompt is not shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.facade.Launch(cmd.Context(), sugar.LaunchParams{
				RPCURL:               optionalString(cmd, "rpc-url", rpcURL),
				Strict:               strict,
				SkipCollectionPrompt: skipCollectionPrompt,
			})
		},
	}

	addRPCFlag(cmd, &rpcURL)
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat validation warnings as errors")
	cmd.Flags().BoolVar(&skipCollectionPrompt, "skip-collection-prompt", false, "Do not prompt when no collection is set")

	return cmd
}
