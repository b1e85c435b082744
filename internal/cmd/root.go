package cmd

import (
	"github.com/dendrascience/sugarctl/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the sugarctl CLI.
// Settings come from SUGARCTL_* environment variables; flags override them.
// An unparsable variable fails every command that reaches the backend.
func NewRootCmd() *cobra.Command {
	a := newApp()
	a.loadConfig()
	return newRootCmd(a)
}

func newRootCmd(a *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sugarctl",
		Short: "sugarctl - drive the Sugar candy machine tool suite",
		Long: `sugarctl forwards Sugar candy machine commands to an implementation.

With --backend exec (the default) each command runs the sugar binary. With
--backend remote it is sent over --socket to a process running
"sugarctl serve" or any other server speaking the same protocol.

Unset flags are passed on as absent, so the implementation picks the
defaults (RPC endpoint, candy machine from the cache file, and so on).`,
		Version:           version.GetFullVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.Backend, "backend", a.cfg.Backend, "Implementation to forward to: exec or remote")
	flags.StringVar(&a.cfg.Socket, "socket", a.cfg.Socket, "Unix socket of the remote implementation")
	flags.StringVar(&a.cfg.SugarBin, "sugar-bin", a.cfg.SugarBin, "Path of the sugar binary (exec backend)")
	flags.StringVarP(&a.cfg.Keypair, "keypair", "k", a.cfg.Keypair, "Keypair file passed to sugar")
	flags.StringVarP(&a.cfg.Config, "config", "c", a.cfg.Config, "Candy machine config file passed to sugar")
	flags.StringVar(&a.cfg.Cache, "cache", a.cfg.Cache, "Cache file passed to sugar")
	flags.StringVar(&a.cfg.Assets, "assets-dir", a.cfg.Assets, "Assets directory passed to sugar")
	flags.StringVar(&a.cfg.SugarLogLevel, "sugar-log-level", a.cfg.SugarLogLevel, "Log level passed to sugar")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "sugarctl log level: debug, info, warn or error")
	flags.BoolVar(&a.cfg.DryRun, "dry-run", a.cfg.DryRun, "Print the sugar command line instead of running it")

	groupDeploy := "deploy"
	groupManage := "manage"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupDeploy,
		Title: "Deployment",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupManage,
		Title: "Candy Machine Management",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	deployCommands := []*cobra.Command{
		NewCreateConfigCmd(a),
		NewValidateCmd(a),
		NewUploadCmd(a),
		NewDeployCmd(a),
		NewLaunchCmd(a),
		NewVerifyCmd(a),
		NewHashCmd(a),
	}
	manageCommands := []*cobra.Command{
		NewCollectionCmd(a),
		NewFreezeCmd(a),
		NewMintCmd(a),
		NewRevealCmd(a),
		NewShowCmd(a),
		NewSignCmd(a),
		NewUpdateCmd(a),
		NewWithdrawCmd(a),
	}
	utilityCommands := []*cobra.Command{
		NewBundlrCmd(a),
		NewServeCmd(a),
		NewVersionCmd(a),
	}

	for _, c := range deployCommands {
		c.GroupID = groupDeploy
		rootCmd.AddCommand(c)
	}
	for _, c := range manageCommands {
		c.GroupID = groupManage
		rootCmd.AddCommand(c)
	}
	for _, c := range utilityCommands {
		c.GroupID = groupUtilities
		rootCmd.AddCommand(c)
	}

	return rootCmd
}
