package main

import (
	"github.com/spf13/cobra"

	"github.com/mhike/mhike/internal/config"
	"github.com/mhike/mhike/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "mhike",
	Short:         "mhike - a personal hike log",
	Long:          "mhike records hikes and the observations made along the way in a local SQLite database.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cfg := config.Load()
		logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	},
}

func init() {
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newObsCmd())
	rootCmd.AddCommand(newMCPCmd())
}
