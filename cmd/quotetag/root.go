package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quotecms/quotetag/internal/version"
	"github.com/quotecms/quotetag/pkg/config"
	"github.com/quotecms/quotetag/pkg/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "quotetag",
		Short: "Keyword-based auto-tagging for a quotes collection",
		Long: `quotetag derives tags for free-text quotes from a keyword→tags rule
file, honours per-quote user removals, and supports reloading the rule
set without restarting anything that embeds the engine.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(untagCmd)
	rootCmd.AddCommand(reprocessCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig resolves configuration for a command run
func loadConfig() (config.Config, error) {
	return config.Load()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quotetag version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
