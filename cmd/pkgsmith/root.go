package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pkgsmith/pkgsmith/internal/version"
	"github.com/pkgsmith/pkgsmith/pkg/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "pkgsmith",
		Short: "A package scaffolding generator",
		Long: `pkgsmith generates Julia package skeletons from a configurable template:
a README with service badges, ignore file, license, version floor and test
skeleton, extended by plugins for CI, coverage and documentation services.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. It is called once, from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(licensesCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pkgsmith %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.Date)
	},
}
