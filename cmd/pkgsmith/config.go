package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/pkgsmith/pkgsmith/pkg/identity"
	"github.com/pkgsmith/pkgsmith/pkg/licenses"
	"github.com/pkgsmith/pkgsmith/pkg/paths"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

var configFlags struct {
	configFile string
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration defaults",
	Long: `Print the configuration a plain "new" invocation would run with:
built-in defaults layered under the user configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file := configFlags.configFile
		if file == "" {
			file = paths.ConfigFile()
		}
		cfg, err := effectiveConfig(file, config.Deps{
			Identity: identity.NewGitLookup(),
			Licenses: licenses.NewEmbedded(),
		})
		if err != nil {
			return err
		}
		fmt.Print(config.Describe(cfg))
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configFlags.configFile, "config", "",
		"Configuration file (default "+paths.ConfigFile()+")")
}

// effectiveConfig resolves the layered defaults into a validated
// configuration, without any command-line overrides.
func effectiveConfig(configFile string, deps config.Deps) (*types.Config, error) {
	opts, err := config.LoadDefaults(configFile, nil)
	if err != nil {
		return nil, err
	}
	return config.New(opts, deps)
}
