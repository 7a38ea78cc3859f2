// Package cli provides configuration commands.
package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/opencode-ai/contrast/internal/config"
	"github.com/spf13/cobra"
)

var (
	configInitForce bool
	configDirFunc   = config.DefaultConfigDir
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage contrast configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the commented default configuration to --config, or to
$XDG_CONFIG_HOME/contrast/config.yaml. The existing file is not read, so
--force can replace a config that no longer loads.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigLoad: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = filepath.Join(configDirFunc(), "config.yaml")
		}

		if err := config.WriteDefault(path, configInitForce); err != nil {
			if errors.Is(err, config.ErrConfigExists) {
				return &InputError{
					Message: fmt.Sprintf("config already exists at %s", path),
					Hint:    "use --force to overwrite",
				}
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return WriteOutput(cmd.OutOrStdout(), GetConfig())
	},
}
