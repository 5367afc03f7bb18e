// file: cmd/config.go
// version: 1.1.0
// guid: 6cd9fd52-9801-4dd4-8567-cea981ff2a11

package cmd

import (
	"fmt"

	"github.com/jdfalk/spotlight/internal/config"
	"github.com/spf13/cobra"
)

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the spotlight configuration file",
}

// configSaveCmd represents the config save command
var configSaveCmd = &cobra.Command{
	Use:   "save [PATH]",
	Short: "Write the effective settings to a YAML config file",
	Long: `Write the effective settings (defaults, config file, environment and flags
combined) to PATH, or to the loaded config file, or to $HOME/.spotlight.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate cannot see unknown metric names; the engine can.
		if _, err := newEngine(config.AppConfig); err != nil {
			return err
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.SaveConfigToFile(path); err != nil {
			return err
		}
		if path == "" {
			path = config.ConfigFilePath()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
		return nil
	},
}

// configImportCmd represents the config import command
var configImportCmd = &cobra.Command{
	Use:   "import SOURCE [PATH]",
	Short: "Merge settings from SOURCE and save them",
	Long: `Merge the YAML settings in SOURCE over the effective settings, then save the
result to PATH, or to the loaded config file, or to $HOME/.spotlight.yaml.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadConfigFromFile(args[0]); err != nil {
			return err
		}
		if _, err := newEngine(config.AppConfig); err != nil {
			return err
		}

		path := ""
		if len(args) == 2 {
			path = args[1]
		}
		if err := config.SaveConfigToFile(path); err != nil {
			return err
		}
		if path == "" {
			path = config.ConfigFilePath()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration imported from %s and saved to %s\n", args[0], path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSaveCmd)
	configCmd.AddCommand(configImportCmd)
}
