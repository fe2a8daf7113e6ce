package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/config"
	"github.com/xdg/mergegate/internal/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global configuration",
	Long: `Manage mergegate's global configuration.

The configuration file is stored at ~/.config/mergegate/config.yaml
(or $XDG_CONFIG_HOME/mergegate/config.yaml if XDG_CONFIG_HOME is set).
Every setting can also be overridden per invocation with MERGEGATE_*
environment variables.

Use the subcommands to view, edit, or initialize the configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configuration file as parsed",
	Long: `Print the configuration file's contents as YAML.

If no config file exists, shows the default configuration. Environment
overrides are not applied here; "mergegate status" shows the fully
resolved state.`,
	RunE: runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the config in $EDITOR",
	Long: `Open the configuration file in your editor.

The editor is determined by the EDITOR environment variable, falling back
to vi. If the configuration file doesn't exist, a default one is created
first. The result is validated after the editor exits and any problems
are reported as warnings.`,
	RunE: runConfigEdit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Long:  `Print the path to the configuration file.`,
	Run:   runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default config file",
	Long: `Create the default configuration file if it doesn't exist.

This creates a fully-commented configuration file with all default values.
If the file already exists, this command does nothing.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	term.Printf("%s", data)
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	if err := config.EditConfig(); err != nil {
		return fmt.Errorf("failed to edit config: %w", err)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	term.Println(config.Path())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.Path()
	if _, err := os.Stat(path); err == nil {
		term.Printf("Config already exists at: %s\n", path)
		return nil
	}

	if err := config.WriteDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	term.Printf("Created default config at: %s\n", path)
	return nil
}
