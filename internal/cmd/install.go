package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/claude"
	"github.com/xdg/mergegate/internal/config"
	"github.com/xdg/mergegate/internal/pathutil"
	"github.com/xdg/mergegate/internal/project"
	"github.com/xdg/mergegate/internal/term"
)

var installSettings string

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the hooks into .claude/settings.json",
	Long: `Install the mergegate hooks into a Claude Code settings file.

Adds a PreToolUse and a PostToolUse hook entry pointing at this binary.
The default target is .claude/settings.json under the nearest project
root; use --settings to target another file. Unrelated settings keys and
hooks from other tools are left untouched. Running install again after
the binary moves updates the entries in place.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().StringVar(&installSettings, "settings", "", "Settings file to modify (default: project .claude/settings.json)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	eff, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	path, err := settingsTarget(installSettings)
	if err != nil {
		return err
	}

	exePath, err := pathutil.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate the mergegate binary: %w", err)
	}

	changed, err := claude.InstallFile(path, exePath, eff.Tools)
	if err != nil {
		return fmt.Errorf("failed to install hooks: %w", err)
	}

	if changed {
		term.Printf("Installed mergegate hooks into %s\n", path)
	} else {
		term.Printf("Hooks already installed in %s\n", path)
	}
	return nil
}

// settingsTarget resolves which settings file to operate on: the explicit
// --settings path when given, otherwise the settings file of the nearest
// project root.
func settingsTarget(flag string) (string, error) {
	if flag != "" {
		return pathutil.ExpandHome(flag), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := project.FindRoot(cwd)
	if err != nil {
		return "", fmt.Errorf("no project found from %s (looked for .claude or .git); use --settings to pick a file", cwd)
	}
	return claude.SettingsPath(root), nil
}
