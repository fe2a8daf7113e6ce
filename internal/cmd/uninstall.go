package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/claude"
	"github.com/xdg/mergegate/internal/term"
)

var (
	uninstallSettings string
	uninstallForce    bool
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the hooks from .claude/settings.json",
	Long: `Remove the mergegate hook entries from a Claude Code settings file.

Only entries owned by mergegate are removed; hooks installed by other
tools and all other settings keys stay as they are. The approval store
and configuration are left in place.`,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)

	uninstallCmd.Flags().StringVar(&uninstallSettings, "settings", "", "Settings file to modify (default: project .claude/settings.json)")
	uninstallCmd.Flags().BoolVarP(&uninstallForce, "force", "f", false, "Skip the confirmation prompt")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	path, err := settingsTarget(uninstallSettings)
	if err != nil {
		return err
	}

	if !uninstallForce {
		ok, err := confirm(cmd, fmt.Sprintf("Remove mergegate hooks from %s?", path))
		if err != nil {
			return err
		}
		if !ok {
			term.Println("Aborted.")
			return nil
		}
	}

	changed, err := claude.UninstallFile(path)
	if err != nil {
		return fmt.Errorf("failed to uninstall hooks: %w", err)
	}

	if changed {
		term.Printf("Removed mergegate hooks from %s\n", path)
	} else {
		term.Printf("No mergegate hooks in %s\n", path)
	}
	return nil
}
