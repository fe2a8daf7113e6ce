package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/claude"
	"github.com/xdg/mergegate/internal/config"
	"github.com/xdg/mergegate/internal/project"
	"github.com/xdg/mergegate/internal/term"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store, config, and hook installation state",
	Long: `Show the resolved mergegate state for the current directory.

Reports the approval store path and entry count, the effective
configuration, and whether the hooks are installed in the project's
.claude/settings.json.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	eff, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	store := openStore(eff)
	entries, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	term.Printf("Store:      %s\n", store.Path())
	term.Printf("Approved:   %d\n", len(entries))
	term.Printf("Tools:      %s\n", strings.Join(eff.Tools, ", "))
	term.Printf("Log level:  %s\n", eff.LogLevel)
	term.Printf("Audit:      %v\n", eff.Audit)
	if eff.Disabled {
		term.Printf("Disabled:   %s\n", color.YellowString("yes (MERGEGATE_DISABLED)"))
	}
	term.Printf("Config:     %s\n", config.Path())

	term.Printf("Hooks:      %s\n", hookStateLine())
	return nil
}

// hookStateLine describes the hook installation state of the nearest
// project, colored for a quick read.
func hookStateLine() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	root, err := project.FindRoot(cwd)
	if err != nil {
		return color.YellowString("no project found (run from a project directory)")
	}

	path := claude.SettingsPath(root)
	state, err := claude.InspectFile(path)
	if err != nil {
		return color.RedString("unreadable settings at %s: %v", path, err)
	}

	switch {
	case state.Installed():
		return color.GreenString("installed in %s", path)
	case state.Pre || state.Post:
		return color.YellowString("partially installed in %s (run 'mergegate install')", path)
	default:
		return color.RedString("not installed (run 'mergegate install')")
	}
}
