package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/config"
	"github.com/xdg/mergegate/internal/term"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List approved pull requests",
	Long: `List the pull requests currently approved for merge.

Entries come back in store order, sorted ascending by string comparison.
With --quiet, prints one bare number per line for scripting.`,
	Aliases: []string{"ls"},
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	eff, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	store := openStore(eff)
	entries, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	// Quiet output is the machine surface: bare numbers, nothing else.
	if term.IsQuiet() {
		for _, pr := range entries {
			fmt.Fprintln(term.Stdout(), pr)
		}
		return nil
	}

	if len(entries) == 0 {
		term.Println("No approved pull requests.")
		return nil
	}

	term.Printf("Approved pull requests (%d):\n", len(entries))
	green := color.New(color.FgGreen)
	for _, pr := range entries {
		term.Printf("  %s\n", green.Sprintf("#%s", pr))
	}
	return nil
}
