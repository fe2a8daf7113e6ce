package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/config"
	"github.com/xdg/mergegate/internal/match"
	"github.com/xdg/mergegate/internal/prompt"
	"github.com/xdg/mergegate/internal/term"
)

var (
	revokeAll   bool
	revokeForce bool
)

var revokeCmd = &cobra.Command{
	Use:   "revoke [<pr>...]",
	Short: "Revoke merge approvals",
	Long: `Remove pull requests from the approval store.

A revoked pull request goes back to needing confirmation before merge. The
hooks only ever add approvals; this command is the one way approvals come
back out. Use --all to clear the store entirely.`,
	RunE: runRevoke,
}

func init() {
	rootCmd.AddCommand(revokeCmd)

	revokeCmd.Flags().BoolVar(&revokeAll, "all", false, "Revoke every approval in the store")
	revokeCmd.Flags().BoolVarP(&revokeForce, "force", "f", false, "Skip the confirmation prompt with --all")
}

func runRevoke(cmd *cobra.Command, args []string) error {
	if revokeAll == (len(args) > 0) {
		return fmt.Errorf("specify pull requests to revoke, or --all for everything")
	}

	eff, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	store := openStore(eff)
	auditLog, closeAudit := openAuditLogger(eff)
	defer closeAudit()

	if revokeAll {
		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load store: %w", err)
		}
		if len(entries) == 0 {
			term.Println("No approvals to revoke.")
			return nil
		}

		if !revokeForce {
			ok, err := confirm(cmd, fmt.Sprintf("Revoke all %d approval(s)?", len(entries)))
			if err != nil {
				return err
			}
			if !ok {
				term.Println("Aborted.")
				return nil
			}
		}

		n, err := store.Clear()
		if err != nil {
			return fmt.Errorf("failed to clear store: %w", err)
		}
		for _, pr := range entries {
			_ = auditLog.LogRevoke(pr)
		}
		term.Printf("Revoked %d approval(s)\n", n)
		return nil
	}

	for _, arg := range args {
		pr, ok := match.ParseRef(arg)
		if !ok {
			return fmt.Errorf("unrecognized pull request reference %q (want a number, #number, or pull URL)", arg)
		}

		removed, err := store.Remove(pr)
		if err != nil {
			return fmt.Errorf("failed to revoke PR %s: %w", pr, err)
		}
		if removed {
			_ = auditLog.LogRevoke(pr)
			term.Printf("Revoked PR #%s\n", pr)
		} else {
			term.Printf("PR #%s was not approved\n", pr)
		}
	}
	return nil
}

// confirmPrompter overrides the confirmation prompter. Tests inject a
// prompt.MockYesNoPrompter here; nil selects a stdin-backed one.
var confirmPrompter prompt.YesNoPrompter

// confirm asks a yes/no question on the command's stdin, defaulting to no.
// When stdin is not a terminal there is nobody to answer, so the caller is
// told to pass --force instead of the prompt hanging a script.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	p := confirmPrompter
	if p == nil {
		if f, ok := cmd.InOrStdin().(*os.File); ok && !prompt.Interactive(f) {
			return false, fmt.Errorf("stdin is not a terminal; pass --force to skip confirmation")
		}
		p = prompt.NewStdinYesNoPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return p.PromptYesNo(question+" [y/N]: ", false)
}
