package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/config"
	"github.com/xdg/mergegate/internal/match"
	"github.com/xdg/mergegate/internal/term"
)

var approveCmd = &cobra.Command{
	Use:   "approve <pr>...",
	Short: "Approve pull requests for merge",
	Long: `Approve one or more pull requests for merge ahead of time.

An approved pull request passes the pre-merge gate without a confirmation
prompt. Accepts bare numbers, #-prefixed numbers, and pull-request URLs:

  mergegate approve 42
  mergegate approve #42 #43
  mergegate approve https://github.com/acme/site/pull/42`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApprove,
}

func init() {
	rootCmd.AddCommand(approveCmd)
}

func runApprove(cmd *cobra.Command, args []string) error {
	eff, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	// Reject unparseable references before touching the store, so a typo
	// in the second argument doesn't leave half the batch approved.
	prs := make([]string, 0, len(args))
	for _, arg := range args {
		pr, ok := match.ParseRef(arg)
		if !ok {
			return fmt.Errorf("unrecognized pull request reference %q (want a number, #number, or pull URL)", arg)
		}
		prs = append(prs, pr)
	}

	store := openStore(eff)
	auditLog, closeAudit := openAuditLogger(eff)
	defer closeAudit()

	for _, pr := range prs {
		added, err := store.Add(pr)
		if err != nil {
			return fmt.Errorf("failed to approve PR %s: %w", pr, err)
		}
		if added {
			_ = auditLog.LogApprove(pr)
			term.Printf("Approved PR #%s\n", pr)
		} else {
			term.Printf("PR #%s is already approved\n", pr)
		}
	}
	return nil
}
