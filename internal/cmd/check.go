package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/config"
	"github.com/xdg/mergegate/internal/gate"
	"github.com/xdg/mergegate/internal/term"
)

var checkCmd = &cobra.Command{
	Use:   "check <command>...",
	Short: "Dry-run the gate against a command",
	Long: `Run the pre-merge gate against a command string without side effects.

Prints the decision the gate would make for the command: "pass" for
anything that is not a gated merge, "allow" for a merge of an approved
pull request, "ask" for a merge that would need confirmation. Nothing is
recorded and no hook output is produced.

With --quiet nothing is printed and the exit code carries the verdict:
0 when the command would run unprompted, 1 when it would ask.

  mergegate check gh pr merge 42
  mergegate check "git push && gh pr merge 42 --squash"`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Stop flag parsing at the first positional arg so command text like
	// "gh pr merge 42 --squash" passes through without quoting.
	checkCmd.Flags().SetInterspersed(false)
}

func runCheck(cmd *cobra.Command, args []string) error {
	eff, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	// Unquoted multi-word commands arrive as separate args; stitch them
	// back together the way the shell had them.
	command := strings.Join(args, " ")

	tool := "Bash"
	if len(eff.Tools) > 0 {
		tool = eff.Tools[0]
	}

	g := gate.NewGate(openStore(eff), eff.Tools, nil)
	res := g.Check(tool, command)

	switch res.Decision {
	case gate.Pass:
		term.Println("pass: not a gated merge command")
	case gate.Allow:
		term.Printf("%s: PR #%s is approved\n", color.GreenString("allow"), res.PR)
	case gate.Ask:
		term.Printf("%s: %s\n", color.YellowString("ask"), res.Reason)
	}

	if term.IsQuiet() && res.Decision == gate.Ask {
		return NewExitCodeError(1)
	}
	return nil
}
