package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/clog"
	"github.com/xdg/mergegate/internal/gate"
	"github.com/xdg/mergegate/internal/hook"
)

var hookPreCmd = &cobra.Command{
	Use:   "pre",
	Short: "Gate a tool call before it runs",
	Long: `Check one tool call against the approval store before it runs.

Reads a PreToolUse event from stdin. An unapproved "gh pr merge" gets an
"ask" response on stdout, routing the call to manual confirmation. Anything
else, including events this hook cannot parse, passes silently: the gate
must never break the agent it protects.`,
	SilenceUsage: true,
	RunE:         runHookPre,
}

func init() {
	hookCmd.AddCommand(hookPreCmd)
}

func runHookPre(cmd *cobra.Command, args []string) error {
	eff, cfgErr := hookEffective()
	configureHookLogging(eff)
	defer func() { _ = clog.Close() }()
	if cfgErr != nil {
		clog.Warn("pre: resolve config: %v", cfgErr)
	}

	if eff.Disabled {
		clog.Info("pre: disabled, passing")
		return nil
	}

	in, err := hook.ReadInput(cmd.InOrStdin())
	if err != nil {
		// Fail open. A malformed event is not this hook's problem to
		// report; exiting non-zero or writing junk would stall the tool
		// call itself.
		clog.Debug("pre: %v", err)
		return nil
	}

	auditLog, closeAudit := openAuditLogger(eff)
	defer closeAudit()

	g := gate.NewGate(openStore(eff), eff.Tools, auditLog)
	res := g.Check(in.ToolName, in.Command())
	if res.Decision != gate.Ask {
		return nil
	}
	return hook.Write(cmd.OutOrStdout(), hook.Ask(res.Reason))
}
