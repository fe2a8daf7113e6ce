package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/clog"
	"github.com/xdg/mergegate/internal/gate"
	"github.com/xdg/mergegate/internal/hook"
)

var hookPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Record a confirmed merge after it runs",
	Long: `Record the pull-request number of a merge command that just ran.

Reads a PostToolUse event from stdin. By the time this hook fires the
human has already waved the merge through, so its pull-request number goes
into the approval store and later retries of the same merge skip the
prompt. Writes nothing to stdout. The only failure that surfaces is a
store write error; everything else passes silently.`,
	SilenceUsage: true,
	RunE:         runHookPost,
}

func init() {
	hookCmd.AddCommand(hookPostCmd)
}

func runHookPost(cmd *cobra.Command, args []string) error {
	eff, cfgErr := hookEffective()
	configureHookLogging(eff)
	defer func() { _ = clog.Close() }()
	if cfgErr != nil {
		clog.Warn("post: resolve config: %v", cfgErr)
	}

	if eff.Disabled {
		clog.Info("post: disabled, passing")
		return nil
	}

	in, err := hook.ReadInput(cmd.InOrStdin())
	if err != nil {
		clog.Debug("post: %v", err)
		return nil
	}

	auditLog, closeAudit := openAuditLogger(eff)
	defer closeAudit()

	rec := gate.NewRecorder(openStore(eff), eff.Tools, auditLog)
	if _, err := rec.Record(in.ToolName, in.Command()); err != nil {
		clog.Error("post: %v", err)
		return err
	}
	return nil
}
