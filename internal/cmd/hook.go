package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/audit"
	"github.com/xdg/mergegate/internal/clog"
	"github.com/xdg/mergegate/internal/config"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run as a tool-event hook (plumbing)",
	Long: `Run mergegate as a tool-event hook.

These subcommands implement the agent's hook protocol: a JSON tool event on
stdin, an optional JSON response on stdout. They are wired into
.claude/settings.json by "mergegate install" and are not meant to be run by
hand.`,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

// hookEffective resolves configuration for a hook invocation. A config
// error must not take the agent down with it, so resolution failures
// degrade to the built-in defaults. The defaults still gate merges. The
// error comes back alongside so the caller can log it once hook-mode
// logging is up; logging it here would leak onto stderr.
func hookEffective() (*config.Effective, error) {
	eff, err := config.Resolve()
	if err != nil {
		return config.DefaultEffective(), err
	}
	return eff, nil
}

// configureHookLogging switches the global logger to hook mode: stderr off,
// operational messages appended to the state-dir log file. Hook mode takes
// effect even when the log file cannot be opened, so logging failures
// never leak onto the hook's wire.
func configureHookLogging(eff *config.Effective) {
	_ = clog.Configure(clog.DefaultLogPath(), clog.ParseLevel(eff.LogLevel), true)
}

// openAuditLogger opens the append-only decision trail when auditing is
// enabled. The returned closer is always safe to call. A nil logger is
// returned on any failure; audit writes are nil-safe downstream.
func openAuditLogger(eff *config.Effective) (*audit.Logger, func()) {
	if !eff.Audit {
		return nil, func() {}
	}

	f, err := clog.OpenLogFile(clog.AuditLogPath())
	if err != nil {
		clog.Warn("hook: open audit log: %v", err)
		return nil, func() {}
	}
	return audit.NewLogger(f), func() { _ = f.Close() }
}
