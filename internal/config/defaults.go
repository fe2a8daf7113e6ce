package config

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// DefaultConfig returns a Config with all defaults populated. The gate
// watches only the Bash tool out of the box: that is where shell commands
// arrive, and widening the net is a per-user decision.
func DefaultConfig() *Config {
	return &Config{
		Tools:    []string{"Bash"},
		LogLevel: "info",
		Audit:    boolPtr(true),
	}
}

// StoreDirName is the directory under the project root that holds the
// default approval store.
const StoreDirName = ".claude/mergegate"

// StoreFileName is the default approval store file name.
const StoreFileName = "approved-prs.txt"

// defaultConfigTemplate is the commented configuration written by
// WriteDefaultConfig. Everything is commented out so the file documents
// the defaults without pinning them.
const defaultConfigTemplate = `# mergegate configuration
#
# Any setting here can be overridden per invocation with MERGEGATE_*
# environment variables: MERGEGATE_STORE, MERGEGATE_TOOLS (comma-separated),
# MERGEGATE_LOG_LEVEL, MERGEGATE_AUDIT, MERGEGATE_DISABLED.

# Approval store path. ~ is expanded. When unset, the store lives in the
# project the hook runs in: <project-root>/.claude/mergegate/approved-prs.txt
#store: ~/.local/state/mergegate/approved-prs.txt

# Tool names whose commands are inspected for merge invocations.
#tools:
#  - Bash

# Operational log level: debug, info, warn, or error.
#log_level: info

# Append-only audit trail of gate decisions, written under
# $XDG_STATE_HOME/mergegate/audit.log.
#audit: true
`
