// Package gate implements the two hook-side operations: the pre-execution
// check that decides whether a merge command needs confirmation, and the
// post-execution recorder that persists confirmed merges.
package gate

import (
	"fmt"

	"github.com/xdg/mergegate/internal/approval"
	"github.com/xdg/mergegate/internal/audit"
	"github.com/xdg/mergegate/internal/clog"
	"github.com/xdg/mergegate/internal/match"
)

// Decision is the gate's verdict on a tool call.
type Decision int

const (
	// Pass means the call is not a gated merge command. The gate stays
	// silent and the agent's normal permission flow applies.
	Pass Decision = iota
	// Allow means the merge was confirmed earlier and may run without
	// another prompt. Allowed calls are also silent on the wire.
	Allow
	// Ask means the merge needs manual confirmation.
	Ask
)

// String returns the string representation of a Decision.
func (d Decision) String() string {
	switch d {
	case Pass:
		return "pass"
	case Allow:
		return "allow"
	case Ask:
		return "ask"
	default:
		return "unknown"
	}
}

// Result contains the gate's verdict for one tool call.
type Result struct {
	Decision Decision
	PR       string // extracted pull-request number, empty when none
	Reason   string // confirmation prompt, set when Decision is Ask
}

// toolSet holds the tool names whose calls are inspected.
type toolSet map[string]struct{}

func newToolSet(tools []string) toolSet {
	s := make(toolSet, len(tools))
	for _, t := range tools {
		s[t] = struct{}{}
	}
	return s
}

func (s toolSet) contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Gate checks tool calls against the approval store before they run.
type Gate struct {
	store approval.Store
	tools toolSet
	audit *audit.Logger
}

// NewGate creates a gate over the given store. Only calls from the named
// tools are inspected. The audit logger may be nil.
func NewGate(store approval.Store, tools []string, auditLogger *audit.Logger) *Gate {
	return &Gate{
		store: store,
		tools: newToolSet(tools),
		audit: auditLogger,
	}
}

// Check runs the decision ladder for one tool call. It never fails: a
// store that cannot be read counts as empty, which sends the merge to
// confirmation instead of letting it slip through.
func (g *Gate) Check(toolName, command string) Result {
	if !g.tools.contains(toolName) {
		return Result{Decision: Pass}
	}
	if command == "" || !match.IsMergeCommand(command) {
		return Result{Decision: Pass}
	}

	pr, ok := match.ExtractPR(command)
	if ok && g.approved(pr) {
		_ = g.audit.LogAllow(toolName, pr, command)
		return Result{Decision: Allow, PR: pr}
	}

	// Unapproved, or no number to look up. Either way a human confirms.
	_ = g.audit.LogAsk(toolName, pr, command)
	return Result{
		Decision: Ask,
		PR:       pr,
		Reason:   AskReason(command),
	}
}

func (g *Gate) approved(pr string) bool {
	entries, err := g.store.Load()
	if err != nil {
		clog.Warn("gate: load store: %v", err)
		return false
	}
	for _, e := range entries {
		if e == pr {
			return true
		}
	}
	return false
}

// AskReason builds the confirmation prompt for a merge command.
func AskReason(command string) string {
	return fmt.Sprintf("PR merge requires confirmation: %s", command)
}
