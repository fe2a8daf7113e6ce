package gate

import (
	"fmt"

	"github.com/xdg/mergegate/internal/approval"
	"github.com/xdg/mergegate/internal/audit"
	"github.com/xdg/mergegate/internal/match"
)

// Recorder persists merge approvals after a merge command has run. A
// confirmed merge of PR N implies the human has cleared N, so later
// retries of the same merge pass the gate silently.
type Recorder struct {
	store approval.Store
	tools toolSet
	audit *audit.Logger
}

// NewRecorder creates a recorder over the given store. Only calls from the
// named tools are inspected. The audit logger may be nil.
func NewRecorder(store approval.Store, tools []string, auditLogger *audit.Logger) *Recorder {
	return &Recorder{
		store: store,
		tools: newToolSet(tools),
		audit: auditLogger,
	}
}

// Record inspects one completed tool call and persists the pull-request
// number of a recognized merge command. Returns the recorded number, or
// the empty string when the call carried nothing to record. The error is
// non-nil only when the store could not be written, which is the one
// failure a hook must surface.
func (r *Recorder) Record(toolName, command string) (string, error) {
	if !r.tools.contains(toolName) {
		return "", nil
	}
	if command == "" || !match.IsMergeCommand(command) {
		return "", nil
	}

	pr, ok := match.ExtractPR(command)
	if !ok {
		return "", nil
	}

	added, err := r.store.Add(pr)
	if err != nil {
		return "", fmt.Errorf("record approval for PR %s: %w", pr, err)
	}
	if added {
		_ = r.audit.LogAdd(toolName, pr, command)
	} else {
		_ = r.audit.LogSkip(toolName, pr, command)
	}
	return pr, nil
}
