// Package audit provides an append-only trail of merge-gate decisions and
// approval-store mutations. Entries follow a key=value format suitable for
// parsing and analysis.
package audit

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// EventType represents the type of gate, recorder, or operator event.
type EventType string

// Event types emitted by the pre-execution gate.
const (
	// EventAllow records a merge command allowed silently because its
	// identifier was already approved.
	EventAllow EventType = "ALLOW"
	// EventAsk records a merge command routed to human confirmation.
	EventAsk EventType = "ASK"
)

// Event types emitted by the post-execution recorder.
const (
	// EventAdd records an identifier newly persisted to the approval store.
	EventAdd EventType = "ADD"
	// EventSkip records an identifier that was already present.
	EventSkip EventType = "SKIP"
)

// Event types emitted by operator CLI commands.
const (
	EventApprove EventType = "APPROVE"
	EventRevoke  EventType = "REVOKE"
)

// Event represents a single audit log entry.
type Event struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Type is the event type (ALLOW, ASK, ADD, ...).
	Type EventType

	// Tool is the tool name from the hook input (gate/recorder events).
	Tool string

	// PR is the extracted pull-request identifier. Empty when a merge
	// command was recognized but no identifier could be extracted.
	PR string

	// Cmd is the command text (gate/recorder events).
	Cmd string
}

// Format returns the log entry as a formatted string.
// Format: 2024-01-15T14:32:05Z GATE ASK tool=Bash pr=42 cmd="gh pr merge 42"
// Format: 2024-01-15T14:32:05Z CLI APPROVE pr=42
func (e *Event) Format() string {
	var b strings.Builder

	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))
	b.WriteString(" ")
	b.WriteString(e.component())
	b.WriteString(" ")
	b.WriteString(string(e.Type))

	writeOptionalField(&b, "tool", e.Tool, false)
	writeOptionalField(&b, "pr", e.PR, false)
	writeOptionalField(&b, "cmd", e.Cmd, true)

	return b.String()
}

// component returns the subsystem name for the event type.
func (e *Event) component() string {
	switch e.Type {
	case EventAllow, EventAsk:
		return "GATE"
	case EventAdd, EventSkip:
		return "RECORD"
	default:
		return "CLI"
	}
}

// writeOptionalField appends " key=value" to the builder if value is non-empty.
// Quoted values are wrapped with %q to handle spaces and special characters.
func writeOptionalField(b *strings.Builder, key, value string, quoted bool) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString("=")
	if quoted {
		b.WriteString(fmt.Sprintf("%q", value))
	} else {
		b.WriteString(value)
	}
}

// Logger writes audit events to an io.Writer.
type Logger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger creates a new audit logger that writes to the given writer.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Log writes an event to the audit log. A nil Logger or nil writer is a
// no-op, so callers can log unconditionally.
func (l *Logger) Log(e *Event) error {
	if l == nil || l.w == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := e.Format() + "\n"
	_, err := l.w.Write([]byte(line))
	if err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}
	return nil
}

// LogAllow logs a GATE ALLOW event.
func (l *Logger) LogAllow(tool, pr, cmd string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventAllow,
		Tool:      tool,
		PR:        pr,
		Cmd:       cmd,
	})
}

// LogAsk logs a GATE ASK event.
func (l *Logger) LogAsk(tool, pr, cmd string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventAsk,
		Tool:      tool,
		PR:        pr,
		Cmd:       cmd,
	})
}

// LogAdd logs a RECORD ADD event.
func (l *Logger) LogAdd(tool, pr, cmd string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventAdd,
		Tool:      tool,
		PR:        pr,
		Cmd:       cmd,
	})
}

// LogSkip logs a RECORD SKIP event.
func (l *Logger) LogSkip(tool, pr, cmd string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventSkip,
		Tool:      tool,
		PR:        pr,
		Cmd:       cmd,
	})
}

// LogApprove logs a CLI APPROVE event.
func (l *Logger) LogApprove(pr string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventApprove,
		PR:        pr,
	})
}

// LogRevoke logs a CLI REVOKE event.
func (l *Logger) LogRevoke(pr string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventRevoke,
		PR:        pr,
	})
}
