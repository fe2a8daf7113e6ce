// Package hook implements the stdin/stdout protocol for tool event hooks.
//
// The agent invokes a hook with a JSON event on stdin and reads an optional
// JSON response from stdout. Empty stdout means the hook has no opinion.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Event names recognized by the hook protocol.
const (
	EventPreToolUse  = "PreToolUse"
	EventPostToolUse = "PostToolUse"
)

// Input is the JSON event piped to a hook via stdin. Unknown fields in the
// event are ignored.
type Input struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
}

// Command extracts the "command" field from tool_input (Bash tool).
// Returns the empty string when the field is absent or not a string.
func (in *Input) Command() string {
	var m map[string]any
	if err := json.Unmarshal(in.ToolInput, &m); err != nil {
		return ""
	}
	if v, ok := m["command"].(string); ok {
		return v
	}
	return ""
}

// ReadInput reads and parses a hook event from r.
func ReadInput(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read hook input: %w", err)
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse hook input: %w", err)
	}
	return &in, nil
}
