package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decision values for PreToolUse responses.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
	DecisionAsk   = "ask"
)

// Response is the top-level JSON structure written to stdout.
type Response struct {
	HookSpecificOutput *SpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// SpecificOutput carries the permission decision for the agent.
type SpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason,omitempty"`
}

// Ask builds a PreToolUse response that routes the tool call to manual
// confirmation with the given reason.
func Ask(reason string) *Response {
	return &Response{
		HookSpecificOutput: &SpecificOutput{
			HookEventName:            EventPreToolUse,
			PermissionDecision:       DecisionAsk,
			PermissionDecisionReason: reason,
		},
	}
}

// Write marshals resp to w as a single JSON line.
func Write(w io.Writer, resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode hook response: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write hook response: %w", err)
	}
	return nil
}
