// Package claude manages the mergegate entries in Claude Code settings.json
// files. Only the hook entries owned by mergegate are touched; every other
// key in the file is carried through rewrites with its content intact.
package claude

import (
	"encoding/json"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Hook event names as they appear in settings.json.
const (
	EventPreToolUse  = "PreToolUse"
	EventPostToolUse = "PostToolUse"
)

// hookMarker identifies mergegate entries regardless of where the binary
// is installed.
const hookMarker = "mergegate hook"

// Settings is a parsed settings.json. Unknown keys are kept as raw JSON so
// they survive a rewrite untouched.
type Settings struct {
	raw map[string]json.RawMessage
}

// hookEntry is a single command hook.
type hookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// hookMatcher groups hook entries under a tool matcher pattern.
type hookMatcher struct {
	Matcher string      `json:"matcher"`
	Hooks   []hookEntry `json:"hooks"`
}

// Parse parses settings.json content. Empty or whitespace-only content is
// an empty settings object.
func Parse(content []byte) (*Settings, error) {
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return &Settings{raw: make(map[string]json.RawMessage)}, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if raw == nil {
		raw = make(map[string]json.RawMessage)
	}
	return &Settings{raw: raw}, nil
}

// Serialize renders the settings as indented JSON with a trailing newline.
func (s *Settings) Serialize() ([]byte, error) {
	data, err := json.MarshalIndent(s.raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize settings: %w", err)
	}
	return append(data, '\n'), nil
}

func (s *Settings) hooks() (map[string]json.RawMessage, error) {
	hooksRaw, ok := s.raw["hooks"]
	if !ok {
		return make(map[string]json.RawMessage), nil
	}
	var hooks map[string]json.RawMessage
	if err := json.Unmarshal(hooksRaw, &hooks); err != nil {
		return nil, fmt.Errorf("parse hooks: %w", err)
	}
	if hooks == nil {
		hooks = make(map[string]json.RawMessage)
	}
	return hooks, nil
}

func (s *Settings) setHooks(hooks map[string]json.RawMessage) error {
	if len(hooks) == 0 {
		delete(s.raw, "hooks")
		return nil
	}
	data, err := json.Marshal(hooks)
	if err != nil {
		return fmt.Errorf("marshal hooks: %w", err)
	}
	s.raw["hooks"] = json.RawMessage(data)
	return nil
}

func getMatcherList(hooks map[string]json.RawMessage, event string) ([]hookMatcher, error) {
	raw, ok := hooks[event]
	if !ok {
		return nil, nil
	}
	var matchers []hookMatcher
	if err := json.Unmarshal(raw, &matchers); err != nil {
		return nil, fmt.Errorf("parse hook event %s: %w", event, err)
	}
	return matchers, nil
}

func setMatcherList(hooks map[string]json.RawMessage, event string, matchers []hookMatcher) error {
	if len(matchers) == 0 {
		delete(hooks, event)
		return nil
	}
	data, err := json.Marshal(matchers)
	if err != nil {
		return fmt.Errorf("marshal hook event %s: %w", event, err)
	}
	hooks[event] = json.RawMessage(data)
	return nil
}

// removeOurEntries splits matchers into entries kept and mergegate entries
// removed. A matcher group that held only mergegate hooks is dropped
// entirely; mixed groups keep their foreign hooks.
func removeOurEntries(matchers []hookMatcher) (kept, removed []hookMatcher) {
	for _, m := range matchers {
		var ours, theirs []hookEntry
		for _, h := range m.Hooks {
			if strings.Contains(h.Command, hookMarker) {
				ours = append(ours, h)
			} else {
				theirs = append(theirs, h)
			}
		}
		if len(ours) > 0 {
			removed = append(removed, hookMatcher{Matcher: m.Matcher, Hooks: ours})
		}
		if len(theirs) > 0 || len(m.Hooks) == 0 {
			m.Hooks = theirs
			kept = append(kept, m)
		}
	}
	return kept, removed
}

// HookCommand builds the shell command line Claude Code should run for one
// hook event. The executable path is shell-quoted, so paths with spaces or
// other special characters survive the settings round trip.
func HookCommand(exePath, event string) (string, error) {
	quoted, err := syntax.Quote(exePath, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("quote hook path %q: %w", exePath, err)
	}
	switch event {
	case EventPreToolUse:
		return quoted + " hook pre", nil
	case EventPostToolUse:
		return quoted + " hook post", nil
	}
	return "", fmt.Errorf("unknown hook event %q", event)
}

// sameEntry reports whether an existing mergegate group already matches the
// desired one, meaning a reinstall would be a no-op.
func sameEntry(existing, desired hookMatcher) bool {
	return existing.Matcher == desired.Matcher &&
		len(existing.Hooks) == 1 &&
		existing.Hooks[0] == desired.Hooks[0]
}

func upsertEvent(hooks map[string]json.RawMessage, event string, desired hookMatcher) (bool, error) {
	matchers, err := getMatcherList(hooks, event)
	if err != nil {
		return false, err
	}
	kept, removed := removeOurEntries(matchers)
	changed := len(removed) != 1 || !sameEntry(removed[0], desired)
	kept = append(kept, desired)
	if err := setMatcherList(hooks, event, kept); err != nil {
		return false, err
	}
	return changed, nil
}

// Upsert installs or refreshes the mergegate hook entries in the settings
// content. The matcher pattern covers the given tool names. Existing
// mergegate entries are replaced in place; reinstalling an identical
// configuration reports changed=false.
func Upsert(content []byte, exePath string, tools []string) ([]byte, bool, error) {
	settings, err := Parse(content)
	if err != nil {
		return nil, false, err
	}

	hooks, err := settings.hooks()
	if err != nil {
		return nil, false, err
	}

	matcher := strings.Join(tools, "|")
	anyChanged := false

	for _, event := range []string{EventPreToolUse, EventPostToolUse} {
		cmd, err := HookCommand(exePath, event)
		if err != nil {
			return nil, false, err
		}
		desired := hookMatcher{
			Matcher: matcher,
			Hooks:   []hookEntry{{Type: "command", Command: cmd}},
		}
		changed, err := upsertEvent(hooks, event, desired)
		if err != nil {
			return nil, false, err
		}
		anyChanged = anyChanged || changed
	}

	if err := settings.setHooks(hooks); err != nil {
		return nil, false, err
	}

	out, err := settings.Serialize()
	if err != nil {
		return nil, false, err
	}
	return out, anyChanged, nil
}

// Remove strips every mergegate hook entry from the settings content.
// Foreign hooks and all other settings keys are preserved. When nothing of
// ours is present the original content is returned unchanged.
func Remove(content []byte) ([]byte, bool, error) {
	settings, err := Parse(content)
	if err != nil {
		return nil, false, err
	}

	hooks, err := settings.hooks()
	if err != nil {
		return nil, false, err
	}

	anyChanged := false
	for _, event := range []string{EventPreToolUse, EventPostToolUse} {
		matchers, err := getMatcherList(hooks, event)
		if err != nil {
			return nil, false, err
		}
		kept, removed := removeOurEntries(matchers)
		if len(removed) == 0 {
			continue
		}
		anyChanged = true
		if err := setMatcherList(hooks, event, kept); err != nil {
			return nil, false, err
		}
	}

	if !anyChanged {
		return content, false, nil
	}

	if err := settings.setHooks(hooks); err != nil {
		return nil, false, err
	}

	out, err := settings.Serialize()
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// State reports which mergegate hook entries a settings file carries.
type State struct {
	Pre  bool
	Post bool
}

// Installed reports whether both hook entries are present.
func (s State) Installed() bool {
	return s.Pre && s.Post
}

// Inspect reports the mergegate hook entries present in the settings
// content without modifying anything.
func Inspect(content []byte) (State, error) {
	var state State

	settings, err := Parse(content)
	if err != nil {
		return state, err
	}

	hooks, err := settings.hooks()
	if err != nil {
		return state, err
	}

	for _, event := range []string{EventPreToolUse, EventPostToolUse} {
		matchers, err := getMatcherList(hooks, event)
		if err != nil {
			return state, err
		}
		_, removed := removeOurEntries(matchers)
		present := len(removed) > 0
		switch event {
		case EventPreToolUse:
			state.Pre = present
		case EventPostToolUse:
			state.Post = present
		}
	}

	return state, nil
}
