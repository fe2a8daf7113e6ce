// Package prompt provides interactive confirmation prompts, designed for
// testability with mock implementations.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Interactive reports whether f is attached to a terminal. Commands that
// would block waiting for an answer check this before prompting, so runs
// with redirected stdin fail fast instead of hanging.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// YesNoPrompter defines the interface for yes/no confirmation prompts.
type YesNoPrompter interface {
	// PromptYesNo displays a yes/no prompt and returns the user's response.
	// If the user presses Enter without input, defaultYes determines the result.
	// Returns true for yes, false for no.
	PromptYesNo(prompt string, defaultYes bool) (bool, error)
}

// StdinYesNoPrompter implements YesNoPrompter using stdin/stdout.
type StdinYesNoPrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewStdinYesNoPrompter creates a StdinYesNoPrompter that reads from r and writes to w.
func NewStdinYesNoPrompter(r io.Reader, w io.Writer) *StdinYesNoPrompter {
	return &StdinYesNoPrompter{In: r, Out: w}
}

// PromptYesNo displays the prompt and reads user input.
// Accepts "y", "Y", "yes", "YES" as true; "n", "N", "no", "NO" as false.
// Empty input returns defaultYes.
func (p *StdinYesNoPrompter) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	_, _ = fmt.Fprint(p.Out, prompt)

	reader := bufio.NewReader(p.In)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	input := strings.TrimSpace(strings.ToLower(line))

	// Empty input means use default
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes
	if input == "y" || input == "yes" {
		return true, nil
	}

	// Check for no
	if input == "n" || input == "no" {
		return false, nil
	}

	return false, fmt.Errorf("invalid input %q: expected y/n", input)
}

// MockYesNoPrompter implements YesNoPrompter for testing.
type MockYesNoPrompter struct {
	// Responses is a queue of responses to return for successive calls.
	Responses []bool
	// Errors is a queue of errors to return for successive calls.
	Errors []error
	// Calls records all calls made to PromptYesNo for verification.
	Calls []MockYesNoCall

	callIndex int
}

// MockYesNoCall records a single call to PromptYesNo.
type MockYesNoCall struct {
	Prompt     string
	DefaultYes bool
}

// NewMockYesNoPrompter creates a MockYesNoPrompter with the given responses.
func NewMockYesNoPrompter(responses ...bool) *MockYesNoPrompter {
	return &MockYesNoPrompter{Responses: responses}
}

// PromptYesNo returns the next pre-configured response or error.
func (m *MockYesNoPrompter) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	// Record the call
	m.Calls = append(m.Calls, MockYesNoCall{
		Prompt:     prompt,
		DefaultYes: defaultYes,
	})

	// Check for error
	if m.callIndex < len(m.Errors) && m.Errors[m.callIndex] != nil {
		err := m.Errors[m.callIndex]
		m.callIndex++
		return false, err
	}

	// Return configured response
	if m.callIndex < len(m.Responses) {
		response := m.Responses[m.callIndex]
		m.callIndex++
		return response, nil
	}

	// No more responses configured, return default
	m.callIndex++
	return defaultYes, nil
}
