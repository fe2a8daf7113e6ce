//go:build e2e

package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv builds an isolated environment for one test: store, config and
// state all point into a fresh temp directory, and every MERGEGATE_*
// variable is pinned so values leaking in from the outer environment
// cannot change gating behavior. Returns the environment and the store
// path it selects.
func testEnv(t *testing.T) ([]string, string) {
	t.Helper()

	tmp := t.TempDir()
	store := filepath.Join(tmp, "approved-prs.txt")

	// exec.Cmd uses the last value for duplicate keys, so appending
	// overrides any values already present in os.Environ().
	env := append(os.Environ(),
		"MERGEGATE_STORE="+store,
		"MERGEGATE_CONFIG_DIR="+filepath.Join(tmp, "config"),
		"XDG_STATE_HOME="+filepath.Join(tmp, "state"),
		"MERGEGATE_TOOLS=Bash",
		"MERGEGATE_LOG_LEVEL=info",
		"MERGEGATE_AUDIT=true",
		"MERGEGATE_DISABLED=false",
	)
	return env, store
}

// runHook feeds stdin to "mergegate hook <sub>" and returns stdout and
// the process exit code. Stderr is logged for debugging.
func runHook(t *testing.T, env []string, sub, stdin string) (string, int) {
	t.Helper()

	cmd := exec.Command(binaryPath, "hook", sub)
	cmd.Env = env
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stderr.Len() > 0 {
		t.Logf("hook %s stderr: %s", sub, stderr.String())
	}
	return stdout.String(), exitCode(t, err)
}

// runCLI runs a mergegate command and returns its stdout and exit code.
func runCLI(t *testing.T, env []string, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stderr.Len() > 0 {
		t.Logf("mergegate %s stderr: %s", strings.Join(args, " "), stderr.String())
	}
	return stdout.String(), exitCode(t, err)
}

// exitCode extracts the exit code from a Run error. Anything other than a
// clean exit or an ExitError means the process never ran at all.
func exitCode(t *testing.T, err error) int {
	t.Helper()

	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("running mergegate: %v", err)
	}
	return exitErr.ExitCode()
}
