// Package testutil provides shared test helpers for mergegate tests.
package testutil

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

// Chdir changes the working directory to dir for the duration of the
// test, restoring it via Cleanup. It matches testing.T.Chdir, which
// needs Go 1.24 while this module builds with an older toolchain: on
// POSIX platforms PWD is updated to dir so subprocesses and Getwd see
// a consistent location, and the test cannot be parallel.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	switch runtime.GOOS {
	case "windows", "plan9":
		// These platforms do not use the PWD variable.
	default:
		if !filepath.IsAbs(dir) {
			dir, err = os.Getwd()
			if err != nil {
				t.Fatal(err)
			}
		}
		t.Setenv("PWD", dir)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testutil.Chdir: restore working directory: " + err.Error())
		}
	})
}

// Event builds the JSON payload of a tool event, the shape the hooks read
// on stdin. The command text goes through the JSON encoder, so quotes and
// backslashes in command text survive the trip.
func Event(t *testing.T, tool, command string) string {
	t.Helper()

	payload := map[string]any{
		"tool_name": tool,
		"tool_input": map[string]any{
			"command": command,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal tool event: %v", err)
	}
	return string(data)
}

// SeedStore writes entries to path in the store's canonical form: sorted
// ascending by string comparison, one per line, trailing newline.
func SeedStore(t *testing.T, path string, entries ...string) {
	t.Helper()

	sorted := make([]string, len(entries))
	copy(sorted, entries)
	sort.Strings(sorted)

	var content string
	if len(sorted) > 0 {
		content = strings.Join(sorted, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("seed store %s: %v", path, err)
	}
}

// ReadStore returns the raw store contents, or "" when the file does not
// exist yet.
func ReadStore(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ""
		}
		t.Fatalf("read store %s: %v", path, err)
	}
	return string(data)
}
