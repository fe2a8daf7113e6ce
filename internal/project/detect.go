// Package project locates the project root that scopes the approval store.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRoot indicates no project marker was found above the starting path.
var ErrNoRoot = errors.New("no project root found")

// markers identify a project root. Checked in order at each level so a
// .claude directory wins over .git when both sit in the same directory.
var markers = []string{".claude", ".git"}

// FindRoot walks up from start looking for a directory that contains a
// project marker (.claude or .git). If start is empty, the current working
// directory is used. Returns the absolute path of the nearest directory
// carrying a marker.
//
// Discovery is a plain directory walk rather than a git invocation: hooks
// run on every tool call and must work in repositories without git on PATH.
func FindRoot(start string) (string, error) {
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = cwd
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", start, err)
	}

	for {
		for _, marker := range markers {
			if hasMarker(dir, marker) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w above %s", ErrNoRoot, start)
		}
		dir = parent
	}
}

// hasMarker reports whether dir contains the named entry. Files count too:
// .git is a plain file in linked worktrees.
func hasMarker(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
