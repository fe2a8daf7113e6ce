// Package approval persists the set of pull-request numbers cleared for
// merge. The gate consults the set before a merge command runs and the
// recorder extends it afterward.
package approval

import (
	"fmt"
	"strings"
)

// Store is the approval set consulted by the gate and extended by the
// recorder.
type Store interface {
	// Load returns all approved pull-request numbers, sorted ascending
	// by string comparison. A store that has never been written loads as
	// an empty set, not an error.
	Load() ([]string, error)

	// Add records a pull-request number as approved and reports whether
	// it was newly added. Adding a number that is already present is a
	// no-op.
	Add(pr string) (bool, error)
}

// validateEntry rejects values that would corrupt the line-oriented store
// format.
func validateEntry(pr string) error {
	if pr == "" {
		return fmt.Errorf("empty approval entry")
	}
	if strings.ContainsAny(pr, " \t\r\n") {
		return fmt.Errorf("invalid approval entry %q", pr)
	}
	return nil
}
