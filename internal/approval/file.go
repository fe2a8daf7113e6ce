package approval

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
)

// FileStore persists approvals as a newline-delimited text file, one
// pull-request number per line, sorted ascending by string comparison with
// a trailing newline. An empty set is an empty file.
//
// Writers replace the file atomically via rename, so readers always see a
// complete snapshot and take no lock. Mutations hold an exclusive flock on
// a sibling lock file for the whole read-modify-write cycle. The lock lives
// beside the store rather than on it because the rename would detach a lock
// held on the store file itself.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file and its
// parent directory are created on first mutation, not here.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the store file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns all approved pull-request numbers.
// A missing file loads as an empty set, not an error.
func (s *FileStore) Load() ([]string, error) {
	return s.read()
}

// Add records a pull-request number as approved and reports whether it was
// newly added. Adding a number that is already present leaves the file
// untouched.
func (s *FileStore) Add(pr string) (bool, error) {
	if err := validateEntry(pr); err != nil {
		return false, err
	}

	unlock, err := s.lock()
	if err != nil {
		return false, err
	}
	defer unlock()

	entries, err := s.read()
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e == pr {
			return false, nil
		}
	}

	return true, s.write(append(entries, pr))
}

// Remove deletes a pull-request number from the store. Returns whether the
// number was present.
func (s *FileStore) Remove(pr string) (bool, error) {
	unlock, err := s.lock()
	if err != nil {
		return false, err
	}
	defer unlock()

	entries, err := s.read()
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e == pr {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}

	return true, s.write(kept)
}

// Clear deletes every entry and returns how many were removed.
func (s *FileStore) Clear() (int, error) {
	unlock, err := s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	entries, err := s.read()
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	return len(entries), s.write(nil)
}

// lock takes an exclusive advisory lock for a read-modify-write cycle and
// returns the release function. The store directory is created first so the
// lock file has somewhere to live.
func (s *FileStore) lock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	fl := flock.New(s.path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("lock store %q: %w", s.path, err)
	}
	return func() { _ = fl.Unlock() }, nil
}

func (s *FileStore) read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store %q: %w", s.path, err)
	}
	return parseEntries(data), nil
}

// write rewrites the whole store in canonical form. The data goes to a temp
// file in the same directory, then a rename makes it visible.
func (s *FileStore) write(entries []string) error {
	data := encodeEntries(entries)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".approved-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// parseEntries reads the line-oriented store format. The parse is tolerant
// of hand edits: surrounding whitespace is trimmed, blank lines and
// duplicates are dropped, and the result comes back sorted.
func parseEntries(data []byte) []string {
	seen := make(map[string]struct{})
	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		entries = append(entries, line)
	}
	sort.Strings(entries)
	return entries
}

// encodeEntries renders the canonical store form: sorted ascending by
// string comparison, one entry per line, trailing newline. An empty set
// encodes as an empty file.
func encodeEntries(entries []string) []byte {
	if len(entries) == 0 {
		return nil
	}
	sorted := make([]string, len(entries))
	copy(sorted, entries)
	sort.Strings(sorted)
	return []byte(strings.Join(sorted, "\n") + "\n")
}
