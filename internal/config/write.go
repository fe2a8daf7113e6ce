package config

import (
	"errors"
	"fmt"
	"os"
)

// WriteDefaultConfig creates the default configuration file with helpful comments.
// If the config file already exists, it returns nil without overwriting.
// The config directory is created if it doesn't exist.
// The file is written with 0600 permissions (user read/write only).
func WriteDefaultConfig() error {
	path := Path()

	// Check if file already exists
	_, err := os.Stat(path)
	if err == nil {
		// File exists, don't overwrite
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		// Some other error occurred
		return fmt.Errorf("stat config file: %w", err)
	}

	// Ensure config directory exists
	if err := EnsureDir(); err != nil {
		return err
	}

	// Write the config file with user-only permissions
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
