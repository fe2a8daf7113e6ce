package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/xdg/mergegate/internal/pathutil"
)

// Dir returns the mergegate configuration directory path.
// By default, this is ~/.config/mergegate/. If the MERGEGATE_CONFIG_DIR
// environment variable is set, it uses that value directly; otherwise the
// XDG_CONFIG_HOME convention applies. The returned path always has a
// trailing slash.
func Dir() string {
	if dir := os.Getenv("MERGEGATE_CONFIG_DIR"); dir != "" {
		dir = pathutil.ExpandHome(dir)
		if !strings.HasSuffix(dir, "/") {
			dir += "/"
		}
		return dir
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return pathutil.ExpandHome(base) + "/mergegate/"
}

// EnsureDir creates the mergegate configuration directory if it doesn't
// exist. It uses 0700 permissions for security (user-only access).
// Returns nil if the directory already exists or was successfully created.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}

// Path returns the full path to the configuration file.
// This is Dir() + "config.yaml".
func Path() string {
	return Dir() + "config.yaml"
}
