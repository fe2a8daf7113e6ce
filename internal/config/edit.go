package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/xdg/mergegate/internal/clog"
)

// EditConfig opens the configuration file in the user's editor.
// If the configuration file doesn't exist, the commented default template
// is written first.
// The editor is determined by the EDITOR environment variable, falling back to "vi".
// After the editor exits, the configuration is loaded and validated. If validation
// fails, a warning is logged but the function returns nil (the user may want to
// fix the file manually later).
func EditConfig() error {
	path := Path()

	// Create default config if file doesn't exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := WriteDefaultConfig(); err != nil {
			return fmt.Errorf("create default config: %w", err)
		}
	}

	// Open editor
	if err := openEditor(path); err != nil {
		return err
	}

	// Validate the edited config
	if _, err := Load(); err != nil {
		clog.Warn("config has errors after edit: %v", err)
		// Don't fail - user may want to fix it later
	}

	return nil
}

// openEditor opens the specified file in the user's editor.
// The editor is determined by the EDITOR environment variable, falling back to "vi".
func openEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", editor, err)
	}

	return nil
}
