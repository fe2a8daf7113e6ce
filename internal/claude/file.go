package claude

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SettingsDirName is the Claude Code configuration directory inside a
// project root.
const SettingsDirName = ".claude"

// SettingsFileName is the settings file inside SettingsDirName.
const SettingsFileName = "settings.json"

// SettingsPath returns the project-local Claude Code settings file under
// root.
func SettingsPath(root string) string {
	return filepath.Join(root, SettingsDirName, SettingsFileName)
}

// readSettings reads path, treating a missing file as empty content.
func readSettings(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return data, nil
}

// writeSettings writes the settings file, creating the .claude directory
// when missing. settings.json is shared with Claude Code and other tools,
// so it gets conventional 0755/0644 permissions rather than the private
// modes used for mergegate's own files.
func writeSettings(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// InstallFile adds the mergegate hook entries to the settings file at path,
// creating the file when missing. Reports whether the file was modified.
func InstallFile(path, exePath string, tools []string) (bool, error) {
	content, err := readSettings(path)
	if err != nil {
		return false, err
	}

	updated, changed, err := Upsert(content, exePath, tools)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if err := writeSettings(path, updated); err != nil {
		return false, err
	}
	return true, nil
}

// UninstallFile removes the mergegate hook entries from the settings file
// at path. A missing file counts as already uninstalled.
func UninstallFile(path string) (bool, error) {
	content, err := readSettings(path)
	if err != nil {
		return false, err
	}
	if content == nil {
		return false, nil
	}

	updated, changed, err := Remove(content)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if err := writeSettings(path, updated); err != nil {
		return false, err
	}
	return true, nil
}

// InspectFile reports the mergegate hook entries in the settings file at
// path. A missing file is an empty State.
func InspectFile(path string) (State, error) {
	content, err := readSettings(path)
	if err != nil {
		return State{}, err
	}
	return Inspect(content)
}
