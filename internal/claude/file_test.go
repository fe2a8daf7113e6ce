package claude

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSettingsPath(t *testing.T) {
	got := SettingsPath("/work/project")
	want := filepath.Join("/work/project", ".claude", "settings.json")
	if got != want {
		t.Errorf("SettingsPath() = %q, want %q", got, want)
	}
}

func TestInstallFile_CreatesFile(t *testing.T) {
	root := t.TempDir()
	path := SettingsPath(root)

	changed, err := InstallFile(path, "/usr/local/bin/mergegate", []string{"Bash"})
	if err != nil {
		t.Fatalf("InstallFile() error = %v", err)
	}
	if !changed {
		t.Fatal("expected changed")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "mergegate hook pre") {
		t.Errorf("settings file missing pre hook: %q", string(data))
	}
}

func TestInstallFile_Idempotent(t *testing.T) {
	root := t.TempDir()
	path := SettingsPath(root)

	if _, err := InstallFile(path, "/usr/local/bin/mergegate", []string{"Bash"}); err != nil {
		t.Fatalf("InstallFile() first error = %v", err)
	}

	changed, err := InstallFile(path, "/usr/local/bin/mergegate", []string{"Bash"})
	if err != nil {
		t.Fatalf("InstallFile() second error = %v", err)
	}
	if changed {
		t.Error("second InstallFile() reported changed")
	}
}

func TestInstallFile_PreservesExisting(t *testing.T) {
	root := t.TempDir()
	path := SettingsPath(root)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("os.MkdirAll() error = %v", err)
	}
	existing := `{"permissions":{"allow":["Bash(git *)"]}}`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	if _, err := InstallFile(path, "/usr/local/bin/mergegate", []string{"Bash"}); err != nil {
		t.Fatalf("InstallFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "permissions") {
		t.Errorf("existing settings lost: %q", string(data))
	}
}

func TestUninstallFile_MissingFile(t *testing.T) {
	path := SettingsPath(t.TempDir())

	changed, err := UninstallFile(path)
	if err != nil {
		t.Fatalf("UninstallFile() error = %v", err)
	}
	if changed {
		t.Error("UninstallFile() on missing file reported changed")
	}
}

func TestInstallUninstallRoundTrip(t *testing.T) {
	root := t.TempDir()
	path := SettingsPath(root)

	if _, err := InstallFile(path, "/usr/local/bin/mergegate", []string{"Bash"}); err != nil {
		t.Fatalf("InstallFile() error = %v", err)
	}

	state, err := InspectFile(path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if !state.Installed() {
		t.Fatalf("InspectFile() after install = %+v, want both hooks", state)
	}

	changed, err := UninstallFile(path)
	if err != nil {
		t.Fatalf("UninstallFile() error = %v", err)
	}
	if !changed {
		t.Fatal("expected changed")
	}

	state, err = InspectFile(path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if state.Pre || state.Post {
		t.Errorf("InspectFile() after uninstall = %+v, want none", state)
	}
}

func TestInspectFile_MissingFile(t *testing.T) {
	state, err := InspectFile(SettingsPath(t.TempDir()))
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if state.Pre || state.Post {
		t.Errorf("InspectFile() on missing file = %+v, want none", state)
	}
}
