package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xdg/mergegate/internal/config"
)

func TestConfigCmd_HasSubcommands(t *testing.T) {
	subCmds := configCmd.Commands()
	if len(subCmds) == 0 {
		t.Fatal("config command should have subcommands")
	}

	expected := map[string]bool{
		"show": false,
		"edit": false,
		"path": false,
		"init": false,
	}

	for _, cmd := range subCmds {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestConfigPath_PrintsPath(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)

	if _, err := runCommand(t, "", "config", "path"); err != nil {
		t.Fatalf("config path returned error: %v", err)
	}
	if !strings.Contains(out.String(), "config.yaml") {
		t.Errorf("output = %q, want the config file path", out.String())
	}
}

func TestConfigInit_CreatesFile(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)

	if _, err := runCommand(t, "", "config", "init"); err != nil {
		t.Fatalf("config init returned error: %v", err)
	}

	data, err := os.ReadFile(config.Path())
	if err != nil {
		t.Fatalf("read created config: %v", err)
	}
	if !strings.Contains(string(data), "# mergegate configuration") {
		t.Errorf("config = %q, want the commented template", data)
	}
	if !strings.Contains(out.String(), "Created default config") {
		t.Errorf("output = %q, want creation message", out.String())
	}
}

func TestConfigInit_ExistingFile(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)

	if _, err := runCommand(t, "", "config", "init"); err != nil {
		t.Fatalf("first config init returned error: %v", err)
	}
	out.Reset()

	if _, err := runCommand(t, "", "config", "init"); err != nil {
		t.Fatalf("second config init returned error: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output = %q, want already-exists message", out.String())
	}
}

func TestConfigShow_Defaults(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)

	if _, err := runCommand(t, "", "config", "show"); err != nil {
		t.Fatalf("config show returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"tools:", "Bash", "log_level: info", "audit: true"} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, missing %q", got, want)
		}
	}
}

func TestConfigShow_FileValues(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)

	dir := os.Getenv("MERGEGATE_CONFIG_DIR")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "log_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "", "config", "show"); err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if !strings.Contains(out.String(), "log_level: debug") {
		t.Errorf("output = %q, want the file's log level", out.String())
	}
}
