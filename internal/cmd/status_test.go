package cmd

import (
	"os"
	"strings"
	"testing"
)

func TestStatus_ShowsStoreAndCount(t *testing.T) {
	store := setupEnv(t)
	out := captureTerm(t)
	makeProject(t)
	if err := os.WriteFile(store, []byte("42\n43\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "", "status"); err != nil {
		t.Fatalf("status returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, store) {
		t.Errorf("output = %q, want the store path", got)
	}
	if !strings.Contains(got, "Approved:   2") {
		t.Errorf("output = %q, want the entry count", got)
	}
	if !strings.Contains(got, "Tools:      Bash") {
		t.Errorf("output = %q, want the gated tools", got)
	}
	if !strings.Contains(got, "not installed") {
		t.Errorf("output = %q, want hook state", got)
	}
}

func TestStatus_InstalledHooks(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)
	makeProject(t)

	if _, err := runCommand(t, "", "install"); err != nil {
		t.Fatalf("install returned error: %v", err)
	}
	out.Reset()

	if _, err := runCommand(t, "", "status"); err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if !strings.Contains(out.String(), "installed in") {
		t.Errorf("output = %q, want installed hook state", out.String())
	}
}

func TestStatus_Disabled(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)
	makeProject(t)
	t.Setenv("MERGEGATE_DISABLED", "true")

	if _, err := runCommand(t, "", "status"); err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if !strings.Contains(out.String(), "MERGEGATE_DISABLED") {
		t.Errorf("output = %q, want the disabled marker", out.String())
	}
}
