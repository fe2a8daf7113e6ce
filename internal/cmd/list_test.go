package cmd

import (
	"os"
	"strings"
	"testing"
)

func TestList_Empty(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)

	if _, err := runCommand(t, "", "list"); err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if !strings.Contains(out.String(), "No approved pull requests") {
		t.Errorf("output = %q, want empty-store message", out.String())
	}
}

func TestList_Entries(t *testing.T) {
	store := setupEnv(t)
	out := captureTerm(t)
	if err := os.WriteFile(store, []byte("12\n7\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "", "list"); err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "(2)") {
		t.Errorf("output = %q, want entry count", got)
	}
	// Store order is ascending string comparison, so "12" sorts before "7".
	i12 := strings.Index(got, "#12")
	i7 := strings.Index(got, "#7")
	if i12 == -1 || i7 == -1 {
		t.Fatalf("output = %q, want both entries listed", got)
	}
	if i12 > i7 {
		t.Errorf("output = %q, want #12 before #7", got)
	}
}

func TestList_Alias(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)

	if _, err := runCommand(t, "", "ls"); err != nil {
		t.Fatalf("ls returned error: %v", err)
	}
	if !strings.Contains(out.String(), "No approved pull requests") {
		t.Errorf("output = %q, want empty-store message", out.String())
	}
}

func TestList_Quiet(t *testing.T) {
	store := setupEnv(t)
	out := captureTerm(t)
	if err := os.WriteFile(store, []byte("12\n7\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "", "--quiet", "list"); err != nil {
		t.Fatalf("list --quiet returned error: %v", err)
	}

	want := "12\n7\n"
	if out.String() != want {
		t.Errorf("output = %q, want bare lines %q", out.String(), want)
	}
}

func TestList_QuietEmpty(t *testing.T) {
	setupEnv(t)
	out := captureTerm(t)

	if _, err := runCommand(t, "", "--quiet", "list"); err != nil {
		t.Fatalf("list --quiet returned error: %v", err)
	}
	if out.String() != "" {
		t.Errorf("output = %q, want nothing on an empty store", out.String())
	}
}
