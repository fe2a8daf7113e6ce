package approval

import (
	"fmt"
	"sync"
	"testing"
)

// TestMemoryStoreImplementsStore verifies MemoryStore implements the Store interface.
func TestMemoryStoreImplementsStore(t *testing.T) {
	var _ Store = (*MemoryStore)(nil)
}

func TestMemoryStore_AddLoad(t *testing.T) {
	store := NewMemoryStore()

	for _, pr := range []string{"7", "10", "9"} {
		if _, err := store.Add(pr); err != nil {
			t.Fatalf("Add(%q) error = %v", pr, err)
		}
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"10", "7", "9"}
	if len(entries) != len(want) {
		t.Fatalf("Load() = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Load()[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestMemoryStore_Seeded(t *testing.T) {
	store := NewMemoryStore("3", "5")

	if !store.Contains("3") {
		t.Error("Contains(3) = false, want true")
	}
	if !store.Contains("5") {
		t.Error("Contains(5) = false, want true")
	}
	if store.Contains("7") {
		t.Error("Contains(7) = true, want false")
	}
}

func TestMemoryStore_Add_Idempotent(t *testing.T) {
	store := NewMemoryStore()

	added, err := store.Add("42")
	if err != nil {
		t.Fatalf("Add() first error = %v", err)
	}
	if !added {
		t.Error("Add() first = false, want true")
	}

	added, err = store.Add("42")
	if err != nil {
		t.Fatalf("Add() second error = %v", err)
	}
	if added {
		t.Error("Add() second = true, want false for present entry")
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Load() = %v, want a single entry", entries)
	}
}

func TestMemoryStore_Add_InvalidEntry(t *testing.T) {
	store := NewMemoryStore()

	for _, pr := range []string{"", "4 2"} {
		if _, err := store.Add(pr); err == nil {
			t.Errorf("Add(%q) error = nil, want error", pr)
		}
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = store.Add(fmt.Sprintf("%d", n))
			store.Contains("1")
		}(i)
	}
	wg.Wait()

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("Load() returned %d entries, want 10", len(entries))
	}
}
