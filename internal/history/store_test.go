package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, "alice", ActionMovieAdded, "Alien", ""); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Append(ctx, "alice", ActionMovieWatched, "Alien", "rating 8.5"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	events, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("event count = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Action != ActionMovieWatched {
		t.Errorf("first event = %q, want %q", events[0].Action, ActionMovieWatched)
	}
	if events[1].Action != ActionMovieAdded {
		t.Errorf("second event = %q, want %q", events[1].Action, ActionMovieAdded)
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("event timestamp missing")
	}
}

func TestAppendRequiresAction(t *testing.T) {
	store := openTestStore(t)
	if err := store.Append(context.Background(), "alice", "  ", "", ""); err == nil {
		t.Fatal("expected error for blank action")
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Append(ctx, "alice", ActionLogin, "", ""); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	events, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("event count = %d, want 3", len(events))
	}
}

func TestForUser(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, "Alice", ActionLogin, "", ""); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Append(ctx, "bob", ActionLogin, "", ""); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	events, err := store.ForUser(ctx, "alice", 10)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(events) != 1 || events[0].Username != "Alice" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, "alice", ActionLogin, "", ""); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	events, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("event count after clear = %d, want 0", len(events))
	}
}
