package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kinolog/internal/media"
)

const sampleCatalog = `[
  {
    "id": "cat-1",
    "title": "Seven",
    "director": "David Fincher",
    "year": "1995",
    "genre": "thriller",
    "status": "unwatched",
    "rating": null,
    "description": "What's in the box?",
    "watch_date": "",
    "comments": []
  },
  {
    "id": "cat-2",
    "title": "Heat",
    "director": "Michael Mann",
    "year": "1995",
    "genre": "crime",
    "status": "watched",
    "rating": 8.5,
    "description": "",
    "watch_date": "2020-01-01",
    "comments": [{"user": "admin", "comment": "seed", "date": "2020-01-01"}]
  }
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample_movies.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadAndFind(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)

	cat, err := Load(path, false, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cat.Entries()) != 2 {
		t.Fatalf("entry count = %d, want 2", len(cat.Entries()))
	}

	entry, err := cat.Find("seven")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if entry.Director != "David Fincher" {
		t.Errorf("director = %q", entry.Director)
	}

	if _, err := cat.Find("missing"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Find miss = %v, want ErrEntryNotFound", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json"), false, nil); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	path := writeCatalog(t, `[{"title": "", "director": ""}]`)
	if _, err := Load(path, false, nil); err == nil {
		t.Fatal("expected validation error for invalid entry")
	}
}

func TestAddCommentWriteBack(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)

	cat, err := Load(path, true, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cat.AddComment("Seven", "alice", "brutal"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	var entries []*media.Movie
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("parse rewritten catalog: %v", err)
	}
	if len(entries[0].Comments) != 1 {
		t.Fatalf("comment not written back: %+v", entries[0].Comments)
	}
	got := entries[0].Comments[0]
	if got.User != "alice" || got.Comment != "brutal" || got.Date == "" {
		t.Errorf("unexpected persisted comment: %+v", got)
	}
}

func TestAddCommentWithoutWriteBack(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}

	cat, err := Load(path, false, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cat.AddComment("Seven", "alice", "brutal"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if string(before) != string(after) {
		t.Error("catalog file must not change when write-back is disabled")
	}
}

func TestAddCommentValidation(t *testing.T) {
	cat, err := Load(writeCatalog(t, sampleCatalog), false, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cat.AddComment("Seven", "", "x"); !errors.Is(err, media.ErrValidation) {
		t.Errorf("empty user = %v, want ErrValidation", err)
	}
	if err := cat.AddComment("missing", "alice", "x"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("unknown entry = %v, want ErrEntryNotFound", err)
	}
}

func TestNewPersonalCopy(t *testing.T) {
	cat, err := Load(writeCatalog(t, sampleCatalog), false, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	copyMovie, err := cat.NewPersonalCopy("Heat")
	if err != nil {
		t.Fatalf("NewPersonalCopy failed: %v", err)
	}
	if copyMovie.ID == "cat-2" || copyMovie.ID == "" {
		t.Errorf("copy must get a fresh id, got %q", copyMovie.ID)
	}
	if copyMovie.Status != media.StatusUnwatched {
		t.Errorf("copy status = %q, want unwatched", copyMovie.Status)
	}
	if copyMovie.Rating != nil || copyMovie.WatchDate != "" {
		t.Error("copy must start without rating or watch date")
	}
	if len(copyMovie.Comments) != 0 {
		t.Error("copy must not inherit catalog comments")
	}
	if copyMovie.Title != "Heat" || copyMovie.Director != "Michael Mann" {
		t.Errorf("copy lost descriptive fields: %+v", copyMovie)
	}
}
