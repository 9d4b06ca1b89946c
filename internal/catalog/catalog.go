// Package catalog reads the shared sample catalog: a JSON array of movie
// records users can browse and copy into their personal collections.
// Comments added to catalog entries are optionally written back to the
// catalog file.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kinolog/internal/logging"
	"kinolog/internal/media"
)

// ErrEntryNotFound marks a lookup for a title the catalog does not carry.
var ErrEntryNotFound = errors.New("catalog entry not found")

// Catalog is the in-memory view of the sample catalog file.
type Catalog struct {
	logger    *slog.Logger
	path      string
	writeBack bool
	entries   []*media.Movie
}

// Load reads and validates the catalog file. A missing file is an error;
// the catalog is an input users point the tool at, not state it owns.
func Load(path string, writeBack bool, logger *slog.Logger) (*Catalog, error) {
	logger = logging.NewComponentLogger(logger, "catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("catalog file not found at %s", path)
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []*media.Movie
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	for _, entry := range entries {
		if entry == nil {
			return nil, fmt.Errorf("catalog %s contains a null entry", path)
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
	}

	logger.Debug("catalog loaded",
		logging.Int("entry_count", len(entries)),
		logging.String("path", path))

	return &Catalog{logger: logger, path: path, writeBack: writeBack, entries: entries}, nil
}

// Entries returns the catalog movies in file order.
func (c *Catalog) Entries() []*media.Movie {
	out := make([]*media.Movie, len(c.entries))
	copy(out, c.entries)
	return out
}

// Find returns the first entry matching the title case-insensitively.
func (c *Catalog) Find(title string) (*media.Movie, error) {
	for _, entry := range c.entries {
		if strings.EqualFold(entry.Title, title) {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("%w: no catalog entry titled %q", ErrEntryNotFound, title)
}

// AddComment appends a dated comment to a catalog entry and, when write-back
// is enabled, rewrites the catalog file.
func (c *Catalog) AddComment(title, user, text string) error {
	entry, err := c.Find(title)
	if err != nil {
		return err
	}
	if strings.TrimSpace(user) == "" {
		return fmt.Errorf("%w: comment user is required", media.ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: comment text is required", media.ErrValidation)
	}

	entry.Comments = append(entry.Comments, media.Comment{
		User:    user,
		Comment: text,
		Date:    time.Now().Format(media.DateLayout),
	})

	if !c.writeBack {
		return nil
	}
	return c.save()
}

// NewPersonalCopy builds a fresh movie from a catalog entry, ready to add
// to a personal collection: new id, unwatched, no rating, no comments.
func (c *Catalog) NewPersonalCopy(title string) (*media.Movie, error) {
	entry, err := c.Find(title)
	if err != nil {
		return nil, err
	}
	return media.NewMovie(entry.Title, entry.Director, entry.Year, entry.Genre, entry.Description)
}

func (c *Catalog) save() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if dir := filepath.Dir(c.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp catalog: %w", err)
	}
	return nil
}
