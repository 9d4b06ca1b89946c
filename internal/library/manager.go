package library

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"kinolog/internal/logging"
	"kinolog/internal/media"
)

// Manager operates on the movie collection owned by a single user. It
// mutates the owner's Movies slice in place so callers persist the user to
// persist the collection.
type Manager struct {
	logger *slog.Logger
	owner  *media.User
}

// NewManager binds a manager to the collection owner.
func NewManager(owner *media.User, logger *slog.Logger) *Manager {
	return &Manager{
		logger: logging.NewComponentLogger(logger, "library"),
		owner:  owner,
	}
}

// Add appends a movie to the collection. Titles are unique per collection,
// compared case-insensitively.
func (m *Manager) Add(movie *media.Movie) error {
	for _, existing := range m.owner.Movies {
		if strings.EqualFold(existing.Title, movie.Title) {
			return fmt.Errorf("%w: %q is already in the collection", ErrDuplicate, movie.Title)
		}
	}
	m.owner.Movies = append(m.owner.Movies, movie)
	m.logger.Debug("movie added", logging.String("title", movie.Title), logging.String("movie_id", movie.ID))
	return nil
}

// List returns the collection in insertion order. The result is a copy of
// the slice; an empty collection yields an empty slice, never an error.
func (m *Manager) List() []*media.Movie {
	out := make([]*media.Movie, len(m.owner.Movies))
	copy(out, m.owner.Movies)
	return out
}

// Get returns the movie with the given id.
func (m *Manager) Get(id string) (*media.Movie, error) {
	for _, movie := range m.owner.Movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, fmt.Errorf("%w: no movie with id %q", ErrNotFound, id)
}

// Delete removes the movie with the given id from the collection.
func (m *Manager) Delete(id string) error {
	for i, movie := range m.owner.Movies {
		if movie.ID == id {
			m.owner.Movies = append(m.owner.Movies[:i], m.owner.Movies[i+1:]...)
			m.logger.Debug("movie deleted", logging.String("title", movie.Title), logging.String("movie_id", id))
			return nil
		}
	}
	return fmt.Errorf("%w: cannot delete, no movie with id %q", ErrNotFound, id)
}

// UpdateTitle replaces a movie's title, keeping its identity.
func (m *Manager) UpdateTitle(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title is required", media.ErrValidation)
	}
	movie, err := m.Get(id)
	if err != nil {
		return err
	}
	for _, existing := range m.owner.Movies {
		if existing.ID != id && strings.EqualFold(existing.Title, title) {
			return fmt.Errorf("%w: %q is already in the collection", ErrDuplicate, title)
		}
	}
	movie.Title = title
	return nil
}

// UpdateDirector replaces a movie's director.
func (m *Manager) UpdateDirector(id, director string) error {
	if strings.TrimSpace(director) == "" {
		return fmt.Errorf("%w: director is required", media.ErrValidation)
	}
	movie, err := m.Get(id)
	if err != nil {
		return err
	}
	movie.Director = strings.TrimSpace(director)
	return nil
}

// UpdateYear replaces a movie's release year. The value stays free-form.
func (m *Manager) UpdateYear(id, year string) error {
	movie, err := m.Get(id)
	if err != nil {
		return err
	}
	movie.Year = strings.TrimSpace(year)
	return nil
}

// UpdateGenre replaces a movie's genre.
func (m *Manager) UpdateGenre(id, genre string) error {
	movie, err := m.Get(id)
	if err != nil {
		return err
	}
	movie.Genre = strings.TrimSpace(genre)
	return nil
}

// UpdateDescription replaces a movie's description.
func (m *Manager) UpdateDescription(id, description string) error {
	movie, err := m.Get(id)
	if err != nil {
		return err
	}
	movie.Description = description
	return nil
}

// UpdateRating replaces a movie's rating.
func (m *Manager) UpdateRating(id string, rating float64) error {
	if err := media.ValidateRating(rating); err != nil {
		return err
	}
	movie, err := m.Get(id)
	if err != nil {
		return err
	}
	movie.Rating = &rating
	return nil
}

// FindByTitle returns all movies whose title equals the query,
// case-insensitively. Search misses are an empty result, not an error.
func (m *Manager) FindByTitle(title string) []*media.Movie {
	var matches []*media.Movie
	for _, movie := range m.owner.Movies {
		if strings.EqualFold(movie.Title, title) {
			matches = append(matches, movie)
		}
	}
	return matches
}

// FindByDirector returns all movies by the given director, case-insensitively.
func (m *Manager) FindByDirector(director string) []*media.Movie {
	var matches []*media.Movie
	for _, movie := range m.owner.Movies {
		if strings.EqualFold(movie.Director, director) {
			matches = append(matches, movie)
		}
	}
	return matches
}

// FilterByGenre returns all movies whose genre contains the query as a
// case-insensitive substring.
func (m *Manager) FilterByGenre(genre string) []*media.Movie {
	query := strings.ToLower(strings.TrimSpace(genre))
	var matches []*media.Movie
	for _, movie := range m.owner.Movies {
		if strings.Contains(strings.ToLower(movie.Genre), query) {
			matches = append(matches, movie)
		}
	}
	return matches
}

// AddComment appends a comment to the first movie matching the title.
func (m *Manager) AddComment(title, user, text string) error {
	for _, movie := range m.owner.Movies {
		if strings.EqualFold(movie.Title, title) {
			return movie.AddComment(user, text)
		}
	}
	return fmt.Errorf("%w: no movie titled %q", ErrNotFound, title)
}

// SortedByRating returns a copy of the collection ordered by rating
// descending. Unrated movies sort last; ties keep insertion order.
func (m *Manager) SortedByRating() []*media.Movie {
	out := m.List()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Rating, out[j].Rating
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
	return out
}

// SortedByTitle returns a copy of the collection ordered by title
// ascending, using case-insensitive Unicode collation.
func (m *Manager) SortedByTitle() []*media.Movie {
	out := m.List()
	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].Title, out[j].Title) < 0
	})
	return out
}

// SetStatus drives the two-state watch machine. Marking a movie watched
// requires a rating and stamps the watch date with the current day; marking
// it unwatched clears both.
func (m *Manager) SetStatus(id string, status media.Status, rating *float64) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q is not a valid status (allowed: %q, %q)",
			media.ErrWrongStatus, status, media.StatusWatched, media.StatusUnwatched)
	}
	movie, err := m.Get(id)
	if err != nil {
		return err
	}

	if status == media.StatusWatched {
		if rating == nil {
			return fmt.Errorf("%w: a rating is required to mark %q watched", media.ErrValidation, movie.Title)
		}
		if err := media.ValidateRating(*rating); err != nil {
			return err
		}
		movie.Status = media.StatusWatched
		movie.Rating = rating
		movie.WatchDate = time.Now().Format(media.DateLayout)
	} else {
		movie.Status = media.StatusUnwatched
		movie.Rating = nil
		movie.WatchDate = ""
	}

	m.logger.Debug("status changed",
		logging.String("title", movie.Title),
		logging.String("status", movie.Status.String()))
	return nil
}

// WatchedEntry pairs a watched movie's title with the date it was watched.
type WatchedEntry struct {
	Title     string
	WatchDate string
}

// WatchedHistory lists the watched movies in insertion order.
func (m *Manager) WatchedHistory() []WatchedEntry {
	var history []WatchedEntry
	for _, movie := range m.owner.Movies {
		if movie.Watched() {
			history = append(history, WatchedEntry{Title: movie.Title, WatchDate: movie.WatchDate})
		}
	}
	return history
}
