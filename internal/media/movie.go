package media

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DateLayout is the serialization format for watch dates.
const DateLayout = "2006-01-02"

// Comment is a single remark attached to a movie. Comments are appended in
// order and never edited or removed.
type Comment struct {
	User    string `json:"user"`
	Comment string `json:"comment"`
	Date    string `json:"date,omitempty"`
}

// Movie is a single entry in a user's collection or in the sample catalog.
// Rating is nil until the movie has been rated; WatchDate is empty while the
// movie is unwatched.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Director    string    `json:"director"`
	Year        string    `json:"year"`
	Genre       string    `json:"genre"`
	Status      Status    `json:"status"`
	Rating      *float64  `json:"rating"`
	Description string    `json:"description"`
	WatchDate   string    `json:"watch_date"`
	Comments    []Comment `json:"comments"`
}

// NewMovie constructs an unwatched movie with a fresh identifier. Title and
// director are required; year is kept as free-form text.
func NewMovie(title, director, year, genre, description string) (*Movie, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(director) == "" {
		return nil, fmt.Errorf("%w: director is required", ErrValidation)
	}
	return &Movie{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Director:    strings.TrimSpace(director),
		Year:        strings.TrimSpace(year),
		Genre:       strings.TrimSpace(genre),
		Status:      StatusUnwatched,
		Description: description,
	}, nil
}

// ValidateRating rejects ratings outside the inclusive [0, 10] scale.
func ValidateRating(value float64) error {
	if value < 0 || value > 10 {
		return fmt.Errorf("%w: rating %.2f must be between 0 and 10", ErrValidation, value)
	}
	return nil
}

// Validate checks the invariants a stored movie must satisfy. Used when
// reconstructing movies from the user store or the catalog file. Stored
// status values are normalized to lowercase.
func (m *Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(m.Director) == "" {
		return fmt.Errorf("%w: director is required for %q", ErrValidation, m.Title)
	}
	if m.Status != "" {
		parsed, err := ParseStatus(string(m.Status))
		if err != nil {
			return fmt.Errorf("movie %q: %w", m.Title, err)
		}
		m.Status = parsed
	}
	if m.Rating != nil {
		if err := ValidateRating(*m.Rating); err != nil {
			return fmt.Errorf("movie %q: %w", m.Title, err)
		}
	}
	return nil
}

// AddComment appends a comment to the movie. Both the commenting user and
// the comment text must be non-empty.
func (m *Movie) AddComment(user, text string) error {
	if strings.TrimSpace(user) == "" {
		return fmt.Errorf("%w: comment user is required", ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: comment text is required", ErrValidation)
	}
	m.Comments = append(m.Comments, Comment{User: user, Comment: text})
	return nil
}

// Watched reports whether the movie is in the watched state.
func (m *Movie) Watched() bool {
	return m.Status == StatusWatched
}
