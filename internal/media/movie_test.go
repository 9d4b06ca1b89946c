package media

import (
	"errors"
	"testing"
)

func TestNewMovieRequiresTitleAndDirector(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		director string
	}{
		{"empty title", "", "Ridley Scott"},
		{"blank title", "   ", "Ridley Scott"},
		{"empty director", "Alien", ""},
		{"blank director", "Alien", "  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMovie(tc.title, tc.director, "1979", "horror", "")
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewMovieDefaultsToUnwatched(t *testing.T) {
	movie, err := NewMovie("Alien", "Ridley Scott", "1979", "horror", "In space no one can hear you scream.")
	if err != nil {
		t.Fatalf("NewMovie failed: %v", err)
	}
	if movie.ID == "" {
		t.Error("movie should get a fresh id")
	}
	if movie.Status != StatusUnwatched {
		t.Errorf("status = %q, want %q", movie.Status, StatusUnwatched)
	}
	if movie.Rating != nil {
		t.Errorf("rating should be nil, got %v", *movie.Rating)
	}
	if movie.WatchDate != "" {
		t.Errorf("watch date should be empty, got %q", movie.WatchDate)
	}
}

func TestValidateRatingBounds(t *testing.T) {
	for _, value := range []float64{0, 5.5, 10} {
		if err := ValidateRating(value); err != nil {
			t.Errorf("ValidateRating(%v) = %v, want nil", value, err)
		}
	}
	for _, value := range []float64{-0.1, 10.1, 42} {
		if err := ValidateRating(value); !errors.Is(err, ErrValidation) {
			t.Errorf("ValidateRating(%v) = %v, want ErrValidation", value, err)
		}
	}
}

func TestMovieValidateRejectsBadStoredValues(t *testing.T) {
	bad := 11.0
	cases := []struct {
		name  string
		movie Movie
		want  error
	}{
		{"missing title", Movie{Director: "x"}, ErrValidation},
		{"missing director", Movie{Title: "x"}, ErrValidation},
		{"bad rating", Movie{Title: "x", Director: "y", Rating: &bad}, ErrValidation},
		{"bad status", Movie{Title: "x", Director: "y", Status: "Obejrzano"}, ErrWrongStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.movie.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAddCommentValidation(t *testing.T) {
	movie, err := NewMovie("Alien", "Ridley Scott", "1979", "horror", "")
	if err != nil {
		t.Fatalf("NewMovie failed: %v", err)
	}

	if err := movie.AddComment("", "great"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty user: got %v, want ErrValidation", err)
	}
	if err := movie.AddComment("alice", "  "); !errors.Is(err, ErrValidation) {
		t.Errorf("empty text: got %v, want ErrValidation", err)
	}

	if err := movie.AddComment("alice", "great"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if err := movie.AddComment("bob", "meh"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if len(movie.Comments) != 2 {
		t.Fatalf("comment count = %d, want 2", len(movie.Comments))
	}
	if movie.Comments[0].User != "alice" || movie.Comments[1].User != "bob" {
		t.Error("comments must preserve insertion order")
	}
}

func TestParseStatus(t *testing.T) {
	for input, want := range map[string]Status{
		"watched":   StatusWatched,
		"Watched":   StatusWatched,
		" UNWATCHED ": StatusUnwatched,
	} {
		got, err := ParseStatus(input)
		if err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseStatus(%q) = %q, want %q", input, got, want)
		}
	}

	if _, err := ParseStatus("obejrzany"); !errors.Is(err, ErrWrongStatus) {
		t.Errorf("ParseStatus(obejrzany) = %v, want ErrWrongStatus", err)
	}
}
