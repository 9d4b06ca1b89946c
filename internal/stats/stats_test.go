package stats

import (
	"math"
	"testing"

	"kinolog/internal/media"
)

func movie(t *testing.T, title, genre string, rating *float64, watched bool) *media.Movie {
	t.Helper()
	m, err := media.NewMovie(title, "Director", "2000", genre, "")
	if err != nil {
		t.Fatalf("NewMovie failed: %v", err)
	}
	m.Rating = rating
	if watched {
		m.Status = media.StatusWatched
		m.WatchDate = "2024-01-01"
	}
	return m
}

func ptr(v float64) *float64 { return &v }

func TestWatchedRatings(t *testing.T) {
	movies := []*media.Movie{
		movie(t, "Watched Rated", "drama", ptr(8), true),
		movie(t, "Watched Unrated", "drama", nil, true),
		movie(t, "Unwatched Rated", "drama", ptr(9), false),
	}

	points := WatchedRatings(movies)
	if len(points) != 1 {
		t.Fatalf("point count = %d, want 1", len(points))
	}
	if points[0].Title != "Watched Rated" || points[0].Rating != 8 {
		t.Errorf("unexpected point: %+v", points[0])
	}
}

func TestGenreBreakdown(t *testing.T) {
	movies := []*media.Movie{
		movie(t, "A", "Horror", nil, false),
		movie(t, "B", "horror ", nil, false),
		movie(t, "C", "Drama", nil, false),
		movie(t, "D", "", nil, false),
	}

	got := GenreBreakdown(movies)
	if len(got) != 2 {
		t.Fatalf("genre count = %d, want 2", len(got))
	}
	if got[0].Genre != "horror" || got[0].Count != 2 {
		t.Errorf("top genre = %+v, want horror/2", got[0])
	}
	if got[1].Genre != "drama" || got[1].Count != 1 {
		t.Errorf("second genre = %+v, want drama/1", got[1])
	}
}

func TestAverageRating(t *testing.T) {
	if _, ok := AverageRating(nil); ok {
		t.Error("empty collection should have no average")
	}

	movies := []*media.Movie{
		movie(t, "A", "", ptr(6), true),
		movie(t, "B", "", ptr(9), true),
		movie(t, "C", "", nil, false),
	}
	avg, ok := AverageRating(movies)
	if !ok {
		t.Fatal("expected an average")
	}
	if math.Abs(avg-7.5) > 1e-9 {
		t.Errorf("average = %v, want 7.5", avg)
	}
}

func TestTop(t *testing.T) {
	movies := []*media.Movie{
		movie(t, "Three", "", ptr(3), true),
		movie(t, "Ten", "", ptr(10), true),
		movie(t, "Unrated", "", nil, false),
		movie(t, "Eight", "", ptr(8), true),
	}

	top := Top(movies, 2)
	if len(top) != 2 {
		t.Fatalf("top length = %d, want 2", len(top))
	}
	if top[0].Title != "Ten" || top[1].Title != "Eight" {
		t.Errorf("top order = %q, %q", top[0].Title, top[1].Title)
	}

	all := Top(movies, 10)
	if len(all) != 3 {
		t.Errorf("rated count = %d, want 3", len(all))
	}
}
