// Package stats computes the collection statistics the application
// presents: ratings of watched movies, genre breakdown, average rating, and
// the top-rated list. Rendering is left to the presentation boundary.
package stats

import (
	"sort"
	"strings"

	"kinolog/internal/media"
)

// RatingPoint pairs a watched movie with its rating.
type RatingPoint struct {
	Title  string
	Rating float64
}

// WatchedRatings lists every watched, rated movie in collection order.
func WatchedRatings(movies []*media.Movie) []RatingPoint {
	var points []RatingPoint
	for _, movie := range movies {
		if movie.Watched() && movie.Rating != nil {
			points = append(points, RatingPoint{Title: movie.Title, Rating: *movie.Rating})
		}
	}
	return points
}

// GenreCount is the number of movies carrying a genre.
type GenreCount struct {
	Genre string
	Count int
}

// GenreBreakdown counts movies per genre, case-folded. Movies without a
// genre are skipped. The result is ordered by count descending, then by
// genre name for stable output.
func GenreBreakdown(movies []*media.Movie) []GenreCount {
	counts := make(map[string]int)
	for _, movie := range movies {
		genre := strings.ToLower(strings.TrimSpace(movie.Genre))
		if genre == "" {
			continue
		}
		counts[genre]++
	}

	out := make([]GenreCount, 0, len(counts))
	for genre, count := range counts {
		out = append(out, GenreCount{Genre: genre, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// AverageRating returns the mean over all rated movies. The second return
// is false when nothing has been rated.
func AverageRating(movies []*media.Movie) (float64, bool) {
	var sum float64
	var count int
	for _, movie := range movies {
		if movie.Rating != nil {
			sum += *movie.Rating
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// Top returns up to n rated movies ordered by rating descending, ties
// keeping collection order.
func Top(movies []*media.Movie, n int) []*media.Movie {
	var rated []*media.Movie
	for _, movie := range movies {
		if movie.Rating != nil {
			rated = append(rated, movie)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return *rated[i].Rating > *rated[j].Rating
	})
	if n >= 0 && len(rated) > n {
		rated = rated[:n]
	}
	return rated
}
