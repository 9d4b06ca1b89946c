package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kinolog/internal/accounts"
	"kinolog/internal/media"
)

var displayCaser = cases.Title(language.Und)

// displayStatus renders the stored status value for humans. Localization
// stays at this boundary; stored values never vary.
func displayStatus(status media.Status) string {
	if !status.Valid() {
		return string(status)
	}
	return displayCaser.String(string(status))
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "-"
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func truncate(value string, max int) string {
	if max <= 3 || len(value) <= max {
		return value
	}
	return value[:max-3] + "..."
}

// readPassword returns the --password flag value or, when empty, reads one
// line from the command's input.
func readPassword(cmd *cobra.Command, flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// persistCollection saves the user store after a collection mutation. Save
// failures are reported but do not fail the command; the in-memory change
// already happened and memory stays authoritative for this run.
func persistCollection(cmd *cobra.Command, mgr *accounts.Manager) {
	if err := mgr.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to persist user store: %v\n", err)
	}
}

func movieRows(movies []*media.Movie) [][]string {
	rows := make([][]string, 0, len(movies))
	for _, movie := range movies {
		rows = append(rows, []string{
			shortID(movie.ID),
			truncate(movie.Title, 48),
			truncate(movie.Director, 32),
			movie.Year,
			movie.Genre,
			displayStatus(movie.Status),
			formatRating(movie.Rating),
		})
	}
	return rows
}

var movieHeaders = []string{"ID", "Title", "Director", "Year", "Genre", "Status", "Rating"}

var movieAligns = []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}

// resolveMovieID accepts either a full movie id or an unambiguous prefix
// (the list view shows the first 8 characters).
func resolveMovieID(movies []*media.Movie, idOrPrefix string) (string, error) {
	var match string
	for _, movie := range movies {
		if movie.ID == idOrPrefix {
			return movie.ID, nil
		}
		if strings.HasPrefix(movie.ID, idOrPrefix) {
			if match != "" {
				return "", fmt.Errorf("movie id prefix %q is ambiguous", idOrPrefix)
			}
			match = movie.ID
		}
	}
	if match == "" {
		// Let the manager produce its own not-found error for consistency.
		return idOrPrefix, nil
	}
	return match, nil
}
