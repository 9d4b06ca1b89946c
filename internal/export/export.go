// Package export renders a movie collection to the CSV and TXT formats the
// application has always produced, Polish headers included.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"kinolog/internal/media"
)

// csvHeader is fixed; consumers of old exports rely on it.
var csvHeader = []string{"Tytuł", "Reżyser", "Rok", "Gatunek", "Status", "Ocena", "Opis"}

const txtSeparator = "----------------------------------------"

// WriteCSV writes the collection as CSV with the fixed header.
func WriteCSV(w io.Writer, movies []*media.Movie) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, movie := range movies {
		record := []string{
			movie.Title,
			movie.Director,
			movie.Year,
			movie.Genre,
			movie.Status.String(),
			formatRating(movie.Rating),
			movie.Description,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row for %q: %w", movie.Title, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteTXT writes the collection as labeled blocks separated by a
// 40-character rule.
func WriteTXT(w io.Writer, movies []*media.Movie) error {
	var b strings.Builder
	for _, movie := range movies {
		fmt.Fprintf(&b, "Tytuł: %s\n", movie.Title)
		fmt.Fprintf(&b, "Reżyser: %s\n", movie.Director)
		fmt.Fprintf(&b, "Rok: %s\n", movie.Year)
		fmt.Fprintf(&b, "Gatunek: %s\n", movie.Genre)
		fmt.Fprintf(&b, "Status: %s\n", movie.Status)
		fmt.Fprintf(&b, "Ocena: %s\n", formatRating(movie.Rating))
		fmt.Fprintf(&b, "Opis: %s\n", movie.Description)
		b.WriteString(txtSeparator)
		b.WriteString("\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write txt export: %w", err)
	}
	return nil
}

// ToFile writes an export in the named format ("csv" or "txt") to path,
// creating the target directory if needed.
func ToFile(path, format string, movies []*media.Movie) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(format) {
	case "csv":
		err = WriteCSV(file, movies)
	case "txt":
		err = WriteTXT(file, movies)
	default:
		return fmt.Errorf("unsupported export format %q (allowed: csv, txt)", format)
	}
	if err != nil {
		return err
	}
	return file.Close()
}

func formatRating(rating *float64) string {
	if rating == nil {
		return ""
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}
