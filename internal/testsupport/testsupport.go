// Package testsupport provides shared helpers for package tests: temp CSV
// datasets and populated in-memory catalog stores with cleanup registered.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"reelpick/internal/catalog"
	"reelpick/internal/dataset"
)

// WriteDataset writes a CSV file with the canonical header and the provided
// rows into a temp directory and returns its path. Each row is
// {title, genre, overview, rating}.
func WriteDataset(t testing.TB, rows [][4]string) string {
	t.Helper()

	content := "title,genre,overview,rating\n"
	for _, row := range rows {
		content += csvQuote(row[0]) + "," + csvQuote(row[1]) + "," + csvQuote(row[2]) + "," + row[3] + "\n"
	}

	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

// MustOpenCatalog opens an in-memory catalog, loads the movies, and registers
// cleanup.
func MustOpenCatalog(t testing.TB, movies []dataset.Movie) *catalog.Store {
	t.Helper()

	ctx := context.Background()
	store, err := catalog.Open(ctx)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	if err := store.Load(ctx, movies); err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	return store
}

// Movies builds dataset records the way the loader would, deriving the
// combined text field.
func Movies(rows [][4]string) []dataset.Movie {
	movies := make([]dataset.Movie, 0, len(rows))
	for _, row := range rows {
		rating := 0.0
		if row[3] != "" {
			rating = mustParseFloat(row[3])
		}
		movies = append(movies, dataset.Movie{
			Title:    row[0],
			Genres:   row[1],
			Overview: row[2],
			Rating:   rating,
			Combined: row[1] + " " + row[2],
		})
	}
	return movies
}

func csvQuote(field string) string {
	needsQuote := false
	for _, r := range field {
		if r == ',' || r == '"' || r == '\n' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return field
	}
	quoted := `"`
	for _, r := range field {
		if r == '"' {
			quoted += `""`
			continue
		}
		quoted += string(r)
	}
	return quoted + `"`
}

func mustParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return f
}
