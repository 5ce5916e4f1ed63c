package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// ErrNotFound indicates the dataset file does not exist.
var ErrNotFound = errors.New("dataset file not found")

// ErrSchema indicates a required column is missing from the dataset header.
var ErrSchema = errors.New("dataset schema invalid")

// requiredColumns lists each canonical column with the header names that
// satisfy it. The aliases let the stock IMDB top-1000 export load without
// renaming its header row.
var requiredColumns = []struct {
	canonical string
	aliases   []string
}{
	{"title", []string{"title", "series_title"}},
	{"genre", []string{"genre", "genres"}},
	{"overview", []string{"overview"}},
	{"rating", []string{"rating", "imdb_rating"}},
}

// Load reads a CSV dataset from path and returns its movie records.
//
// A missing file wraps ErrNotFound; a header missing any required column
// wraps ErrSchema. Rows with an empty title or an unparseable rating are
// skipped. Missing genre or overview cells become empty strings, and the
// Combined field is derived as "<genres> <overview>".
func Load(path string) ([]Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrSchema)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		title := strings.TrimSpace(cell(row, columns["title"]))
		if title == "" {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(cell(row, columns["rating"])), 64)
		if err != nil {
			continue
		}

		genres := strings.TrimSpace(cell(row, columns["genre"]))
		overview := strings.TrimSpace(cell(row, columns["overview"]))

		movies = append(movies, Movie{
			Title:    title,
			Genres:   genres,
			Overview: overview,
			Rating:   rating,
			Combined: genres + " " + overview,
		})
	}

	return movies, nil
}

// resolveColumns maps canonical column names to header indexes, matching
// header names case-insensitively against the accepted aliases.
func resolveColumns(header []string) (map[string]int, error) {
	indexes := make(map[string]int, len(header))
	for i, name := range header {
		indexes[strings.ToLower(strings.TrimSpace(name))] = i
	}

	columns := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		found := false
		for _, alias := range col.aliases {
			if idx, ok := indexes[alias]; ok {
				columns[col.canonical] = idx
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchema, col.canonical)
		}
	}
	return columns, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
