package dataset

import (
	"sort"
	"strings"
)

// Movie is a single dataset record. Genres holds the raw comma-separated
// genre field; Combined is the genre text concatenated with the overview and
// feeds the similarity index.
type Movie struct {
	Title    string
	Genres   string
	Overview string
	Rating   float64
	Combined string
}

// SplitGenres splits a raw genre field into individual genre names, trimming
// whitespace and dropping empty entries.
func SplitGenres(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		genres = append(genres, part)
	}
	return genres
}

// GenreCatalog returns the sorted set of distinct genre names across all
// movies. Records with an empty genre field contribute nothing.
func GenreCatalog(movies []Movie) []string {
	seen := make(map[string]struct{})
	for _, movie := range movies {
		for _, genre := range SplitGenres(movie.Genres) {
			seen[genre] = struct{}{}
		}
	}
	catalog := make([]string, 0, len(seen))
	for genre := range seen {
		catalog = append(catalog, genre)
	}
	sort.Strings(catalog)
	return catalog
}
