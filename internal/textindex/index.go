package textindex

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"reelpick/internal/dataset"
)

// ErrUnknownTitle indicates the queried title is not in the index.
var ErrUnknownTitle = errors.New("title not in dataset")

// Match pairs a movie title with its similarity to the query title.
type Match struct {
	Title string
	Score float64
}

type entry struct {
	title string
	fp    *fingerprint
}

// Index holds IDF-weighted fingerprints for every movie in the dataset.
type Index struct {
	entries []entry
	byTitle map[string]int
}

// Build constructs an index over the movies' combined genre+overview text.
// Movies whose combined text yields no tokens are indexed with a nil
// fingerprint and never match anything.
func Build(movies []dataset.Movie) *Index {
	raw := make([]*fingerprint, len(movies))
	docCount := 0
	docFreq := make(map[string]int)
	for i, movie := range movies {
		fp := newFingerprint(movie.Combined)
		raw[i] = fp
		if fp == nil {
			continue
		}
		docCount++
		for term := range fp.terms {
			docFreq[term]++
		}
	}

	var idf map[string]float64
	if docCount > 0 {
		idf = make(map[string]float64, len(docFreq))
		n := float64(docCount)
		for term, df := range docFreq {
			idf[term] = math.Log((n + 1) / (1 + float64(df)))
		}
	}

	idx := &Index{
		entries: make([]entry, len(movies)),
		byTitle: make(map[string]int, len(movies)),
	}
	for i, movie := range movies {
		idx.entries[i] = entry{title: movie.Title, fp: raw[i].weighted(idf)}
		key := strings.ToLower(movie.Title)
		if _, exists := idx.byTitle[key]; !exists {
			idx.byTitle[key] = i
		}
	}
	return idx
}

// Similar returns up to limit movies ranked by descending cosine similarity
// to the named movie. Title lookup is case-insensitive; the movie itself and
// zero-similarity entries are excluded. Ties break by title for stable output.
func (idx *Index) Similar(title string, limit int) ([]Match, error) {
	pos, ok := idx.byTitle[strings.ToLower(strings.TrimSpace(title))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTitle, title)
	}
	query := idx.entries[pos].fp

	matches := make([]Match, 0, len(idx.entries))
	for i, e := range idx.entries {
		if i == pos {
			continue
		}
		score := cosine(query, e.fp)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Title: e.title, Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Title < matches[j].Title
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Len reports how many movies are indexed.
func (idx *Index) Len() int {
	return len(idx.entries)
}
