package textindex

import (
	"math"
	"regexp"
	"strings"
)

// tokenSplitPattern matches non-alphanumeric character sequences for tokenization.
var tokenSplitPattern = regexp.MustCompile(`[^a-z0-9]+`)

// fingerprint is a term-frequency vector with a precomputed Euclidean norm.
type fingerprint struct {
	terms map[string]float64
	norm  float64
}

// newFingerprint builds a fingerprint from text. Returns nil if the text
// produces no usable tokens.
func newFingerprint(text string) *fingerprint {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &fingerprint{terms: counts, norm: math.Sqrt(norm)}
}

// tokenize splits text into lowercase tokens, dropping tokens shorter than
// three characters.
func tokenize(text string) []string {
	raw := tokenSplitPattern.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if len(token) < 3 {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// weighted returns a copy of the fingerprint with IDF weights applied and the
// norm recomputed. Terms absent from the idf map keep their raw counts.
func (f *fingerprint) weighted(idf map[string]float64) *fingerprint {
	if f == nil || len(idf) == 0 {
		return f
	}
	terms := make(map[string]float64, len(f.terms))
	var norm float64
	for term, count := range f.terms {
		w := count
		if idfVal, ok := idf[term]; ok {
			w *= idfVal
		}
		if w == 0 {
			continue
		}
		terms[term] = w
		norm += w * w
	}
	if len(terms) == 0 {
		return nil
	}
	return &fingerprint{terms: terms, norm: math.Sqrt(norm)}
}

// cosine computes the cosine similarity between two fingerprints. Returns 0
// if either is nil or has zero norm.
func cosine(a, b *fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for term, weight := range a.terms {
		if other, ok := b.terms[term]; ok {
			dot += weight * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}
