package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Analyzer scores text polarity using the VADER sentiment lexicon.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer constructs an Analyzer with the default lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text, clamped to [-1, 1].
// Empty or whitespace-only text scores neutral (0).
func (a *Analyzer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return clamp(a.vader.PolarityScores(text).Compound)
}

func clamp(polarity float64) float64 {
	switch {
	case polarity > 1:
		return 1
	case polarity < -1:
		return -1
	default:
		return polarity
	}
}
