package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"reelpick/internal/catalog"
)

// DefaultLimit is the number of recommendations returned when a request does
// not say otherwise.
const DefaultLimit = 5

// Scorer maps free text to a sentiment polarity in [-1, 1].
type Scorer interface {
	Score(text string) float64
}

// Request carries the constraints for one recommendation pass.
type Request struct {
	// Genre filters by case-insensitive containment in the genre field.
	// Empty means no genre constraint.
	Genre string
	// Mood is free text whose polarity sign the overview must match.
	// Empty means no mood constraint.
	Mood string
	// MinRating keeps only movies rated at or above it. Nil means no
	// rating constraint.
	MinRating *float64
	// Limit caps the number of results; non-positive falls back to
	// DefaultLimit.
	Limit int
}

// Recommendation is a single ranked pick.
type Recommendation struct {
	Title    string
	Polarity float64
}

// Engine produces recommendations from the catalog store.
type Engine struct {
	store  *catalog.Store
	scorer Scorer
	rng    *rand.Rand
	logger *slog.Logger
}

// NewEngine wires an engine. The rng drives the per-request shuffle and is
// injected so tests can fix the order.
func NewEngine(store *catalog.Store, scorer Scorer, rng *rand.Rand, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, scorer: scorer, rng: rng, logger: logger}
}

// Recommend returns up to Limit movies satisfying the request. An empty
// result is a valid outcome, not an error.
//
// The eligible set for fixed constraints is deterministic; the order and
// therefore the selection under Limit is not, because each call reshuffles.
func (e *Engine) Recommend(ctx context.Context, req Request) ([]Recommendation, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	log := e.logger.With(slog.String("request_id", uuid.NewString()))

	eligible, err := e.store.Eligible(ctx, req.Genre, req.MinRating)
	if err != nil {
		return nil, fmt.Errorf("narrow candidates: %w", err)
	}
	log.Debug("candidates narrowed",
		slog.Int("eligible", len(eligible)),
		slog.String("genre", req.Genre),
		slog.Bool("rating_filter", req.MinRating != nil))

	e.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	moodActive := req.Mood != ""
	var moodPolarity float64
	if moodActive {
		moodPolarity = e.scorer.Score(req.Mood)
	}

	recs := make([]Recommendation, 0, limit)
	for _, movie := range eligible {
		if movie.Overview == "" {
			continue
		}
		polarity := e.scorer.Score(movie.Overview)
		if moodActive && moodPolarity*polarity <= 0 && polarity != 0 {
			continue
		}
		recs = append(recs, Recommendation{Title: movie.Title, Polarity: polarity})
		if len(recs) == limit {
			break
		}
	}

	log.Info("recommendations ready",
		slog.Int("count", len(recs)),
		slog.Bool("mood_filter", moodActive))
	return recs, nil
}
