package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reelpick/internal/recommend"
)

// Recommender produces movie picks for a fixed set of constraints.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) ([]recommend.Recommendation, error)
}

// Scorer mirrors recommend.Scorer for the mood echo shown to the user.
type Scorer interface {
	Score(text string) float64
}

// Limits carries the interactive validation bounds and result sizing.
type Limits struct {
	RatingFloor   float64
	RatingCeiling float64
	ResultLimit   int
}

// Options wires a Controller.
type Options struct {
	Recommender Recommender
	Scorer      Scorer
	Genres      []string
	Limits      Limits
	In          io.Reader
	Out         io.Writer
	Colorize    bool
	// Sleep paces the dot animation; nil uses time.Sleep. Tests pass a
	// no-op.
	Sleep  func(time.Duration)
	Logger *slog.Logger
}

// Controller owns one interactive session.
type Controller struct {
	recommender Recommender
	scorer      Scorer
	genres      []string
	limits      Limits
	scanner     *bufio.Scanner
	out         io.Writer
	colorize    bool
	sleep       func(time.Duration)
	logger      *slog.Logger
}

// New constructs a Controller from options.
func New(opts Options) *Controller {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limits := opts.Limits
	if limits.ResultLimit <= 0 {
		limits.ResultLimit = recommend.DefaultLimit
	}
	return &Controller{
		recommender: opts.Recommender,
		scorer:      opts.Scorer,
		genres:      opts.Genres,
		limits:      limits,
		scanner:     bufio.NewScanner(opts.In),
		out:         opts.Out,
		colorize:    opts.Colorize,
		sleep:       sleep,
		logger:      logger.With(slog.String("session_id", uuid.NewString())),
	}
}

// Run walks the full interaction. It returns nil when the user finishes or
// input ends; only recommendation failures surface as errors.
func (c *Controller) Run(ctx context.Context) error {
	c.println(colorBlue, "🎥 Welcome to your Personal Movie Recommendation Assistant! 🎥")
	c.println("", "")

	name, ok := c.prompt(colorYellow, "What's your name? ")
	if !ok {
		return nil
	}
	if name == "" {
		name = "friend"
	}
	c.println(colorGreen, fmt.Sprintf("\nGreat to meet you, %s!\n", name))
	c.logger.Info("session started", slog.String("name", name))

	c.println(colorBlue, "🔍 Let's find the perfect movie for you!\n")
	c.showGenres()

	genre, ok := c.collectGenre()
	if !ok {
		return nil
	}

	mood, ok := c.collectMood()
	if !ok {
		return nil
	}
	c.echoMood(mood)

	minRating, ok := c.collectRating()
	if !ok {
		return nil
	}

	req := recommend.Request{
		Genre:     genre,
		Mood:      mood,
		MinRating: minRating,
		Limit:     c.limits.ResultLimit,
	}
	c.logger.Info("constraints collected",
		slog.String("genre", genre),
		slog.Bool("mood_given", mood != ""),
		slog.Bool("rating_given", minRating != nil))

	for {
		c.print(colorBlue, fmt.Sprintf("\nFinding movies for %s", name))
		c.animate()
		c.println("", "")

		recs, err := c.recommender.Recommend(ctx, req)
		if err != nil {
			return fmt.Errorf("recommend: %w", err)
		}
		c.showResults(name, recs)

		again, ok := c.collectRepeat()
		if !ok || !again {
			break
		}
	}

	c.println(colorGreen, fmt.Sprintf("\nEnjoy your movie picks, %s! 🎬🍿\n", name))
	return nil
}
