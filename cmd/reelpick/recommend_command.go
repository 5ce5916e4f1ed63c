package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"reelpick/internal/recommend"
	"reelpick/internal/sentiment"
	"reelpick/internal/session"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Start an interactive recommendation session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}

			scorer := sentiment.NewAnalyzer()
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			engine := recommend.NewEngine(app.store, scorer, rng, app.logger)

			controller := session.New(session.Options{
				Recommender: engine,
				Scorer:      scorer,
				Genres:      app.genres,
				Limits: session.Limits{
					RatingFloor:   app.cfg.Recommend.MinRatingFloor,
					RatingCeiling: app.cfg.Recommend.MinRatingCeiling,
					ResultLimit:   app.cfg.Recommend.Limit,
				},
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
				Colorize: stdoutIsTerminal(),
				Logger:   app.logger,
			})
			return controller.Run(cmd.Context())
		},
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
