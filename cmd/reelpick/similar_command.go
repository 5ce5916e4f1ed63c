package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelpick/internal/textindex"
)

func newSimilarCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "similar <title>",
		Short: "Rank movies most similar to a title by genre and overview text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}

			n := limit
			if n <= 0 {
				n = app.cfg.Recommend.SimilarLimit
			}

			index := textindex.Build(app.movies)
			matches, err := index.Similar(args[0], n)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No similar movies found.")
				return nil
			}

			rows := make([]rankedRow, 0, len(matches))
			for _, match := range matches {
				rows = append(rows, rankedRow{name: match.Title, metric: fmt.Sprintf("%.3f", match.Score)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRanking("Title", "Similarity", rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of matches to show (default from config)")
	return cmd
}
