package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGenresCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genres present in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}

			counts, err := app.store.GenreCounts(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]rankedRow, 0, len(counts))
			for _, gc := range counts {
				rows = append(rows, rankedRow{name: gc.Genre, metric: strconv.Itoa(gc.Movies)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRanking("Genre", "Movies", rows))
			return nil
		},
	}
}
