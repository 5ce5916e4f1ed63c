package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var datasetFlag string

	ctx := newCommandContext(&configFlag, &datasetFlag)

	rootCmd := &cobra.Command{
		Use:           "reelpick",
		Short:         "Interactive movie recommendations from a local dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&datasetFlag, "dataset", "", "Dataset CSV path (overrides config)")

	rootCmd.AddCommand(newRecommendCommand(ctx))
	rootCmd.AddCommand(newGenresCommand(ctx))
	rootCmd.AddCommand(newSimilarCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
