package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"example.com/fitplan/internal/knowledge"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the Dgraph exercise catalog",
}

var catalogPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Apply the exercise schema and upsert the built-in exercises into Dgraph",
	Long: `Apply the Exercise schema to DGRAPH_URL and upsert every built-in exercise.
Existing nodes are matched by exercise id, so the command is safe to re-run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DgraphURL == "" {
			return fmt.Errorf("DGRAPH_URL is not set")
		}
		source := knowledge.NewDgraphSource(cfg.DgraphURL, cfg.HTTPTimeout)
		ctx := cmd.Context()
		if err := source.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}

		exercises := knowledge.NewCatalog().Exercises()
		for _, ex := range exercises {
			if err := source.Upsert(ctx, ex); err != nil {
				return fmt.Errorf("upsert %s: %w", ex.ID, err)
			}
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "pushed %d exercises to %s\n", len(exercises), cfg.DgraphURL)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogPushCmd)
	rootCmd.AddCommand(catalogCmd)
}
