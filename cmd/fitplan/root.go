package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"example.com/fitplan/internal/config"
	"example.com/fitplan/internal/knowledge"
)

var (
	cfg       config.Config
	catalog   *knowledge.Catalog
	useDgraph bool
)

var rootCmd = &cobra.Command{
	Use:   "fitplan",
	Short: "Compute fitness and nutrition programs locally",
	Long: `fitplan runs the program engine against a questionnaire file without the
HTTP service.

QUICK START:

  $ fitplan compute answers.json             # BMR, TDEE, macros and weekly plan
  $ fitplan compute answers.toml --variant v2
  $ fitplan compute answers.json --random --seed 42 --json
  $ fitplan exercises --focus push --equipment minimal
  $ fitplan catalog push                     # seed Dgraph with built-in exercises
  $ fitplan token --subject athlete-1 --tenant demo

Settings such as DGRAPH_URL and JWT_SECRET are read from the environment or a
.env file in the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		catalog = knowledge.NewCatalog()
		if !useDgraph {
			return nil
		}
		if cfg.DgraphURL == "" {
			return fmt.Errorf("--dgraph requires DGRAPH_URL")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		if _, err := knowledge.NewDgraphSource(cfg.DgraphURL, cfg.HTTPTimeout).LoadInto(ctx, catalog, cfg.CatalogLimit); err != nil {
			return fmt.Errorf("load catalog from dgraph: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useDgraph, "dgraph", false, "merge exercises from DGRAPH_URL into the built-in catalog")
}
