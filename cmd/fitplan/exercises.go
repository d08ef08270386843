package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"example.com/fitplan/internal/domain"
	"example.com/fitplan/internal/knowledge"
)

var (
	exercisesFocus     string
	exercisesEquipment string
	exercisesQuery     string
	exercisesLimit     int
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ex"},
	Short:   "Search the exercise catalog",
	Long: `Search the exercise catalog by name, training focus and equipment context.

FOCUS:     push, pull, legs, upper, lower, full_body, mobility
EQUIPMENT: minimal, basic, full, outdoor

EXAMPLES:

  fitplan exercises --focus legs
  fitplan exercises --equipment minimal -q squat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := knowledge.Filter{Query: exercisesQuery, Limit: exercisesLimit}
		if exercisesFocus != "" {
			focus, ok := domain.ParseFocus(exercisesFocus)
			if !ok {
				return fmt.Errorf("unknown focus: %s", exercisesFocus)
			}
			filter.Focus = focus
		}
		if exercisesEquipment != "" {
			equipment := domain.Equipment(strings.ToLower(exercisesEquipment))
			if !equipment.Valid() {
				return fmt.Errorf("unknown equipment: %s", exercisesEquipment)
			}
			filter.Equipment = equipment
		}

		out := cmd.OutOrStdout()
		results := catalog.Search(filter)
		if len(results) == 0 {
			fmt.Fprintln(out, "No exercises found.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, ex := range results {
			fmt.Fprintf(out, "%-28s %s\n", ex.Name, faint.Sprint(ex.Difficulty))
		}
		return nil
	},
}

func init() {
	exercisesCmd.Flags().StringVarP(&exercisesFocus, "focus", "f", "", "filter by training focus")
	exercisesCmd.Flags().StringVarP(&exercisesEquipment, "equipment", "e", "", "filter by equipment context")
	exercisesCmd.Flags().StringVarP(&exercisesQuery, "query", "q", "", "case-insensitive name match")
	exercisesCmd.Flags().IntVarP(&exercisesLimit, "limit", "n", 50, "max number of results")
	rootCmd.AddCommand(exercisesCmd)
}
