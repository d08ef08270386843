package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"example.com/fitplan/internal/domain"
	"example.com/fitplan/internal/engine"
	"example.com/fitplan/internal/normalize"
)

var (
	computeVariant string
	computeRandom  bool
	computeSeed    uint64
	computeJSON    bool
)

var computeCmd = &cobra.Command{
	Use:   "compute <answers.json|answers.toml>",
	Short: "Compute a program from a questionnaire file",
	Long: `Compute BMR, TDEE, calorie target, macros and a weekly training plan from a
questionnaire file. The file format is chosen by extension: .toml is read as
TOML, anything else as JSON. Field names match the HTTP API.

EXIT STATUS:

  Invalid answers and physiological rejections exit non-zero and list the
  offending fields or flags.

EXAMPLES:

  fitplan compute answers.json
  fitplan compute answers.toml --variant v2
  fitplan compute answers.json --random --seed 7   # reproducible shuffle
  fitplan compute answers.json --json | jq .macros`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := loadAnswers(args[0])
		if err != nil {
			return err
		}
		if computeVariant != "" {
			answers.Variant = computeVariant
		}
		if computeRandom {
			answers.ExerciseMode = string(domain.ExerciseModeRandom)
		}
		if cmd.Flags().Changed("seed") {
			seed := computeSeed
			answers.Seed = &seed
		}

		req := normalize.Normalize(answers, cfg.DefaultVariant)
		result, err := engine.New(catalog).Calculate(req)
		if err != nil {
			printCalculationError(cmd.ErrOrStderr(), err)
			return err
		}

		out := cmd.OutOrStdout()
		if computeJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		printResult(out, result)
		return nil
	},
}

func init() {
	computeCmd.Flags().StringVarP(&computeVariant, "variant", "v", "", "calculation variant (v1 or v2)")
	computeCmd.Flags().BoolVar(&computeRandom, "random", false, "pick exercises at random instead of the fixed template")
	computeCmd.Flags().Uint64Var(&computeSeed, "seed", 0, "seed for --random")
	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(computeCmd)
}

func loadAnswers(path string) (normalize.Answers, error) {
	var answers normalize.Answers
	data, err := os.ReadFile(path)
	if err != nil {
		return answers, fmt.Errorf("read answers: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &answers); err != nil {
			return answers, fmt.Errorf("decode toml answers: %w", err)
		}
		return answers, nil
	}
	if err := json.Unmarshal(data, &answers); err != nil {
		return answers, fmt.Errorf("decode json answers: %w", err)
	}
	return answers, nil
}

func printCalculationError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	var verr *domain.ValidationError
	var rej *domain.RejectionError
	switch {
	case errors.As(err, &verr):
		red.Fprintln(w, "Invalid answers:")
		for _, f := range verr.Fields {
			fmt.Fprintf(w, "  %s: %s\n", f.Field, f.Message)
		}
	case errors.As(err, &rej):
		red.Fprintln(w, "Calculation rejected:")
		for _, flag := range rej.Flags.Strings() {
			fmt.Fprintf(w, "  %s\n", flag)
		}
	}
}

func printResult(w io.Writer, r *domain.Result) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	bold.Fprintf(w, "Program (%s)\n", r.Variant)
	fmt.Fprintf(w, "  BMR              %d kcal\n", r.BMR)
	fmt.Fprintf(w, "  Activity factor  %g\n", r.ActivityFactor)
	fmt.Fprintf(w, "  TDEE             %d kcal\n", r.TDEE)
	fmt.Fprintf(w, "  Target           %s\n", cyan.Sprintf("%d kcal", r.TargetCalories))
	fmt.Fprintf(w, "  Macros           P %dg  C %dg  F %dg\n", r.Macros.Protein, r.Macros.Carbs, r.Macros.Fat)
	if r.WaterNeedsML > 0 {
		fmt.Fprintf(w, "  Water            %d ml\n", r.WaterNeedsML)
	}

	fmt.Fprintln(w)
	bold.Fprintln(w, "Week")
	for _, day := range r.WorkoutPlan {
		if day.IsRest {
			faint.Fprintf(w, "  %-10s Rest\n", day.DayName)
			continue
		}
		fmt.Fprintf(w, "  %-10s %s %s\n", day.DayName, day.Focus, faint.Sprintf("(%d sets)", day.TotalSets))
		for _, ex := range day.Exercises {
			fmt.Fprintf(w, "    - %s %s\n", ex.Name, faint.Sprintf("%dx%s", ex.TargetSets, ex.TargetReps))
		}
	}

	if len(r.MealPlan) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Meals")
		for _, m := range r.MealPlan {
			fmt.Fprintf(w, "  %-16s %4d kcal  P %dg  C %dg  F %dg\n", m.Name, m.Calories, m.Macros.Protein, m.Macros.Carbs, m.Macros.Fat)
		}
	}

	if len(r.Flags) > 0 {
		fmt.Fprintln(w)
		yellow.Fprintln(w, "Flags")
		for _, flag := range r.Flags.Strings() {
			yellow.Fprintf(w, "  %s\n", flag)
		}
	}
}
