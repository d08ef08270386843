// Package macros splits a calorie target into protein, carbohydrate and fat
// grams.
package macros

import (
	"math"

	"example.com/fitplan/internal/domain"
)

const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9

	// Tolerance is the largest accepted gap between macro calories and target.
	Tolerance = 10

	MinCarbsG          = 20
	MinProteinG        = 20
	MinFatPerKG        = 0.3
	MinProteinPerKG    = 0.8
	FallbackTargetKcal = 1200
)

// Strategy produces the base split before minimums and reconciliation.
type Strategy interface {
	Split(req domain.CalculationRequest, target int) (domain.MacroSet, domain.FlagSet)
}

// ForVariant returns the strategy serving the variant.
func ForVariant(v domain.Variant) Strategy {
	if v == domain.VariantV2 {
		return DietTypeStrategy{}
	}
	return RatioStrategy{}
}

// Floors holds the per-request gram minimums.
type Floors struct {
	Protein int
	Carbs   int
	Fat     int
}

// FloorsFor returns the minimums for the bodyweight: protein at
// max(20 g, 0.8 g/kg), carbs at 20 g, fat at 0.3 g/kg.
func FloorsFor(weightKG float64) Floors {
	return Floors{
		Protein: max(MinProteinG, roundInt(weightKG*MinProteinPerKG)),
		Carbs:   MinCarbsG,
		Fat:     roundInt(weightKG * MinFatPerKG),
	}
}

// Allocate runs the strategy, lifts every macro to its floor and closes the
// calorie gap so the set lands within Tolerance of target.
func Allocate(s Strategy, req domain.CalculationRequest, target int) (domain.MacroSet, domain.FlagSet) {
	flags := domain.FlagSet{}
	if target <= 0 {
		target = FallbackTargetKcal
		flags.Add(domain.FlagMacroFallback)
	}

	m, splitFlags := s.Split(req, target)
	flags.Merge(splitFlags)

	floors := FloorsFor(req.WeightKG)
	m.Protein = max(m.Protein, floors.Protein)
	m.Carbs = max(m.Carbs, floors.Carbs)
	m.Fat = max(m.Fat, floors.Fat)

	m = Reconcile(m, target, req.Goal, floors)
	if abs(target-m.Calories()) > Tolerance {
		flags.Add(domain.FlagMacroFallback)
	}
	return m, flags
}

// Reconcile adjusts the goal's secondary macro (carbs for performance goals,
// fat otherwise) when macro calories miss target by more than Tolerance.
// When floors stop it, the other macro and then protein absorb the rest.
func Reconcile(m domain.MacroSet, target int, goal domain.Goal, floors Floors) domain.MacroSet {
	type lever struct {
		grams *int
		kcal  int
		floor int
	}
	carbs := lever{&m.Carbs, KcalPerGramCarbs, floors.Carbs}
	fat := lever{&m.Fat, KcalPerGramFat, floors.Fat}
	protein := lever{&m.Protein, KcalPerGramProtein, floors.Protein}

	order := []lever{fat, carbs, protein}
	if goal.PerformanceOriented() {
		order = []lever{carbs, fat, protein}
	}

	for _, l := range order {
		gap := target - m.Calories()
		if abs(gap) <= Tolerance {
			break
		}
		next := *l.grams + roundInt(float64(gap)/float64(l.kcal))
		*l.grams = max(next, l.floor)
	}
	return m
}

func roundInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
