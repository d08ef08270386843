package macros

import "example.com/fitplan/internal/domain"

const (
	// ProteinPerKGLean is applied to lean body mass regardless of goal.
	ProteinPerKGLean = 2.2

	plantProteinShift = 0.10
	lowCarbFatShift   = 0.60
)

// carbShare is the carbohydrate share of the non-protein calories; fat takes
// the rest.
var carbShare = map[domain.Goal]float64{
	domain.GoalLoseFat:             0.45,
	domain.GoalMaintain:            0.55,
	domain.GoalOverallHealth:       0.55,
	domain.GoalBuildMuscle:         0.60,
	domain.GoalImproveEndurance:    0.70,
	domain.GoalAthleticPerformance: 0.65,
}

// RatioStrategy sets protein from lean body mass and splits the remaining
// calories by a per-goal carbs:fat ratio, then applies the diet shifts.
type RatioStrategy struct{}

func (RatioStrategy) Split(req domain.CalculationRequest, target int) (domain.MacroSet, domain.FlagSet) {
	flags := domain.FlagSet{}

	protein := roundInt(LeanBodyMass(req) * ProteinPerKGLean)
	remainder := float64(target - protein*KcalPerGramProtein)
	if remainder < 0 {
		remainder = 0
		flags.Add(domain.FlagMacroFallback)
	}

	share, ok := carbShare[req.Goal]
	if !ok {
		share = carbShare[domain.GoalMaintain]
	}
	m := domain.MacroSet{
		Protein: protein,
		Carbs:   roundInt(remainder * share / KcalPerGramCarbs),
		Fat:     roundInt(remainder * (1 - share) / KcalPerGramFat),
	}

	switch req.Diet {
	case domain.DietVegetarian, domain.DietVegan:
		shift := roundInt(float64(m.Protein) * plantProteinShift)
		m.Protein -= shift
		m.Carbs += roundInt(float64(shift*KcalPerGramProtein) / KcalPerGramCarbs)
	case domain.DietKeto, domain.DietLowCarb:
		moved := roundInt(float64(m.Carbs) * lowCarbFatShift)
		m.Carbs -= moved
		m.Fat += roundInt(float64(moved*KcalPerGramCarbs) / KcalPerGramFat)
	}
	return m, flags
}

// LeanBodyMass removes the supplied fat percentage from bodyweight. Without
// a body-fat answer the full bodyweight is used.
func LeanBodyMass(req domain.CalculationRequest) float64 {
	if bf := req.BodyFatPercent; bf != nil && *bf >= 0 && *bf < 100 {
		return req.WeightKG * (1 - *bf/100)
	}
	return req.WeightKG
}
