package macros

import "example.com/fitplan/internal/domain"

const (
	ketoMinCarbsG = 20
	ketoMaxCarbsG = 50
)

var proteinPerKG = map[domain.Goal]float64{
	domain.GoalLoseFat:     1.6,
	domain.GoalBuildMuscle: 1.7,
}

var goalFatShare = map[domain.Goal]float64{
	domain.GoalLoseFat:     0.30,
	domain.GoalBuildMuscle: 0.25,
}

var dietFatShare = map[domain.DietType]float64{
	domain.DietKeto:          0.70,
	domain.DietPaleo:         0.35,
	domain.DietMediterranean: 0.35,
	domain.DietVegetarian:    0.30,
	domain.DietVegan:         0.30,
	domain.DietLowCarb:       0.40,
}

// DietTypeStrategy sets protein per kilogram of bodyweight by goal and fat as
// a share of the target, overridden by diet type. Carbs take the remainder;
// keto clamps carbs to 20-50 g and recomputes fat from what is left.
type DietTypeStrategy struct{}

func (DietTypeStrategy) Split(req domain.CalculationRequest, target int) (domain.MacroSet, domain.FlagSet) {
	ppk, ok := proteinPerKG[req.Goal]
	if !ok {
		ppk = 1.2
	}
	fatShare, ok := goalFatShare[req.Goal]
	if !ok {
		fatShare = 0.30
	}
	if override, ok := dietFatShare[req.Diet]; ok {
		fatShare = override
	}

	protein := roundInt(req.WeightKG * ppk)
	fat := roundInt(float64(target) * fatShare / KcalPerGramFat)
	carbs := roundInt(float64(target-protein*KcalPerGramProtein-fat*KcalPerGramFat) / KcalPerGramCarbs)

	if req.Diet == domain.DietKeto {
		carbs = min(max(carbs, ketoMinCarbsG), ketoMaxCarbsG)
		fat = roundInt(float64(target-protein*KcalPerGramProtein-carbs*KcalPerGramCarbs) / KcalPerGramFat)
	}

	flags := domain.FlagSet{}
	if carbs < 0 || fat < 0 {
		flags.Add(domain.FlagMacroFallback)
	}
	return domain.MacroSet{Protein: protein, Carbs: max(carbs, 0), Fat: max(fat, 0)}, flags
}
