// Package advice produces hydration targets, nutrient timing guidance, the
// meal split and food suggestions.
package advice

import (
	"fmt"
	"math"

	"example.com/fitplan/internal/domain"
)

const mlPerKG = 35

var hydrationMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.0,
	domain.ActivityLight:      1.1,
	domain.ActivityModerate:   1.2,
	domain.ActivityActive:     1.3,
	domain.ActivityVeryActive: 1.4,
}

// Hydration returns the daily water target in millilitres.
type Hydration interface {
	WaterML(req domain.CalculationRequest) int
}

// ActivityHydration scales the bodyweight baseline by activity level and
// rounds to 50 ml.
type ActivityHydration struct{}

func (ActivityHydration) WaterML(req domain.CalculationRequest) int {
	mult, ok := hydrationMultipliers[req.Activity]
	if !ok {
		mult = 1
	}
	return roundTo(req.WeightKG*mlPerKG*mult, 50)
}

// SessionHydration adds 500 ml per 30 training minutes for cardio and HIIT
// preferences and rounds to 5 ml.
type SessionHydration struct{}

func (SessionHydration) WaterML(req domain.CalculationRequest) int {
	ml := req.WeightKG * mlPerKG
	if req.Preference == domain.PreferenceCardio || req.Preference == domain.PreferenceHIIT {
		ml += 500 * float64(req.SessionDuration.Minutes()) / 30
	}
	return roundTo(ml, 5)
}

// ForVariant returns the hydration model serving the variant.
func ForVariant(v domain.Variant) Hydration {
	if v == domain.VariantV2 {
		return SessionHydration{}
	}
	return ActivityHydration{}
}

type timingCopy struct {
	pre  string
	post string
}

var timingByGoal = map[domain.Goal]timingCopy{
	domain.GoalLoseFat: {
		pre:  "Light snack 60-90 minutes before training: about %dg protein with a piece of fruit.",
		post: "Within 2 hours after training: a lean protein meal of about %dg protein with vegetables and a small portion of complex carbs.",
	},
	domain.GoalBuildMuscle: {
		pre:  "1-2 hours before training: about %dg protein with oats, rice or bread.",
		post: "Within 1 hour after training: about %dg protein with a generous serving of fast-digesting carbs.",
	},
	domain.GoalImproveEndurance: {
		pre:  "2-3 hours before training: a carb-focused meal with about %dg protein; top up with a banana 30 minutes before longer sessions.",
		post: "Replenish glycogen soon after training: carbs plus about %dg protein, and replace fluids and electrolytes.",
	},
	domain.GoalAthleticPerformance: {
		pre:  "2 hours before training: a balanced meal with about %dg protein and easily digested carbs.",
		post: "After training: about %dg protein with carbs at roughly a 3:1 carb-to-protein ratio.",
	},
	domain.GoalMaintain: {
		pre:  "1-2 hours before training: a balanced snack with about %dg protein.",
		post: "After training: a regular meal with about %dg protein.",
	},
}

var generalByTime = map[domain.WorkoutTime]string{
	domain.WorkoutMorning:     "Training in the morning: keep breakfast small and easy to digest, or train fasted for short sessions and eat a full breakfast afterwards.",
	domain.WorkoutMidday:      "Training at midday: have a solid breakfast and make lunch your post-workout meal.",
	domain.WorkoutEvening:     "Training in the evening: keep your afternoon snack 1-2 hours before the session and make dinner your recovery meal.",
	domain.WorkoutUnspecified: "Spread protein evenly across your meals and keep fluids up through the day.",
}

// Timing returns goal-conditioned pre and post workout guidance with the
// per-meal protein substituted in.
func Timing(req domain.CalculationRequest, macros domain.MacroSet) domain.NutrientTiming {
	meals := req.MealsPerDay
	if meals <= 0 {
		meals = 3
	}
	perMeal := int(math.Round(float64(macros.Protein) / float64(meals)))

	copyText, ok := timingByGoal[req.Goal]
	if !ok {
		copyText = timingByGoal[domain.GoalMaintain]
	}
	general, ok := generalByTime[req.WorkoutTime]
	if !ok {
		general = generalByTime[domain.WorkoutUnspecified]
	}
	return domain.NutrientTiming{
		PreWorkout:  fmt.Sprintf(copyText.pre, perMeal),
		PostWorkout: fmt.Sprintf(copyText.post, perMeal),
		General:     general,
	}
}

var mealNames = map[int][]string{
	3: {"Breakfast", "Lunch", "Dinner"},
	4: {"Breakfast", "Lunch", "Afternoon Snack", "Dinner"},
	5: {"Breakfast", "Morning Snack", "Lunch", "Afternoon Snack", "Dinner"},
	6: {"Breakfast", "Morning Snack", "Lunch", "Afternoon Snack", "Dinner", "Evening Snack"},
}

// MealPlan splits calories and macros evenly across meals; integer
// remainders land on the last meal so the meals sum to the daily totals.
func MealPlan(meals, target int, macros domain.MacroSet) []domain.Meal {
	meals = min(max(meals, 3), 6)
	out := make([]domain.Meal, meals)
	for i, name := range mealNames[meals] {
		out[i] = domain.Meal{
			Name:     name,
			Calories: share(target, meals, i),
			Macros: domain.MacroSet{
				Protein: share(macros.Protein, meals, i),
				Carbs:   share(macros.Carbs, meals, i),
				Fat:     share(macros.Fat, meals, i),
			},
		}
	}
	return out
}

var foodsByDiet = map[domain.DietType][]string{
	domain.DietStandard:      {"Chicken breast", "Eggs", "Greek yogurt", "Oats", "Brown rice", "Sweet potatoes", "Broccoli", "Berries", "Olive oil", "Almonds"},
	domain.DietVegetarian:    {"Eggs", "Greek yogurt", "Cottage cheese", "Lentils", "Chickpeas", "Tofu", "Quinoa", "Oats", "Spinach", "Walnuts"},
	domain.DietVegan:         {"Tofu", "Tempeh", "Seitan", "Lentils", "Black beans", "Quinoa", "Oats", "Pea protein", "Chia seeds", "Avocado"},
	domain.DietKeto:          {"Eggs", "Salmon", "Beef", "Avocado", "Olive oil", "Butter", "Cheese", "Leafy greens", "Cauliflower", "Macadamia nuts"},
	domain.DietPaleo:         {"Grass-fed beef", "Chicken thighs", "Wild salmon", "Eggs", "Sweet potatoes", "Squash", "Berries", "Leafy greens", "Coconut oil", "Almonds"},
	domain.DietMediterranean: {"Salmon", "Sardines", "Chicken", "Chickpeas", "Lentils", "Whole-grain bread", "Tomatoes", "Leafy greens", "Olive oil", "Walnuts"},
	domain.DietLowCarb:       {"Chicken breast", "Eggs", "Salmon", "Greek yogurt", "Cheese", "Leafy greens", "Zucchini", "Berries", "Avocado", "Almonds"},
}

// Foods returns the suggested foods for the diet type.
func Foods(diet domain.DietType) []string {
	list, ok := foodsByDiet[diet]
	if !ok {
		list = foodsByDiet[domain.DietStandard]
	}
	return append([]string(nil), list...)
}

func share(total, parts, idx int) int {
	base := total / parts
	if idx == parts-1 {
		return total - base*(parts-1)
	}
	return base
}

func roundTo(v float64, step int) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return int(math.Round(v/float64(step))) * step
}
