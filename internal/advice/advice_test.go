package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/fitplan/internal/domain"
)

func TestActivityHydration(t *testing.T) {
	tests := []struct {
		activity domain.ActivityLevel
		want     int
	}{
		{domain.ActivitySedentary, 2800},
		{domain.ActivityLight, 3100},  // 3080
		{domain.ActivityActive, 3650}, // 3640
		{domain.ActivityVeryActive, 3900},
		{"unknown", 2800},
	}
	for _, tt := range tests {
		t.Run(string(tt.activity), func(t *testing.T) {
			req := domain.CalculationRequest{WeightKG: 80, Activity: tt.activity}
			assert.Equal(t, tt.want, ActivityHydration{}.WaterML(req))
		})
	}
}

func TestSessionHydration(t *testing.T) {
	req := domain.CalculationRequest{
		WeightKG:        70,
		Preference:      domain.PreferenceStrength,
		SessionDuration: domain.Duration45To60,
	}
	assert.Equal(t, 2450, SessionHydration{}.WaterML(req))

	req.Preference = domain.PreferenceHIIT
	assert.Equal(t, 3450, SessionHydration{}.WaterML(req))

	req.Preference = domain.PreferenceCardio
	req.SessionDuration = domain.DurationUnder30
	assert.Equal(t, 2865, SessionHydration{}.WaterML(req))
}

func TestTimingSubstitutesProteinPerMeal(t *testing.T) {
	req := domain.CalculationRequest{Goal: domain.GoalBuildMuscle, MealsPerDay: 4, WorkoutTime: domain.WorkoutEvening}
	got := Timing(req, domain.MacroSet{Protein: 160})
	assert.Contains(t, got.PreWorkout, "40g protein")
	assert.Contains(t, got.PostWorkout, "40g protein")
	assert.Equal(t, generalByTime[domain.WorkoutEvening], got.General)

	health := Timing(domain.CalculationRequest{Goal: domain.GoalOverallHealth, MealsPerDay: 3}, domain.MacroSet{Protein: 90})
	assert.Contains(t, health.PreWorkout, "30g protein")
	assert.Equal(t, generalByTime[domain.WorkoutUnspecified], health.General)
}

func TestMealPlanSumsToTotals(t *testing.T) {
	macros := domain.MacroSet{Protein: 151, Carbs: 253, Fat: 71}
	for meals := 3; meals <= 6; meals++ {
		plan := MealPlan(meals, 2257, macros)
		require.Len(t, plan, meals)

		var kcal int
		var sum domain.MacroSet
		for _, m := range plan {
			assert.NotEmpty(t, m.Name)
			kcal += m.Calories
			sum.Protein += m.Macros.Protein
			sum.Carbs += m.Macros.Carbs
			sum.Fat += m.Macros.Fat
		}
		assert.Equal(t, 2257, kcal)
		assert.Equal(t, macros, sum)
	}
}

func TestMealPlanRemainderOnLastMeal(t *testing.T) {
	plan := MealPlan(3, 2000, domain.MacroSet{Protein: 100, Carbs: 200, Fat: 70})
	assert.Equal(t, 666, plan[0].Calories)
	assert.Equal(t, 668, plan[2].Calories)
	assert.Equal(t, "Dinner", plan[2].Name)
}

func TestFoods(t *testing.T) {
	assert.Contains(t, Foods(domain.DietVegan), "Tempeh")
	assert.NotContains(t, Foods(domain.DietVegan), "Eggs")
	assert.Equal(t, Foods(domain.DietStandard), Foods("unknown"))

	list := Foods(domain.DietKeto)
	list[0] = "mutated"
	assert.NotEqual(t, "mutated", Foods(domain.DietKeto)[0])
}
