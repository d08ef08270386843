package calories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"example.com/fitplan/internal/domain"
)

func req(gender domain.Gender, age int, height, weight float64, goal domain.Goal) domain.CalculationRequest {
	return domain.CalculationRequest{Gender: gender, Age: age, HeightCM: height, WeightKG: weight, Goal: goal}
}

func ptr(v float64) *float64 { return &v }

func TestRelativeDeltas(t *testing.T) {
	tests := []struct {
		goal domain.Goal
		want int
	}{
		{domain.GoalLoseFat, 1921},
		{domain.GoalBuildMuscle, 2671},
		{domain.GoalImproveEndurance, 2521},
		{domain.GoalAthleticPerformance, 2621},
		{domain.GoalMaintain, 2421},
		{domain.GoalOverallHealth, 2421},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			// BMI 21.9, estimated body fat ~17%: no composition correction.
			r := req(domain.GenderMale, 30, 185, 75, tt.goal)
			got, flags := Resolve(RelativeStrategy{}, r, domain.MetabolicProfile{BMR: 1761, TDEE: 2421})
			assert.Equal(t, tt.want, got)
			assert.Empty(t, flags)
		})
	}
}

func TestRelativeLowTDEEUsesPercentageCut(t *testing.T) {
	r := req(domain.GenderMale, 40, 175, 70, domain.GoalLoseFat)
	r.BodyFatPercent = ptr(20)
	got, _ := RelativeStrategy{}.Adjust(r, 1750)
	assert.InDelta(t, 1400, got, 0.001)
}

func TestBodyCompositionScale(t *testing.T) {
	tests := []struct {
		name   string
		gender domain.Gender
		bf     float64
		want   float64
	}{
		{"male high", domain.GenderMale, 30, 0.9},
		{"male normal", domain.GenderMale, 18, 1},
		{"male low", domain.GenderMale, 7.9, 1.1},
		{"female high", domain.GenderFemale, 40, 0.9},
		{"female normal", domain.GenderFemale, 25, 1},
		{"female low", domain.GenderFemale, 14, 1.1},
		{"other follows male", domain.GenderOther, 31, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := req(tt.gender, 30, 170, 70, domain.GoalMaintain)
			r.BodyFatPercent = ptr(tt.bf)
			assert.Equal(t, tt.want, BodyCompositionScale(r))
		})
	}
}

func TestEstimateBodyFat(t *testing.T) {
	// BMI 30.86: 1.2*30.86 + 0.23*50 - 10.8 - 5.4 = 32.33
	r := req(domain.GenderMale, 50, 180, 100, domain.GoalMaintain)
	assert.InDelta(t, 32.33, EstimateBodyFat(r), 0.01)
	assert.Equal(t, 0.9, BodyCompositionScale(r))

	got, flags := Resolve(RelativeStrategy{}, r, domain.MetabolicProfile{TDEE: 2800})
	assert.Equal(t, 2520, got)
	assert.True(t, flags.Has(domain.FlagBodyCompositionAdjusted))
}

func TestAbsoluteShifts(t *testing.T) {
	p := domain.MetabolicProfile{TDEE: 2500}
	s := AbsoluteStrategy{}
	lose, _ := Resolve(s, req(domain.GenderMale, 30, 180, 80, domain.GoalLoseFat), p)
	gain, _ := Resolve(s, req(domain.GenderMale, 30, 180, 80, domain.GoalBuildMuscle), p)
	endurance, _ := Resolve(s, req(domain.GenderMale, 30, 180, 80, domain.GoalImproveEndurance), p)
	assert.Equal(t, 2000, lose)
	assert.Equal(t, 2800, gain)
	assert.Equal(t, 2500, endurance)
}

func TestFemaleFatLossFloor(t *testing.T) {
	// BMR 1164, sedentary TDEE 1397, 20% cut -> 1118.
	r := req(domain.GenderFemale, 25, 160, 45, domain.GoalLoseFat)
	got, flags := Resolve(RelativeStrategy{}, r, domain.MetabolicProfile{BMR: 1164, TDEE: 1397})
	assert.Equal(t, FemaleFatLossFloor, got)
	assert.True(t, flags.Has(domain.FlagCaloricMinimumAppliedFemale))
	assert.False(t, flags.Has(domain.FlagCaloricMinimumAppliedMale))
}

func TestMaleFatLossFloorOnlyWhenTriggered(t *testing.T) {
	r := req(domain.GenderMale, 30, 175, 70, domain.GoalLoseFat)
	r.BodyFatPercent = ptr(15)

	got, flags := Resolve(AbsoluteStrategy{}, r, domain.MetabolicProfile{TDEE: 1900})
	assert.Equal(t, MaleFatLossFloor, got)
	assert.True(t, flags.Has(domain.FlagCaloricMinimumAppliedMale))

	got, flags = Resolve(AbsoluteStrategy{}, r, domain.MetabolicProfile{TDEE: 2000})
	assert.Equal(t, 1500, got)
	assert.False(t, flags.Has(domain.FlagCaloricMinimumAppliedMale))
}

func TestAbsoluteFloorAnyGoal(t *testing.T) {
	r := req(domain.GenderFemale, 80, 150, 35, domain.GoalMaintain)
	got, flags := Resolve(AbsoluteStrategy{}, r, domain.MetabolicProfile{TDEE: 700})
	assert.Equal(t, AbsoluteFloor, got)
	assert.True(t, flags.Has(domain.FlagAbsoluteCalorieFloor))
}
