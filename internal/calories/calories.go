// Package calories turns TDEE into a goal-adjusted, floor-safeguarded daily
// calorie target.
package calories

import (
	"math"

	"example.com/fitplan/internal/domain"
)

const (
	FemaleFatLossFloor = 1200
	MaleFatLossFloor   = 1500
	AbsoluteFloor      = 800

	// FallbackKcal replaces a target that cannot be computed.
	FallbackKcal = 1200

	// lowTDEEThreshold switches fat loss from a flat deficit to a 20% cut.
	lowTDEEThreshold = 1800
	lowTDEEFactor    = 0.8
)

var relativeDeltas = map[domain.Goal]float64{
	domain.GoalLoseFat:             -500,
	domain.GoalBuildMuscle:         250,
	domain.GoalImproveEndurance:    100,
	domain.GoalAthleticPerformance: 200,
	domain.GoalMaintain:            0,
	domain.GoalOverallHealth:       0,
}

// Strategy applies the goal adjustment to TDEE. Floors are applied by
// Resolve, not by the strategy.
type Strategy interface {
	Adjust(req domain.CalculationRequest, tdee int) (float64, domain.FlagSet)
}

// RelativeStrategy applies fixed per-goal deltas, a 20% cut for low-TDEE fat
// loss, and a ±10% body-composition correction.
type RelativeStrategy struct{}

func (RelativeStrategy) Adjust(req domain.CalculationRequest, tdee int) (float64, domain.FlagSet) {
	flags := domain.FlagSet{}

	target := float64(tdee) + relativeDeltas[req.Goal]
	if req.Goal == domain.GoalLoseFat && tdee < lowTDEEThreshold {
		target = float64(tdee) * lowTDEEFactor
	}

	if scale := BodyCompositionScale(req); scale != 1 {
		target *= scale
		flags.Add(domain.FlagBodyCompositionAdjusted)
	}
	return target, flags
}

// AbsoluteStrategy shifts TDEE by -500 (lose), +300 (gain) or 0.
type AbsoluteStrategy struct{}

func (AbsoluteStrategy) Adjust(req domain.CalculationRequest, tdee int) (float64, domain.FlagSet) {
	switch req.Goal {
	case domain.GoalLoseFat:
		return float64(tdee) - 500, domain.FlagSet{}
	case domain.GoalBuildMuscle:
		return float64(tdee) + 300, domain.FlagSet{}
	default:
		return float64(tdee), domain.FlagSet{}
	}
}

// ForVariant returns the strategy serving the variant.
func ForVariant(v domain.Variant) Strategy {
	if v == domain.VariantV2 {
		return AbsoluteStrategy{}
	}
	return RelativeStrategy{}
}

// EstimateBodyFat returns the Deurenberg estimate from BMI, age and sex.
func EstimateBodyFat(req domain.CalculationRequest) float64 {
	sex := 0.0
	if req.IsMale() {
		sex = 1
	}
	return 1.2*req.BMI() + 0.23*float64(req.Age) - 10.8*sex - 5.4
}

// BodyFat returns the supplied body-fat percentage or the estimate.
func BodyFat(req domain.CalculationRequest) float64 {
	if req.BodyFatPercent != nil {
		return *req.BodyFatPercent
	}
	return EstimateBodyFat(req)
}

// BodyCompositionScale returns 0.9 at very high body fat, 1.1 at very low
// body fat and 1 otherwise.
func BodyCompositionScale(req domain.CalculationRequest) float64 {
	high, low := 40.0, 15.0
	if req.IsMale() {
		high, low = 30, 8
	}
	bf := BodyFat(req)
	switch {
	case math.IsNaN(bf):
		return 1
	case bf >= high:
		return 0.9
	case bf < low:
		return 1.1
	}
	return 1
}

// FatLossFloor returns the gender-specific minimum for fat-loss goals.
func FatLossFloor(g domain.Gender) (int, domain.Flag) {
	if g == domain.GenderFemale {
		return FemaleFatLossFloor, domain.FlagCaloricMinimumAppliedFemale
	}
	return MaleFatLossFloor, domain.FlagCaloricMinimumAppliedMale
}

// Resolve computes the final integer target. A floor flag is recorded only
// when the floor actually raised the target.
func Resolve(s Strategy, req domain.CalculationRequest, profile domain.MetabolicProfile) (int, domain.FlagSet) {
	raw, flags := s.Adjust(req, profile.TDEE)
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		flags.Add(domain.FlagMetabolicFallback)
		raw = FallbackKcal
	}

	target := int(math.Round(raw))
	if req.Goal == domain.GoalLoseFat {
		floor, flag := FatLossFloor(req.Gender)
		if target < floor {
			target = floor
			flags.Add(flag)
		}
	}
	if target < AbsoluteFloor {
		target = AbsoluteFloor
		flags.Add(domain.FlagAbsoluteCalorieFloor)
	}
	return target, flags
}
