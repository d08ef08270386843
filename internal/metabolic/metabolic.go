// Package metabolic derives BMR, the activity factor and TDEE.
package metabolic

import (
	"math"

	"example.com/fitplan/internal/domain"
)

// FallbackKcal replaces any BMR or TDEE that comes out non-positive or NaN.
const FallbackKcal = 1200

// activityFactors is the v1 lookup keyed by activity bucket. The factors
// already include the thermic effect of food.
var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// occupationFactors is the v2 base factor before the exercise bonus.
var occupationFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.3,
	domain.ActivityModerate:   1.4,
	domain.ActivityActive:     1.5,
	domain.ActivityVeryActive: 1.6,
}

// Strategy resolves the activity factor applied to BMR.
type Strategy interface {
	ActivityFactor(req domain.CalculationRequest) float64
}

// TableStrategy reads the factor straight from the activity bucket table.
type TableStrategy struct{}

func (TableStrategy) ActivityFactor(req domain.CalculationRequest) float64 {
	if f, ok := activityFactors[req.Activity]; ok {
		return f
	}
	return activityFactors[domain.ActivitySedentary]
}

// CompositeStrategy adds an exercise-frequency bonus to an occupation base:
// +0.10 at six or more recent training days, +0.05 at four or more.
type CompositeStrategy struct{}

func (CompositeStrategy) ActivityFactor(req domain.CalculationRequest) float64 {
	base, ok := occupationFactors[req.Activity]
	if !ok {
		base = occupationFactors[domain.ActivitySedentary]
	}
	var bonus float64
	switch {
	case req.RecentExerciseDays >= 6:
		bonus = 0.10
	case req.RecentExerciseDays >= 4:
		bonus = 0.05
	}
	return math.Round((base+bonus)*1000) / 1000
}

// ForVariant returns the strategy serving the variant.
func ForVariant(v domain.Variant) Strategy {
	if v == domain.VariantV2 {
		return CompositeStrategy{}
	}
	return TableStrategy{}
}

// BMR returns the rounded Mifflin-St Jeor estimate. Every gender other than
// female takes the male constant.
func BMR(req domain.CalculationRequest) float64 {
	bmr := 10*req.WeightKG + 6.25*req.HeightCM - 5*float64(req.Age)
	if req.IsMale() {
		bmr += 5
	} else {
		bmr -= 161
	}
	return math.Round(bmr)
}

// Calculate builds the metabolic profile. TDEE is derived from the rounded
// BMR. The returned flags carry metabolic-fallback-applied when a safe
// constant replaced a computed value.
func Calculate(s Strategy, req domain.CalculationRequest) (domain.MetabolicProfile, domain.FlagSet) {
	flags := domain.FlagSet{}

	bmr := BMR(req)
	if !usable(bmr) {
		bmr = FallbackKcal
		flags.Add(domain.FlagMetabolicFallback)
	}

	factor := s.ActivityFactor(req)
	if !usable(factor) || factor < 1 {
		factor = activityFactors[domain.ActivitySedentary]
		flags.Add(domain.FlagMetabolicFallback)
	}

	tdee := math.Round(bmr * factor)
	if !usable(tdee) {
		tdee = FallbackKcal
		flags.Add(domain.FlagMetabolicFallback)
	}

	return domain.MetabolicProfile{
		BMR:            int(bmr),
		ActivityFactor: factor,
		TDEE:           int(tdee),
	}, flags
}

func usable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
