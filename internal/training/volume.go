package training

import (
	"math"

	"example.com/fitplan/internal/domain"
)

const (
	setsPerExercise  = 3
	mobilitySets     = 2
	finisherSets     = 1
	recoveryFraction = 0.9
)

// sessionCaps is the per-day set ceiling by session length.
var sessionCaps = map[domain.SessionDuration]int{
	domain.DurationUnder30: 6,
	domain.Duration30To45:  12,
	domain.Duration45To60:  18,
	domain.DurationOver60:  24,
}

// Recovery advisories appended when modulation applies.
const (
	TipSleep  = "Sleep is limiting recovery: aim for 7-9 hours with a fixed bedtime and a dark, cool room. Volume has been reduced by 10% this week."
	TipStress = "Stress is high: keep sessions at the planned effort, add a 10-minute walk or breathing practice on rest days, and stop sets 2-3 reps short of failure. Volume has been reduced by 10% this week."
)

// Volume assigns sets to a day's exercises. The returned slice is parallel
// to the exercise list; it may be shorter when the day's budget cannot give
// every exercise at least one set.
type Volume interface {
	Sets(req domain.CalculationRequest, focus domain.Focus, exercises int) []int
}

// FixedVolume prescribes three sets per exercise, two on mobility days.
type FixedVolume struct{}

func (FixedVolume) Sets(_ domain.CalculationRequest, focus domain.Focus, exercises int) []int {
	per := setsPerExercise
	if focus == domain.FocusMobility {
		per = mobilitySets
	}
	out := make([]int, exercises)
	for i := range out {
		out[i] = per
	}
	return out
}

// CappedVolume spreads the session-duration set cap across the day's
// exercises, front-loading any remainder. High stress or the lowest sleep
// bucket shrinks the cap by 10%.
type CappedVolume struct{}

func (CappedVolume) Sets(req domain.CalculationRequest, _ domain.Focus, exercises int) []int {
	budget := DayCap(req)
	n := min(exercises, budget)
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = budget / n
		if i < budget%n {
			out[i]++
		}
	}
	return out
}

// DayCap returns the per-day set ceiling after recovery modulation.
func DayCap(req domain.CalculationRequest) int {
	c, ok := sessionCaps[req.SessionDuration]
	if !ok {
		c = sessionCaps[domain.Duration45To60]
	}
	if NeedsRecovery(req) {
		c = int(math.Round(float64(c) * recoveryFraction))
	}
	return c
}

// NeedsRecovery reports whether stress or sleep calls for reduced volume.
func NeedsRecovery(req domain.CalculationRequest) bool {
	return req.Stress == domain.StressHigh || req.Sleep == domain.SleepUnder5
}

// RecoveryTips returns the advisories for the request, one per cause.
func RecoveryTips(req domain.CalculationRequest) []string {
	var tips []string
	if req.Sleep == domain.SleepUnder5 {
		tips = append(tips, TipSleep)
	}
	if req.Stress == domain.StressHigh {
		tips = append(tips, TipStress)
	}
	return tips
}

// ForVariant returns the volume strategy serving the variant.
func ForVariant(v domain.Variant) Volume {
	if v == domain.VariantV2 {
		return CappedVolume{}
	}
	return FixedVolume{}
}
