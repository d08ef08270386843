package domain

import "slices"

// Flag is an advisory or blocking token attached to a calculation.
type Flag string

const (
	// FlagExtremeBodyMetrics is the only blocking flag.
	FlagExtremeBodyMetrics Flag = "extreme-body-metrics"

	FlagCaloricMinimumWarningFemale Flag = "caloric-minimum-warning-female"
	FlagCaloricMinimumWarningMale   Flag = "caloric-minimum-warning-male"
	FlagCaloricMinimumAppliedFemale Flag = "caloric-minimum-applied-female"
	FlagCaloricMinimumAppliedMale   Flag = "caloric-minimum-applied-male"
	FlagAbsoluteCalorieFloor        Flag = "absolute-calorie-floor-applied"
	FlagBodyCompositionAdjusted     Flag = "body-composition-adjusted"
	FlagGradualRampNeeded           Flag = "gradual-ramp-needed"
	FlagMedicalClearance            Flag = "medical-clearance"
	FlagSleepDeficit                Flag = "sleep-deficit"
	FlagHighStress                  Flag = "high-stress"
	FlagMacroFallback               Flag = "macro-fallback-applied"
	FlagMetabolicFallback           Flag = "metabolic-fallback-applied"
)

// Blocking reports whether the flag forces the calculation to fail.
func (f Flag) Blocking() bool { return f == FlagExtremeBodyMetrics }

// FlagSet is a sorted set of flags. The zero value is empty and ready to use.
type FlagSet []Flag

// Add inserts flags, keeping the set sorted and free of duplicates.
func (s *FlagSet) Add(flags ...Flag) {
	for _, f := range flags {
		idx, found := slices.BinarySearch(*s, f)
		if found {
			continue
		}
		*s = slices.Insert(*s, idx, f)
	}
}

// Merge adds every flag of other.
func (s *FlagSet) Merge(other FlagSet) { s.Add(other...) }

// Has reports membership.
func (s FlagSet) Has(f Flag) bool {
	_, found := slices.BinarySearch(s, f)
	return found
}

// Blocking returns the blocking flags in the set.
func (s FlagSet) Blocking() FlagSet {
	var out FlagSet
	for _, f := range s {
		if f.Blocking() {
			out = append(out, f)
		}
	}
	return out
}

// Strings returns the flag tokens.
func (s FlagSet) Strings() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = string(f)
	}
	return out
}
