// Package validate checks a normalized CalculationRequest before any
// calculation runs and derives the advisory and blocking flags.
package validate

import (
	"fmt"
	"math"

	"example.com/fitplan/internal/domain"
)

const (
	MinAge = 13
	MaxAge = 120

	MinWeightKG = 30.0
	MinBMI      = 16.0
	MaxBMI      = 45.0

	// UnderweightBMI marks the fat-loss requests that predict an unsafe deficit.
	UnderweightBMI = 18.5

	// MaxRampGap is the largest tolerated jump from recent to committed days.
	MaxRampGap = 3
)

// Result is the validator verdict. IsValid is false when Errors is non-empty
// or a blocking flag is present.
type Result struct {
	IsValid bool
	Flags   domain.FlagSet
	Errors  []domain.FieldError
}

// Err converts the verdict into the error the engine surfaces: field errors
// take precedence over physiological rejection.
func (r Result) Err() error {
	if len(r.Errors) > 0 {
		return &domain.ValidationError{Fields: r.Errors}
	}
	if blocking := r.Flags.Blocking(); len(blocking) > 0 {
		return &domain.RejectionError{Flags: r.Flags}
	}
	return nil
}

// Request validates req. It never computes anything beyond BMI.
func Request(req domain.CalculationRequest) Result {
	res := Result{Flags: domain.FlagSet{}}
	fail := func(field, format string, args ...any) {
		res.Errors = append(res.Errors, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if req.Age < MinAge || req.Age > MaxAge {
		fail("age", "must be between %d and %d", MinAge, MaxAge)
	}
	if !positiveFinite(req.HeightCM) {
		fail("height", "must be a positive number")
	}
	if !positiveFinite(req.WeightKG) {
		fail("weight", "must be a positive number")
	}
	if req.DaysCommitted < 1 || req.DaysCommitted > 7 {
		fail("days_committed", "must be between 1 and 7")
	}
	if req.MealsPerDay < 3 || req.MealsPerDay > 6 {
		fail("meals_per_day", "must be between 3 and 6")
	}
	if req.RecentExerciseDays < 0 || req.RecentExerciseDays > 7 {
		fail("recent_exercise_days", "must be between 0 and 7")
	}
	if bf := req.BodyFatPercent; bf != nil && (math.IsNaN(*bf) || *bf < 0 || *bf > 70) {
		fail("body_fat", "must be between 0 and 70")
	}

	enums := []struct {
		field string
		value string
		ok    bool
	}{
		{"variant", string(req.Variant), req.Variant.Valid()},
		{"gender", string(req.Gender), req.Gender.Valid()},
		{"goal", string(req.Goal), req.Goal.Valid()},
		{"experience_level", string(req.Experience), req.Experience.Valid()},
		{"session_duration", string(req.SessionDuration), req.SessionDuration.Valid()},
		{"equipment_context", string(req.Equipment), req.Equipment.Valid()},
		{"workout_preference", string(req.Preference), req.Preference.Valid()},
		{"occupation_activity", string(req.Activity), req.Activity.Valid()},
		{"sleep", string(req.Sleep), req.Sleep.Valid()},
		{"stress_level", string(req.Stress), req.Stress.Valid()},
		{"diet_type", string(req.Diet), req.Diet.Valid()},
		{"workout_time", string(req.WorkoutTime), req.WorkoutTime.Valid()},
		{"exercise_mode", string(req.ExerciseMode), req.ExerciseMode.Valid()},
	}
	for _, e := range enums {
		if !e.ok {
			fail(e.field, "unsupported value %q", e.value)
		}
	}
	if req.Gender == domain.GenderOther && req.Variant == domain.VariantV1 {
		fail("gender", "%q requires variant %s", req.Gender, domain.VariantV2)
	}

	if len(res.Errors) > 0 {
		return res
	}

	bmi := req.BMI()
	if req.WeightKG < MinWeightKG || bmi < MinBMI || bmi > MaxBMI {
		res.Flags.Add(domain.FlagExtremeBodyMetrics)
	}
	if req.Goal == domain.GoalLoseFat && bmi < UnderweightBMI {
		if req.Gender == domain.GenderFemale {
			res.Flags.Add(domain.FlagCaloricMinimumWarningFemale)
		} else {
			res.Flags.Add(domain.FlagCaloricMinimumWarningMale)
		}
	}
	if req.DaysCommitted-req.RecentExerciseDays > MaxRampGap {
		res.Flags.Add(domain.FlagGradualRampNeeded)
	}
	if req.MedicalFlag {
		res.Flags.Add(domain.FlagMedicalClearance)
	}
	if req.Sleep == domain.SleepUnder5 {
		res.Flags.Add(domain.FlagSleepDeficit)
	}
	if req.Stress == domain.StressHigh {
		res.Flags.Add(domain.FlagHighStress)
	}

	res.IsValid = len(res.Flags.Blocking()) == 0
	return res
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
