// Package domain defines the calculation model shared by the engine stages and
// the program service that wraps them.
package domain

// Variant selects which formula set serves a calculation.
type Variant string

const (
	VariantV1 Variant = "v1"
	VariantV2 Variant = "v2"
)

// Gender drives the BMR constant and the calorie floors.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Goal is the canonical training/nutrition goal.
type Goal string

const (
	GoalLoseFat             Goal = "lose_fat"
	GoalMaintain            Goal = "maintain"
	GoalBuildMuscle         Goal = "build_muscle"
	GoalImproveEndurance    Goal = "improve_endurance"
	GoalAthleticPerformance Goal = "athletic_performance"
	// GoalOverallHealth is the fallback for goals the normalizer cannot map.
	// It is treated like maintenance by every calculator.
	GoalOverallHealth Goal = "overall_health"
)

// Experience is the lifter's training age bucket.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// ActivityLevel describes daily non-exercise activity.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// SessionDuration buckets the time available per workout.
type SessionDuration string

const (
	DurationUnder30 SessionDuration = "<30"
	Duration30To45  SessionDuration = "30-45"
	Duration45To60  SessionDuration = "45-60"
	DurationOver60  SessionDuration = "60+"
)

// Minutes returns the nominal session length for the bucket.
func (d SessionDuration) Minutes() int {
	switch d {
	case DurationUnder30:
		return 25
	case Duration30To45:
		return 45
	case DurationOver60:
		return 75
	default:
		return 60
	}
}

// Equipment is the training environment.
type Equipment string

const (
	EquipmentMinimal Equipment = "minimal"
	EquipmentBasic   Equipment = "basic"
	EquipmentFull    Equipment = "full"
	EquipmentOutdoor Equipment = "outdoor"
)

// Preference is the preferred training style.
type Preference string

const (
	PreferenceStrength Preference = "strength"
	PreferenceCardio   Preference = "cardio"
	PreferenceMixed    Preference = "mixed"
	PreferenceHIIT     Preference = "hiit"
	PreferenceMobility Preference = "mobility"
)

// SleepBucket groups nightly sleep hours.
type SleepBucket string

const (
	SleepUnder5 SleepBucket = "<5"
	Sleep5To6   SleepBucket = "5-6"
	Sleep7To8   SleepBucket = "7-8"
	SleepOver8  SleepBucket = "9+"
)

// StressLevel is the self-reported stress level.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
)

// DietType is the dietary pattern the macro split has to respect.
type DietType string

const (
	DietStandard      DietType = "standard"
	DietVegetarian    DietType = "vegetarian"
	DietVegan         DietType = "vegan"
	DietKeto          DietType = "keto"
	DietPaleo         DietType = "paleo"
	DietMediterranean DietType = "mediterranean"
	DietLowCarb       DietType = "low_carb"
)

// WorkoutTime is when the user usually trains.
type WorkoutTime string

const (
	WorkoutMorning     WorkoutTime = "morning"
	WorkoutMidday      WorkoutTime = "midday"
	WorkoutEvening     WorkoutTime = "evening"
	WorkoutUnspecified WorkoutTime = "unspecified"
)

// ExerciseMode selects how exercise names are sourced for the weekly plan.
type ExerciseMode string

const (
	// ExerciseModeTemplate draws from fixed ordered lists and is reproducible.
	ExerciseModeTemplate ExerciseMode = "template"
	// ExerciseModeRandom samples the catalog pool. Output only repeats when
	// the request carries a Seed.
	ExerciseModeRandom ExerciseMode = "random"
)

// CalculationRequest is the normalized input to the engine.
type CalculationRequest struct {
	Variant            Variant         `json:"variant"`
	Gender             Gender          `json:"gender"`
	Age                int             `json:"age"`
	HeightCM           float64         `json:"height_cm"`
	WeightKG           float64         `json:"weight_kg"`
	Goal               Goal            `json:"goal"`
	Experience         Experience      `json:"experience_level"`
	DaysCommitted      int             `json:"days_committed"`
	SessionDuration    SessionDuration `json:"session_duration"`
	Equipment          Equipment       `json:"equipment_context"`
	Preference         Preference      `json:"workout_preference"`
	Activity           ActivityLevel   `json:"occupation_activity"`
	RecentExerciseDays int             `json:"recent_exercise_days"`
	Sleep              SleepBucket     `json:"sleep_bucket"`
	Stress             StressLevel     `json:"stress_level"`
	Diet               DietType        `json:"diet_type"`
	MealsPerDay        int             `json:"meals_per_day"`
	WorkoutTime        WorkoutTime     `json:"workout_time"`
	BodyFatPercent     *float64        `json:"body_fat_percent,omitempty"`
	MedicalFlag        bool            `json:"medical_flag"`
	MedicalNotes       string          `json:"medical_notes,omitempty"`
	ExerciseMode       ExerciseMode    `json:"exercise_mode"`
	Seed               *uint64         `json:"seed,omitempty"`
}

// BMI returns weight_kg / height_m². Zero when height is not positive.
func (r CalculationRequest) BMI() float64 {
	if r.HeightCM <= 0 {
		return 0
	}
	m := r.HeightCM / 100
	return r.WeightKG / (m * m)
}

// IsMale reports whether the male constants apply. Anything other than
// female uses the male constants.
func (r CalculationRequest) IsMale() bool {
	return r.Gender != GenderFemale
}

// Valid* helpers report enum membership for the validator.

func (v Variant) Valid() bool { return v == VariantV1 || v == VariantV2 }

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func (g Goal) Valid() bool {
	switch g {
	case GoalLoseFat, GoalMaintain, GoalBuildMuscle, GoalImproveEndurance, GoalAthleticPerformance, GoalOverallHealth:
		return true
	}
	return false
}

// PerformanceOriented reports goals that fuel training with carbohydrate.
func (g Goal) PerformanceOriented() bool {
	return g == GoalBuildMuscle || g == GoalImproveEndurance || g == GoalAthleticPerformance
}

func (e Experience) Valid() bool {
	return e == ExperienceBeginner || e == ExperienceIntermediate || e == ExperienceAdvanced
}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

func (d SessionDuration) Valid() bool {
	switch d {
	case DurationUnder30, Duration30To45, Duration45To60, DurationOver60:
		return true
	}
	return false
}

func (e Equipment) Valid() bool {
	switch e {
	case EquipmentMinimal, EquipmentBasic, EquipmentFull, EquipmentOutdoor:
		return true
	}
	return false
}

func (p Preference) Valid() bool {
	switch p {
	case PreferenceStrength, PreferenceCardio, PreferenceMixed, PreferenceHIIT, PreferenceMobility:
		return true
	}
	return false
}

func (s SleepBucket) Valid() bool {
	switch s {
	case SleepUnder5, Sleep5To6, Sleep7To8, SleepOver8:
		return true
	}
	return false
}

func (s StressLevel) Valid() bool {
	return s == StressLow || s == StressModerate || s == StressHigh
}

func (d DietType) Valid() bool {
	switch d {
	case DietStandard, DietVegetarian, DietVegan, DietKeto, DietPaleo, DietMediterranean, DietLowCarb:
		return true
	}
	return false
}

func (w WorkoutTime) Valid() bool {
	switch w {
	case WorkoutMorning, WorkoutMidday, WorkoutEvening, WorkoutUnspecified:
		return true
	}
	return false
}

func (m ExerciseMode) Valid() bool { return m == ExerciseModeTemplate || m == ExerciseModeRandom }
