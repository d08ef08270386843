package domain

// MetabolicProfile is derived once per calculation.
type MetabolicProfile struct {
	BMR            int     `json:"bmr"`
	ActivityFactor float64 `json:"activity_factor"`
	TDEE           int     `json:"tdee"`
}

// MacroSet holds daily macronutrient targets in grams.
type MacroSet struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Calories returns protein×4 + carbs×4 + fat×9.
func (m MacroSet) Calories() int {
	return m.Protein*4 + m.Carbs*4 + m.Fat*9
}

// ExerciseSlot is one prescribed exercise. Completed, TargetWeight and RIR
// are edited by the consuming UI; the engine only initialises them.
type ExerciseSlot struct {
	Name         string   `json:"name"`
	TargetSets   int      `json:"target_sets"`
	TargetReps   string   `json:"target_reps"`
	TargetWeight *float64 `json:"target_weight,omitempty"`
	RIR          *int     `json:"rir,omitempty"`
	Completed    bool     `json:"completed"`
}

// DayPlan is one calendar day of the weekly plan.
type DayPlan struct {
	DayName   string         `json:"day_name"`
	Focus     string         `json:"focus_label"`
	IsRest    bool           `json:"is_rest"`
	TotalSets int            `json:"total_sets"`
	Exercises []ExerciseSlot `json:"exercises"`
}

// WeeklyPlan always holds seven days starting with Sunday.
type WeeklyPlan []DayPlan

// NutrientTiming is goal-conditioned pre/post workout guidance.
type NutrientTiming struct {
	PreWorkout  string `json:"pre_workout"`
	PostWorkout string `json:"post_workout"`
	General     string `json:"general"`
}

// Meal is one entry of the daily meal plan.
type Meal struct {
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	Macros   MacroSet `json:"macros"`
}

// Result is the successful engine response. Optional fields are populated
// according to the variant that served the request.
type Result struct {
	Variant             Variant         `json:"variant"`
	BMR                 int             `json:"bmr"`
	TDEE                int             `json:"tdee"`
	ActivityFactor      float64         `json:"activityFactor"`
	TargetCalories      int             `json:"targetCalories"`
	Macros              MacroSet        `json:"macros"`
	WorkoutPlan         WeeklyPlan      `json:"workoutPlan"`
	WaterNeedsML        int             `json:"waterNeeds,omitempty"`
	MealFrequency       int             `json:"mealFrequency,omitempty"`
	MealPlan            []Meal          `json:"mealPlan,omitempty"`
	NutrientTiming      *NutrientTiming `json:"nutrientTiming,omitempty"`
	FoodRecommendations []string        `json:"foodRecommendations,omitempty"`
	RecoveryTips        []string        `json:"recoveryTips,omitempty"`
	Flags               FlagSet         `json:"flags"`
}
