package normalize

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/fitplan/internal/domain"
)

func TestNormalizeConvertsImperialUnits(t *testing.T) {
	req := Normalize(Answers{
		Gender:       "M",
		Age:          30,
		Height:       5,
		HeightUnit:   "ft",
		HeightInches: 10,
		Weight:       165,
		WeightUnit:   "lbs",
	}, domain.VariantV1)

	assert.Equal(t, domain.GenderMale, req.Gender)
	assert.InDelta(t, 177.8, req.HeightCM, 0.01)
	assert.InDelta(t, 74.84, req.WeightKG, 0.01)
}

func TestNormalizeKeepsMetricByDefault(t *testing.T) {
	req := Normalize(Answers{Height: 175, Weight: 75}, domain.VariantV1)
	assert.Equal(t, 175.0, req.HeightCM)
	assert.Equal(t, 75.0, req.WeightKG)

	assert.InDelta(t, 182.0, HeightCM(1.82, "m", 0), 0.001)
	assert.InDelta(t, 63.5, WeightKG(10, "stone"), 0.01)
}

func TestNormalizeGoalSynonyms(t *testing.T) {
	cases := map[string]domain.Goal{
		"gain":                 domain.GoalBuildMuscle,
		"Gain Muscle":          domain.GoalBuildMuscle,
		"build_muscle":         domain.GoalBuildMuscle,
		"LOSE-WEIGHT":          domain.GoalLoseFat,
		"lose_fat":             domain.GoalLoseFat,
		"maintenance":          domain.GoalMaintain,
		"improve_endurance":    domain.GoalImproveEndurance,
		"athletic performance": domain.GoalAthleticPerformance,
		"become an astronaut":  domain.GoalOverallHealth,
		"":                     domain.GoalOverallHealth,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			got := Normalize(Answers{Goal: raw}, domain.VariantV1).Goal
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalizeFallbackDefaults(t *testing.T) {
	req := Normalize(Answers{
		Gender:     "prefer not to say",
		Activity:   "I walk my dog sometimes",
		Experience: "??",
		Equipment:  "spaceship",
		Preference: "chess",
		Stress:     "meh",
		Diet:       "carnivore-ish",
	}, domain.Variant("bogus"))

	assert.Equal(t, domain.VariantV1, req.Variant)
	assert.Equal(t, domain.GenderOther, req.Gender)
	assert.Equal(t, domain.ActivitySedentary, req.Activity)
	assert.Equal(t, domain.ExperienceBeginner, req.Experience)
	assert.Equal(t, domain.EquipmentMinimal, req.Equipment)
	assert.Equal(t, domain.PreferenceMixed, req.Preference)
	assert.Equal(t, domain.StressModerate, req.Stress)
	assert.Equal(t, domain.DietStandard, req.Diet)
	assert.Equal(t, domain.Sleep7To8, req.Sleep)
	assert.Equal(t, domain.Duration45To60, req.SessionDuration)
	assert.Equal(t, domain.WorkoutUnspecified, req.WorkoutTime)
	assert.Equal(t, domain.ExerciseModeTemplate, req.ExerciseMode)
	assert.Equal(t, 3, req.MealsPerDay)
	assert.Nil(t, req.BodyFatPercent)
}

func TestNormalizeVariantDefault(t *testing.T) {
	assert.Equal(t, domain.VariantV2, Normalize(Answers{}, domain.VariantV2).Variant)
	assert.Equal(t, domain.VariantV1, Normalize(Answers{Variant: "v1"}, domain.VariantV2).Variant)
}

func TestBucketsAndRanges(t *testing.T) {
	assert.Equal(t, 0, RecentExerciseDays("none"))
	assert.Equal(t, 2, RecentExerciseDays("1-2"))
	assert.Equal(t, 4, RecentExerciseDays("3-4 days"))
	assert.Equal(t, 7, RecentExerciseDays("daily"))
	assert.Equal(t, 3, RecentExerciseDays("3"))

	assert.Equal(t, domain.SleepUnder5, Sleep("4"))
	assert.Equal(t, domain.SleepUnder5, Sleep("<5 hours"))
	assert.Equal(t, domain.Sleep5To6, Sleep("5-6"))
	assert.Equal(t, domain.SleepOver8, Sleep("9+"))
	assert.Equal(t, domain.SleepUnder5, Sleep("4 hours"))
	assert.Equal(t, domain.SleepUnder5, Sleep("4h"))
	assert.Equal(t, domain.Sleep5To6, Sleep("6 hours"))
	assert.Equal(t, domain.Sleep7To8, Sleep("7.5 hrs"))
	assert.Equal(t, domain.SleepOver8, Sleep("9 hours"))

	assert.Equal(t, domain.DurationUnder30, SessionDuration("20"))
	assert.Equal(t, domain.Duration30To45, SessionDuration("30-45 min"))
	assert.Equal(t, domain.DurationOver60, SessionDuration("90"))
	assert.Equal(t, domain.DurationUnder30, SessionDuration("20 min"))
	assert.Equal(t, domain.Duration30To45, SessionDuration("30 minutes"))
	assert.Equal(t, domain.DurationOver60, SessionDuration("90 min"))
	assert.Equal(t, domain.Duration45To60, SessionDuration("45-60 mins"))

	bf := BodyFatPercent("15-20%")
	require.NotNil(t, bf)
	assert.Equal(t, 15.0, *bf)
	assert.Nil(t, BodyFatPercent("not sure"))
}

func TestNormalizeMedicalNotes(t *testing.T) {
	assert.False(t, Normalize(Answers{MedicalNotes: "none"}, domain.VariantV1).MedicalFlag)
	assert.True(t, Normalize(Answers{MedicalNotes: "type 1 diabetes"}, domain.VariantV1).MedicalFlag)
}

func TestAnswersDecodeFlexibleFields(t *testing.T) {
	var a Answers
	err := json.Unmarshal([]byte(`{"recent_exercise_days": 4, "body_fat": "18-22%", "sleep": 6.5, "session_duration": "60+"}`), &a)
	require.NoError(t, err)
	assert.Equal(t, Flex("4"), a.RecentExerciseDays)
	assert.Equal(t, Flex("18-22%"), a.BodyFat)
	assert.Equal(t, Flex("6.5"), a.Sleep)

	var fromTOML Answers
	_, err = toml.Decode("recent_exercise_days = 5\nbody_fat = 21.5\ngoal = \"gain\"\n", &fromTOML)
	require.NoError(t, err)
	assert.Equal(t, Flex("5"), fromTOML.RecentExerciseDays)
	assert.Equal(t, Flex("21.5"), fromTOML.BodyFat)
	assert.Equal(t, "gain", fromTOML.Goal)
}
