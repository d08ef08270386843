package training

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/fitplan/internal/domain"
)

type stubPool []domain.Exercise

func (p stubPool) Exercises() []domain.Exercise { return p }

// fixturePool holds, per focus, four beginner, one intermediate and one
// advanced bodyweight movement plus two dumbbell movements.
func fixturePool() stubPool {
	focuses := []domain.Focus{
		domain.FocusPush, domain.FocusPull, domain.FocusLegs, domain.FocusUpper,
		domain.FocusLower, domain.FocusFullBody, domain.FocusMobility,
	}
	levels := []string{"beginner", "beginner", "beginner", "beginner", "intermediate", "advanced"}
	var pool stubPool
	for _, f := range focuses {
		for i, lvl := range levels {
			pool = append(pool, domain.Exercise{
				ID:         fmt.Sprintf("%s-bw-%d", f.Slug(), i),
				Name:       fmt.Sprintf("%s bodyweight %d", f, i),
				Difficulty: lvl,
				Targets:    []string{f.Slug()},
				Requires:   []string{domain.TagNone},
			})
		}
		for i := 0; i < 2; i++ {
			pool = append(pool, domain.Exercise{
				ID:         fmt.Sprintf("%s-db-%d", f.Slug(), i),
				Name:       fmt.Sprintf("%s dumbbell %d", f, i),
				Difficulty: "beginner",
				Targets:    []string{f.Slug()},
				Requires:   []string{domain.TagDumbbell},
			})
		}
	}
	return pool
}

func baseRequest() domain.CalculationRequest {
	return domain.CalculationRequest{
		Goal:            domain.GoalBuildMuscle,
		Experience:      domain.ExperienceIntermediate,
		DaysCommitted:   4,
		SessionDuration: domain.Duration45To60,
		Equipment:       domain.EquipmentMinimal,
		Preference:      domain.PreferenceMixed,
		Sleep:           domain.Sleep7To8,
		Stress:          domain.StressModerate,
	}
}

func focusLabels(week domain.WeeklyPlan) []string {
	out := make([]string, len(week))
	for i, d := range week {
		out[i] = d.Focus
	}
	return out
}

func TestWeekStartsOnSunday(t *testing.T) {
	g := Generator{Source: TemplateExerciseSource{Pool: fixturePool()}, Volume: FixedVolume{}}
	for days := 1; days <= 7; days++ {
		req := baseRequest()
		req.DaysCommitted = days
		week := g.Week(req)
		require.Len(t, week, 7)
		assert.Equal(t, "Sunday", week[0].DayName)
		assert.Equal(t, "Monday", week[1].DayName)
		assert.Equal(t, "Saturday", week[6].DayName)
	}
}

func TestSixDaySplitIsPPLTwice(t *testing.T) {
	g := Generator{Source: TemplateExerciseSource{Pool: fixturePool()}, Volume: FixedVolume{}}
	req := baseRequest()
	req.DaysCommitted = 6
	week := g.Week(req)

	assert.Equal(t, []string{"Rest", "Push", "Pull", "Legs", "Push", "Pull", "Legs"}, focusLabels(week))
	rest := 0
	for _, d := range week {
		if d.IsRest {
			rest++
		}
	}
	assert.Equal(t, 1, rest)
}

func TestSplitTable(t *testing.T) {
	assert.Equal(t, [7]domain.Focus{fb, rest, fb, rest, fb, rest, rest}, Split(3, domain.ExperienceAdvanced))
	assert.Equal(t, beginnerFive, Split(5, domain.ExperienceBeginner))
	assert.Equal(t, [7]domain.Focus{push, pull, legs, rest, up, lo, rest}, Split(5, domain.ExperienceIntermediate))
	assert.Equal(t, mob, Split(7, domain.ExperienceAdvanced)[6])
	assert.Equal(t, Split(1, domain.ExperienceBeginner), Split(0, domain.ExperienceBeginner))
	assert.Equal(t, Split(7, domain.ExperienceBeginner), Split(12, domain.ExperienceBeginner))
}

func TestRestDaysAreEmpty(t *testing.T) {
	g := Generator{Source: TemplateExerciseSource{Pool: fixturePool()}, Volume: CappedVolume{}}
	for days := 1; days <= 7; days++ {
		req := baseRequest()
		req.DaysCommitted = days
		for _, d := range g.Week(req) {
			if domain.IsRestLabel(d.Focus) {
				assert.True(t, d.IsRest)
				assert.NotNil(t, d.Exercises)
				assert.Empty(t, d.Exercises)
				assert.Zero(t, d.TotalSets)
			} else {
				assert.NotEmpty(t, d.Exercises, "%s %s", d.DayName, d.Focus)
			}
		}
	}
}

func TestTemplateSourceCounts(t *testing.T) {
	src := TemplateExerciseSource{Pool: fixturePool()}
	for exp, want := range map[domain.Experience]int{
		domain.ExperienceBeginner:     3,
		domain.ExperienceIntermediate: 4,
		domain.ExperienceAdvanced:     5,
	} {
		req := baseRequest()
		req.Experience = exp
		assert.Len(t, src.Select(domain.FocusPush, req), want, exp)
	}
}

func TestTemplateSourceRespectsEquipmentAndOrder(t *testing.T) {
	src := TemplateExerciseSource{Pool: fixturePool()}
	req := baseRequest()
	req.Experience = domain.ExperienceBeginner

	minimal := src.Select(domain.FocusLegs, req)
	assert.Equal(t, []string{"Legs bodyweight 0", "Legs bodyweight 1", "Legs bodyweight 2"}, minimal)

	req.Equipment = domain.EquipmentBasic
	basic := src.Select(domain.FocusLegs, req)
	assert.Equal(t, []string{"Legs dumbbell 0", "Legs dumbbell 1", "Legs bodyweight 0"}, basic)
	assert.Equal(t, basic, src.Select(domain.FocusLegs, req))
}

func TestTemplateSourceBeginnerSkipsAdvanced(t *testing.T) {
	src := TemplateExerciseSource{Pool: fixturePool()}
	req := baseRequest()
	req.Experience = domain.ExperienceBeginner
	for _, name := range src.Select(domain.FocusPull, req) {
		assert.NotEqual(t, "Pull bodyweight 5", name)
	}
}

func TestRandomSourceSeedIsReproducible(t *testing.T) {
	req := baseRequest()
	req.Experience = domain.ExperienceAdvanced

	a := NewSeededExerciseSource(fixturePool(), 42)
	b := NewSeededExerciseSource(fixturePool(), 42)
	for _, f := range []domain.Focus{domain.FocusPush, domain.FocusPull, domain.FocusLegs} {
		got := a.Select(f, req)
		assert.Equal(t, got, b.Select(f, req))
		assert.GreaterOrEqual(t, len(got), 5)
		assert.LessOrEqual(t, len(got), 6)
	}
}

func TestRandomSourceCountsWithinRange(t *testing.T) {
	src := NewRandomPoolExerciseSource(fixturePool(), nil)
	req := baseRequest()
	req.Experience = domain.ExperienceBeginner
	for i := 0; i < 50; i++ {
		got := src.Select(domain.FocusFullBody, req)
		assert.GreaterOrEqual(t, len(got), 3)
		assert.LessOrEqual(t, len(got), 4)
	}
}

func TestFixedVolume(t *testing.T) {
	assert.Equal(t, []int{3, 3, 3}, FixedVolume{}.Sets(baseRequest(), domain.FocusPush, 3))
	assert.Equal(t, []int{2, 2}, FixedVolume{}.Sets(baseRequest(), domain.FocusMobility, 2))
}

func TestCappedVolumeDistributesCap(t *testing.T) {
	req := baseRequest()
	assert.Equal(t, []int{5, 5, 4, 4}, CappedVolume{}.Sets(req, domain.FocusPush, 4))

	req.SessionDuration = domain.DurationUnder30
	assert.Equal(t, []int{2, 1, 1, 1, 1}, CappedVolume{}.Sets(req, domain.FocusPush, 5))

	req.Stress = domain.StressHigh
	assert.Equal(t, 5, DayCap(req))
	assert.Len(t, CappedVolume{}.Sets(req, domain.FocusPush, 6), 5)
}

func TestDayCapRecovery(t *testing.T) {
	tests := []struct {
		duration domain.SessionDuration
		normal   int
		reduced  int
	}{
		{domain.DurationUnder30, 6, 5},
		{domain.Duration30To45, 12, 11},
		{domain.Duration45To60, 18, 16},
		{domain.DurationOver60, 24, 22},
	}
	for _, tt := range tests {
		req := baseRequest()
		req.SessionDuration = tt.duration
		assert.Equal(t, tt.normal, DayCap(req))
		req.Sleep = domain.SleepUnder5
		assert.Equal(t, tt.reduced, DayCap(req))
	}
}

func TestRecoveryTips(t *testing.T) {
	req := baseRequest()
	assert.Empty(t, RecoveryTips(req))
	req.Sleep = domain.SleepUnder5
	req.Stress = domain.StressHigh
	assert.Equal(t, []string{TipSleep, TipStress}, RecoveryTips(req))
}

func TestCappedWeekNeverExceedsCap(t *testing.T) {
	g := Generator{Source: TemplateExerciseSource{Pool: fixturePool()}, Volume: CappedVolume{}}
	for _, pref := range []domain.Preference{domain.PreferenceStrength, domain.PreferenceHIIT, domain.PreferenceCardio} {
		for _, dur := range []domain.SessionDuration{domain.DurationUnder30, domain.DurationOver60} {
			req := baseRequest()
			req.DaysCommitted = 7
			req.Experience = domain.ExperienceAdvanced
			req.Preference = pref
			req.SessionDuration = dur
			for _, d := range g.Week(req) {
				assert.LessOrEqual(t, d.TotalSets, DayCap(req))
			}
		}
	}
}

func TestReps(t *testing.T) {
	req := baseRequest()
	req.Goal = domain.GoalLoseFat
	assert.Equal(t, "12-15", Reps(req, domain.FocusPush))
	req.Goal = domain.GoalAthleticPerformance
	assert.Equal(t, "5-8", Reps(req, domain.FocusPush))
	req.Preference = domain.PreferenceStrength
	assert.Equal(t, "4-6", Reps(req, domain.FocusPush))
	assert.Equal(t, "30-60s", Reps(req, domain.FocusMobility))
}

func TestFinisherAppendedForConditioningPreferences(t *testing.T) {
	g := Generator{Source: TemplateExerciseSource{Pool: fixturePool()}, Volume: FixedVolume{}}
	req := baseRequest()
	req.Preference = domain.PreferenceHIIT
	req.DaysCommitted = 7
	week := g.Week(req)

	monday := week[1]
	last := monday.Exercises[len(monday.Exercises)-1]
	assert.Equal(t, "HIIT Intervals (30s on / 30s off)", last.Name)
	assert.Equal(t, 1, last.TargetSets)
	assert.Equal(t, 4*3+1, monday.TotalSets)

	sunday := week[0]
	assert.Equal(t, "Mobility", sunday.Focus)
	for _, ex := range sunday.Exercises {
		assert.NotEqual(t, "HIIT Intervals (30s on / 30s off)", ex.Name)
		assert.Equal(t, 2, ex.TargetSets)
	}
}
