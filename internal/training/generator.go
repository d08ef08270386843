package training

import "example.com/fitplan/internal/domain"

var repsByGoal = map[domain.Goal]string{
	domain.GoalLoseFat:             "12-15",
	domain.GoalBuildMuscle:         "8-12",
	domain.GoalImproveEndurance:    "15-20",
	domain.GoalAthleticPerformance: "5-8",
	domain.GoalMaintain:            "8-12",
	domain.GoalOverallHealth:       "8-12",
}

const (
	strengthReps = "4-6"
	mobilityReps = "30-60s"
)

type finisher struct {
	name string
	reps string
}

var finishers = map[domain.Preference]finisher{
	domain.PreferenceCardio:   {"Steady-State Cardio Finisher", "15-20 min"},
	domain.PreferenceHIIT:     {"HIIT Intervals (30s on / 30s off)", "8-10 rounds"},
	domain.PreferenceMobility: {"Cool-Down Mobility Flow", "5-10 min"},
}

// Generator assembles the weekly plan from a split, an exercise source and a
// volume strategy.
type Generator struct {
	Source ExerciseSource
	Volume Volume
}

// Week returns the seven-day plan, Sunday first.
func (g Generator) Week(req domain.CalculationRequest) domain.WeeklyPlan {
	split := Split(req.DaysCommitted, req.Experience)
	week := make(domain.WeeklyPlan, 0, len(internalWeek))
	for i, day := range internalWeek {
		week = append(week, g.day(req, day.String(), split[i]))
	}
	return SundayFirst(week)
}

func (g Generator) day(req domain.CalculationRequest, name string, focus domain.Focus) domain.DayPlan {
	plan := domain.DayPlan{
		DayName:   name,
		Focus:     string(focus),
		Exercises: []domain.ExerciseSlot{},
	}
	if domain.IsRestLabel(plan.Focus) {
		plan.IsRest = true
		return plan
	}

	names := g.Source.Select(focus, req)
	fin, hasFinisher := finishers[req.Preference]
	hasFinisher = hasFinisher && focus != domain.FocusMobility
	if hasFinisher {
		names = append(names, fin.name)
	}

	sets := g.Volume.Sets(req, focus, len(names))
	reps := Reps(req, focus)
	for i, set := range sets {
		slot := domain.ExerciseSlot{Name: names[i], TargetSets: set, TargetReps: reps}
		if hasFinisher && i == len(names)-1 {
			slot.TargetSets = min(set, finisherSets)
			slot.TargetReps = fin.reps
		}
		plan.Exercises = append(plan.Exercises, slot)
		plan.TotalSets += slot.TargetSets
	}
	return plan
}

// Reps returns the rep range for the day. Mobility work is timed; a
// strength preference overrides the goal range.
func Reps(req domain.CalculationRequest, focus domain.Focus) string {
	if focus == domain.FocusMobility {
		return mobilityReps
	}
	if req.Preference == domain.PreferenceStrength {
		return strengthReps
	}
	if r, ok := repsByGoal[req.Goal]; ok {
		return r
	}
	return repsByGoal[domain.GoalMaintain]
}
