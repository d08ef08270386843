// Package training builds the seven-day weekly plan: split selection,
// exercise sourcing, set volume and recovery modulation.
package training

import (
	"time"

	"example.com/fitplan/internal/domain"
)

// internalWeek is the order splits are laid out in before rotation.
var internalWeek = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

const (
	fb   = domain.FocusFullBody
	up   = domain.FocusUpper
	lo   = domain.FocusLower
	push = domain.FocusPush
	pull = domain.FocusPull
	legs = domain.FocusLegs
	mob  = domain.FocusMobility
	rest = domain.FocusRest
)

// splits maps committed days to the Monday-first focus pattern.
var splits = map[int][7]domain.Focus{
	1: {fb, rest, rest, rest, rest, rest, rest},
	2: {fb, rest, rest, fb, rest, rest, rest},
	3: {fb, rest, fb, rest, fb, rest, rest},
	4: {up, lo, rest, up, lo, rest, rest},
	5: {push, pull, legs, rest, up, lo, rest},
	6: {push, pull, legs, push, pull, legs, rest},
	7: {push, pull, legs, push, pull, legs, mob},
}

// beginnerFive swaps PPL for a hybrid full-body/upper/lower week.
var beginnerFive = [7]domain.Focus{up, lo, rest, fb, up, lo, rest}

// Split returns the Monday-first focus pattern for the committed days.
// Out-of-range day counts are clamped to 1..7.
func Split(days int, experience domain.Experience) [7]domain.Focus {
	days = min(max(days, 1), 7)
	if days == 5 && experience == domain.ExperienceBeginner {
		return beginnerFive
	}
	return splits[days]
}

// SundayFirst rotates a Monday-first week so Sunday is index 0.
func SundayFirst(week domain.WeeklyPlan) domain.WeeklyPlan {
	if len(week) != len(internalWeek) {
		return week
	}
	out := make(domain.WeeklyPlan, 0, len(week))
	out = append(out, week[len(week)-1])
	out = append(out, week[:len(week)-1]...)
	return out
}
