package domain

import (
	"slices"
	"strings"
	"time"
)

// Focus is the muscle-group label assigned to a training day.
type Focus string

const (
	FocusPush     Focus = "Push"
	FocusPull     Focus = "Pull"
	FocusLegs     Focus = "Legs"
	FocusUpper    Focus = "Upper"
	FocusLower    Focus = "Lower"
	FocusFullBody Focus = "Full Body"
	FocusMobility Focus = "Mobility"
	FocusRest     Focus = "Rest"
)

// Slug returns the catalog target tag for the focus ("Full Body" -> "full_body").
func (f Focus) Slug() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(f))), " ", "_")
}

// ParseFocus accepts a focus label or its slug ("Full Body", "full_body").
func ParseFocus(raw string) (Focus, bool) {
	slug := Focus(raw).Slug()
	for _, f := range []Focus{FocusPush, FocusPull, FocusLegs, FocusUpper, FocusLower, FocusFullBody, FocusMobility} {
		if f.Slug() == slug {
			return f, true
		}
	}
	return "", false
}

// IsRestLabel reports whether a focus label denotes a rest day. Matching is
// case-insensitive on the substrings "rest" and "off".
func IsRestLabel(label string) bool {
	l := strings.ToLower(label)
	return strings.Contains(l, "rest") || strings.Contains(l, "off")
}

// Equipment tags used in Exercise.Requires.
const (
	TagNone       = "none"
	TagDumbbell   = "dumbbell"
	TagBand       = "band"
	TagKettlebell = "kettlebell"
	TagBench      = "bench"
	TagBarbell    = "barbell"
	TagMachine    = "machine"
	TagCable      = "cable"
	TagPullupBar  = "pullup-bar"
	TagOutdoor    = "outdoor"
)

var equipmentTags = map[Equipment][]string{
	EquipmentMinimal: {TagNone},
	EquipmentBasic:   {TagNone, TagDumbbell, TagBand, TagKettlebell, TagBench},
	EquipmentOutdoor: {TagNone, TagBand, TagPullupBar, TagOutdoor},
}

// Allows reports whether every requirement is available in the context.
// The full-gym context allows everything.
func (e Equipment) Allows(requires []string) bool {
	if e == EquipmentFull {
		return true
	}
	tags, ok := equipmentTags[e]
	if !ok {
		tags = equipmentTags[EquipmentMinimal]
	}
	for _, req := range requires {
		if !slices.Contains(tags, req) {
			return false
		}
	}
	return true
}

// Permits reports whether an exercise of the given difficulty suits the
// experience level: beginners get beginner work only, intermediates also get
// intermediate work, advanced lifters get everything.
func (e Experience) Permits(difficulty string) bool {
	switch e {
	case ExperienceAdvanced:
		return true
	case ExperienceIntermediate:
		return difficulty != string(ExperienceAdvanced)
	default:
		return difficulty == string(ExperienceBeginner) || difficulty == ""
	}
}

// Exercise is a catalog node the training generator can draw from.
type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Difficulty  string    `json:"difficulty"`
	Targets     []string  `json:"targets"`
	Requires    []string  `json:"requires"`
	LastUpdated time.Time `json:"last_updated"`
}

// TargetsFocus reports whether the exercise trains the focus.
func (e Exercise) TargetsFocus(f Focus) bool {
	return slices.Contains(e.Targets, f.Slug())
}

// NormalizeTags trims, lowercases, dedupes and sorts tag lists.
func NormalizeTags(values []string) []string {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		clean := strings.ToLower(strings.TrimSpace(v))
		if clean == "" {
			continue
		}
		set[clean] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
