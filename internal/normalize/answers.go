// Package normalize turns raw questionnaire answers into a canonical
// CalculationRequest: metric units and a fixed enum vocabulary.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Answers is the raw questionnaire payload. Enum-like fields are free text;
// units default to metric when omitted.
type Answers struct {
	Variant            string  `json:"variant,omitempty" toml:"variant"`
	Gender             string  `json:"gender" toml:"gender"`
	Age                int     `json:"age" toml:"age"`
	Height             float64 `json:"height" toml:"height"`
	HeightUnit         string  `json:"height_unit,omitempty" toml:"height_unit"`
	HeightInches       float64 `json:"height_inches,omitempty" toml:"height_inches"`
	Weight             float64 `json:"weight" toml:"weight"`
	WeightUnit         string  `json:"weight_unit,omitempty" toml:"weight_unit"`
	Goal               string  `json:"goal" toml:"goal"`
	Experience         string  `json:"experience_level" toml:"experience_level"`
	DaysCommitted      int     `json:"days_committed" toml:"days_committed"`
	SessionDuration    Flex    `json:"session_duration,omitempty" toml:"session_duration"`
	Equipment          string  `json:"equipment_context,omitempty" toml:"equipment_context"`
	Preference         string  `json:"workout_preference,omitempty" toml:"workout_preference"`
	Activity           string  `json:"occupation_activity,omitempty" toml:"occupation_activity"`
	RecentExerciseDays Flex    `json:"recent_exercise_days,omitempty" toml:"recent_exercise_days"`
	Sleep              Flex    `json:"sleep,omitempty" toml:"sleep"`
	Stress             string  `json:"stress_level,omitempty" toml:"stress_level"`
	Diet               string  `json:"diet_type,omitempty" toml:"diet_type"`
	MealsPerDay        int     `json:"meals_per_day,omitempty" toml:"meals_per_day"`
	WorkoutTime        string  `json:"workout_time,omitempty" toml:"workout_time"`
	BodyFat            Flex    `json:"body_fat,omitempty" toml:"body_fat"`
	MedicalFlag        bool    `json:"medical_flag,omitempty" toml:"medical_flag"`
	MedicalNotes       string  `json:"medical_notes,omitempty" toml:"medical_notes"`
	ExerciseMode       string  `json:"exercise_mode,omitempty" toml:"exercise_mode"`
	Seed               *uint64 `json:"seed,omitempty" toml:"seed"`
}

// Flex holds an answer that may arrive either as a number or as text
// ("4", 4, "3-4", "15-20%").
type Flex string

// UnmarshalJSON accepts JSON strings, numbers and null.
func (f *Flex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Flex(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex value must be a string or number: %w", err)
	}
	*f = Flex(n.String())
	return nil
}

// UnmarshalTOML accepts TOML strings, integers and floats.
func (f *Flex) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*f = Flex(v)
	case int64:
		*f = Flex(strconv.FormatInt(v, 10))
	case float64:
		*f = Flex(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("flex value must be a string or number, got %T", value)
	}
	return nil
}

// Number returns the value parsed as a float when the whole answer is numeric.
func (f Flex) Number() (float64, bool) {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (f Flex) String() string { return strings.TrimSpace(string(f)) }
