package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"example.com/fitplan/internal/domain"
)

const (
	cmPerInch  = 2.54
	kgPerPound = 0.45359237
	kgPerStone = 6.35029318
)

var (
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
	wordSeparator = strings.NewReplacer("_", " ", "-", " ", "/", " ")
)

// Synonym tables. Keys are lowercased with separators folded to spaces.
var goalSynonyms = map[string]domain.Goal{
	"lose fat":             domain.GoalLoseFat,
	"lose":                 domain.GoalLoseFat,
	"lose weight":          domain.GoalLoseFat,
	"weight loss":          domain.GoalLoseFat,
	"fat loss":             domain.GoalLoseFat,
	"cut":                  domain.GoalLoseFat,
	"maintain":             domain.GoalMaintain,
	"maintenance":          domain.GoalMaintain,
	"maintain weight":      domain.GoalMaintain,
	"build muscle":         domain.GoalBuildMuscle,
	"gain":                 domain.GoalBuildMuscle,
	"gain muscle":          domain.GoalBuildMuscle,
	"muscle gain":          domain.GoalBuildMuscle,
	"muscle":               domain.GoalBuildMuscle,
	"bulk":                 domain.GoalBuildMuscle,
	"improve endurance":    domain.GoalImproveEndurance,
	"endurance":            domain.GoalImproveEndurance,
	"cardio":               domain.GoalImproveEndurance,
	"athletic performance": domain.GoalAthleticPerformance,
	"athletic":             domain.GoalAthleticPerformance,
	"performance":          domain.GoalAthleticPerformance,
	"sport":                domain.GoalAthleticPerformance,
	"overall health":       domain.GoalOverallHealth,
	"health":               domain.GoalOverallHealth,
	"general fitness":      domain.GoalOverallHealth,
}

var activitySynonyms = map[string]domain.ActivityLevel{
	"sedentary":         domain.ActivitySedentary,
	"desk job":          domain.ActivitySedentary,
	"office":            domain.ActivitySedentary,
	"light":             domain.ActivityLight,
	"lightly active":    domain.ActivityLight,
	"light activity":    domain.ActivityLight,
	"moderate":          domain.ActivityModerate,
	"moderately active": domain.ActivityModerate,
	"active":            domain.ActivityActive,
	"very active":       domain.ActivityVeryActive,
	"extra active":      domain.ActivityVeryActive,
	"extremely active":  domain.ActivityVeryActive,
	"manual labor":      domain.ActivityVeryActive,
}

var genderSynonyms = map[string]domain.Gender{
	"male":   domain.GenderMale,
	"m":      domain.GenderMale,
	"man":    domain.GenderMale,
	"female": domain.GenderFemale,
	"f":      domain.GenderFemale,
	"woman":  domain.GenderFemale,
}

var experienceSynonyms = map[string]domain.Experience{
	"beginner":     domain.ExperienceBeginner,
	"novice":       domain.ExperienceBeginner,
	"new":          domain.ExperienceBeginner,
	"intermediate": domain.ExperienceIntermediate,
	"advanced":     domain.ExperienceAdvanced,
	"expert":       domain.ExperienceAdvanced,
}

var equipmentSynonyms = map[string]domain.Equipment{
	"minimal":    domain.EquipmentMinimal,
	"none":       domain.EquipmentMinimal,
	"bodyweight": domain.EquipmentMinimal,
	"basic":      domain.EquipmentBasic,
	"home":       domain.EquipmentBasic,
	"home gym":   domain.EquipmentBasic,
	"dumbbells":  domain.EquipmentBasic,
	"full":       domain.EquipmentFull,
	"gym":        domain.EquipmentFull,
	"full gym":   domain.EquipmentFull,
	"outdoor":    domain.EquipmentOutdoor,
	"outdoors":   domain.EquipmentOutdoor,
	"park":       domain.EquipmentOutdoor,
}

var preferenceSynonyms = map[string]domain.Preference{
	"strength":    domain.PreferenceStrength,
	"weights":     domain.PreferenceStrength,
	"lifting":     domain.PreferenceStrength,
	"cardio":      domain.PreferenceCardio,
	"running":     domain.PreferenceCardio,
	"mixed":       domain.PreferenceMixed,
	"hybrid":      domain.PreferenceMixed,
	"hiit":        domain.PreferenceHIIT,
	"intervals":   domain.PreferenceHIIT,
	"mobility":    domain.PreferenceMobility,
	"yoga":        domain.PreferenceMobility,
	"flexibility": domain.PreferenceMobility,
}

var stressSynonyms = map[string]domain.StressLevel{
	"low":       domain.StressLow,
	"moderate":  domain.StressModerate,
	"medium":    domain.StressModerate,
	"high":      domain.StressHigh,
	"very high": domain.StressHigh,
}

var dietSynonyms = map[string]domain.DietType{
	"standard":      domain.DietStandard,
	"none":          domain.DietStandard,
	"omnivore":      domain.DietStandard,
	"balanced":      domain.DietStandard,
	"vegetarian":    domain.DietVegetarian,
	"vegan":         domain.DietVegan,
	"plant based":   domain.DietVegan,
	"keto":          domain.DietKeto,
	"ketogenic":     domain.DietKeto,
	"paleo":         domain.DietPaleo,
	"mediterranean": domain.DietMediterranean,
	"low carb":      domain.DietLowCarb,
	"atkins":        domain.DietLowCarb,
}

var workoutTimeSynonyms = map[string]domain.WorkoutTime{
	"morning":   domain.WorkoutMorning,
	"am":        domain.WorkoutMorning,
	"midday":    domain.WorkoutMidday,
	"lunch":     domain.WorkoutMidday,
	"afternoon": domain.WorkoutMidday,
	"evening":   domain.WorkoutEvening,
	"night":     domain.WorkoutEvening,
	"pm":        domain.WorkoutEvening,
}

var recentDayBuckets = map[string]int{
	"none":      0,
	"never":     0,
	"daily":     7,
	"every day": 7,
}

// Normalize converts raw answers into a CalculationRequest. It never fails:
// unknown vocabulary degrades to documented defaults and numeric range
// checks are left to the validator.
func Normalize(a Answers, defaultVariant domain.Variant) domain.CalculationRequest {
	req := domain.CalculationRequest{
		Variant:            Variant(a.Variant, defaultVariant),
		Gender:             lookup(genderSynonyms, a.Gender, domain.GenderOther),
		Age:                a.Age,
		HeightCM:           HeightCM(a.Height, a.HeightUnit, a.HeightInches),
		WeightKG:           WeightKG(a.Weight, a.WeightUnit),
		Goal:               lookup(goalSynonyms, a.Goal, domain.GoalOverallHealth),
		Experience:         lookup(experienceSynonyms, a.Experience, domain.ExperienceBeginner),
		DaysCommitted:      a.DaysCommitted,
		SessionDuration:    SessionDuration(a.SessionDuration),
		Equipment:          lookup(equipmentSynonyms, a.Equipment, domain.EquipmentMinimal),
		Preference:         lookup(preferenceSynonyms, a.Preference, domain.PreferenceMixed),
		Activity:           lookup(activitySynonyms, a.Activity, domain.ActivitySedentary),
		RecentExerciseDays: RecentExerciseDays(a.RecentExerciseDays),
		Sleep:              Sleep(a.Sleep),
		Stress:             lookup(stressSynonyms, a.Stress, domain.StressModerate),
		Diet:               lookup(dietSynonyms, a.Diet, domain.DietStandard),
		MealsPerDay:        a.MealsPerDay,
		WorkoutTime:        lookup(workoutTimeSynonyms, a.WorkoutTime, domain.WorkoutUnspecified),
		BodyFatPercent:     BodyFatPercent(a.BodyFat),
		MedicalFlag:        a.MedicalFlag || medicalDisclosed(a.MedicalNotes),
		MedicalNotes:       strings.TrimSpace(a.MedicalNotes),
		ExerciseMode:       domain.ExerciseModeTemplate,
		Seed:               a.Seed,
	}
	if req.MealsPerDay == 0 {
		req.MealsPerDay = 3
	}
	if canonical(a.ExerciseMode) == "random" || canonical(a.ExerciseMode) == "pool" {
		req.ExerciseMode = domain.ExerciseModeRandom
	}
	return req
}

// Variant maps a variant tag, falling back to the configured default.
func Variant(raw string, fallback domain.Variant) domain.Variant {
	switch canonical(raw) {
	case "v1", "1", "classic":
		return domain.VariantV1
	case "v2", "2":
		return domain.VariantV2
	}
	if fallback.Valid() {
		return fallback
	}
	return domain.VariantV1
}

// HeightCM converts a height to centimeters. "ft" reads value as feet plus
// inches; missing units are taken as centimeters.
func HeightCM(value float64, unit string, inches float64) float64 {
	switch canonical(unit) {
	case "m", "meter", "meters":
		return round2(value * 100)
	case "in", "inch", "inches":
		return round2(value * cmPerInch)
	case "ft", "feet", "ft in":
		return round2((value*12 + inches) * cmPerInch)
	default:
		return value
	}
}

// WeightKG converts a bodyweight to kilograms.
func WeightKG(value float64, unit string) float64 {
	switch canonical(unit) {
	case "lb", "lbs", "pound", "pounds":
		return round2(value * kgPerPound)
	case "st", "stone":
		return round2(value * kgPerStone)
	default:
		return value
	}
}

// SessionDuration maps minutes or a bucket label onto a duration bucket.
// A unit suffix is allowed ("20 min", "90 minutes").
func SessionDuration(raw Flex) domain.SessionDuration {
	s := stripUnit(raw, "minutes", "mins", "min", "m")
	if minutes, ok := Flex(s).Number(); ok {
		switch {
		case minutes < 30:
			return domain.DurationUnder30
		case minutes <= 45:
			return domain.Duration30To45
		case minutes <= 60:
			return domain.Duration45To60
		default:
			return domain.DurationOver60
		}
	}
	switch s {
	case "<30", "under30", "lessthan30":
		return domain.DurationUnder30
	case "30-45", "30to45":
		return domain.Duration30To45
	case "45-60", "45to60":
		return domain.Duration45To60
	case "60+", "60plus", "over60", ">60":
		return domain.DurationOver60
	}
	return domain.Duration45To60
}

// Sleep maps hours or a bucket label onto a sleep bucket. A unit suffix is
// allowed ("4 hours", "6h").
func Sleep(raw Flex) domain.SleepBucket {
	s := stripUnit(raw, "hours", "hour", "hrs", "hr", "h")
	if hours, ok := Flex(s).Number(); ok {
		switch {
		case hours < 5:
			return domain.SleepUnder5
		case hours < 7:
			return domain.Sleep5To6
		case hours <= 8:
			return domain.Sleep7To8
		default:
			return domain.SleepOver8
		}
	}
	switch s {
	case "<5", "under5", "lessthan5":
		return domain.SleepUnder5
	case "5-6", "5to6":
		return domain.Sleep5To6
	case "7-8", "7to8":
		return domain.Sleep7To8
	case "9+", "9plus", "over8", ">8":
		return domain.SleepOver8
	}
	return domain.Sleep7To8
}

// stripUnit lowercases raw, drops spaces and removes the first matching unit
// suffix. Longer suffixes must come first.
func stripUnit(raw Flex, units ...string) string {
	s := strings.ReplaceAll(strings.ToLower(raw.String()), " ", "")
	for _, u := range units {
		if strings.HasSuffix(s, u) {
			return strings.TrimSuffix(s, u)
		}
	}
	return s
}

// RecentExerciseDays maps a day count or bucket label ("3-4") to a day
// count. Ranges resolve to their upper bound; unknown text resolves to 0.
func RecentExerciseDays(raw Flex) int {
	if n, ok := raw.Number(); ok {
		return int(math.Round(n))
	}
	key := canonical(raw.String())
	if days, ok := recentDayBuckets[key]; ok {
		return days
	}
	nums := numberPattern.FindAllString(raw.String(), -1)
	if len(nums) == 0 {
		return 0
	}
	last, err := strconv.ParseFloat(nums[len(nums)-1], 64)
	if err != nil {
		return 0
	}
	return int(math.Round(last))
}

// BodyFatPercent parses a body-fat answer. Free-form ranges ("15-20%")
// resolve to their lower bound; empty or unparsable answers yield nil.
func BodyFatPercent(raw Flex) *float64 {
	if v, ok := raw.Number(); ok {
		return &v
	}
	first := numberPattern.FindString(raw.String())
	if first == "" {
		return nil
	}
	v, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return nil
	}
	return &v
}

// medicalDisclosed reports whether free-text notes disclose a condition.
func medicalDisclosed(notes string) bool {
	switch canonical(notes) {
	case "", "none", "no", "n a", "na", "nothing":
		return false
	}
	return true
}

func lookup[T ~string](table map[string]T, raw string, fallback T) T {
	if v, ok := table[canonical(raw)]; ok {
		return v
	}
	return fallback
}

func canonical(raw string) string {
	folded := wordSeparator.Replace(strings.ToLower(raw))
	return strings.Join(strings.Fields(folded), " ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
