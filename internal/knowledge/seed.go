package knowledge

import "example.com/fitplan/internal/domain"

const (
	beginner     = "beginner"
	intermediate = "intermediate"
	advanced     = "advanced"
)

func entry(id, name, difficulty string, targets []string, requires ...string) domain.Exercise {
	if len(requires) == 0 {
		requires = []string{domain.TagNone}
	}
	return domain.Exercise{ID: id, Name: name, Difficulty: difficulty, Targets: targets, Requires: requires}
}

var (
	pushUpper      = []string{"push", "upper"}
	pushUpperFull  = []string{"push", "upper", "full_body"}
	pullUpper      = []string{"pull", "upper"}
	pullUpperFull  = []string{"pull", "upper", "full_body"}
	legsLower      = []string{"legs", "lower"}
	legsLowerFull  = []string{"legs", "lower", "full_body"}
	fullBody       = []string{"full_body"}
	mobilityTarget = []string{"mobility"}
)

// seedExercises is the built-in catalog. Order matters: the template source
// takes the first matching entries, so push and pull movements alternate to
// keep upper-body days balanced.
var seedExercises = []domain.Exercise{
	entry("push-up", "Push-Up", beginner, pushUpperFull),
	entry("inverted-table-row", "Inverted Table Row", beginner, pullUpperFull),
	entry("incline-push-up", "Incline Push-Up", beginner, pushUpper),
	entry("doorframe-row", "Doorframe Row", beginner, pullUpper),
	entry("knee-push-up", "Knee Push-Up", beginner, pushUpper),
	entry("prone-ytw-raise", "Prone Y-T-W Raise", beginner, pullUpper),
	entry("chair-dip", "Chair Dip", beginner, pushUpper),
	entry("superman-hold", "Superman Hold", beginner, pullUpper),
	entry("pike-push-up", "Pike Push-Up", intermediate, pushUpper),
	entry("reverse-snow-angel", "Reverse Snow Angel", beginner, pullUpper),
	entry("diamond-push-up", "Diamond Push-Up", intermediate, pushUpper),
	entry("towel-door-row", "Towel Door Row", intermediate, pullUpper),
	entry("decline-push-up", "Decline Push-Up", intermediate, []string{"push"}),
	entry("archer-inverted-row", "Archer Inverted Row", advanced, pullUpper),
	entry("archer-push-up", "Archer Push-Up", advanced, pushUpper),
	entry("pseudo-planche-push-up", "Pseudo Planche Push-Up", advanced, []string{"push"}),

	entry("dumbbell-bench-press", "Dumbbell Bench Press", beginner, pushUpper, domain.TagDumbbell, domain.TagBench),
	entry("one-arm-dumbbell-row", "One-Arm Dumbbell Row", beginner, pullUpper, domain.TagDumbbell, domain.TagBench),
	entry("dumbbell-shoulder-press", "Dumbbell Shoulder Press", beginner, pushUpper, domain.TagDumbbell),
	entry("band-pull-apart", "Band Pull-Apart", beginner, pullUpper, domain.TagBand),
	entry("band-chest-press", "Band Chest Press", beginner, pushUpper, domain.TagBand),
	entry("kettlebell-bent-over-row", "Kettlebell Bent-Over Row", beginner, pullUpper, domain.TagKettlebell),
	entry("kettlebell-floor-press", "Kettlebell Floor Press", beginner, pushUpper, domain.TagKettlebell),
	entry("scapular-pull-up", "Scapular Pull-Up", beginner, pullUpper, domain.TagPullupBar),
	entry("parallel-bar-dip", "Parallel Bar Dip", intermediate, pushUpper, domain.TagOutdoor),
	entry("pull-up", "Pull-Up", intermediate, pullUpper, domain.TagPullupBar),
	entry("barbell-bench-press", "Barbell Bench Press", intermediate, pushUpper, domain.TagBarbell, domain.TagBench),
	entry("chin-up", "Chin-Up", intermediate, pullUpper, domain.TagPullupBar),
	entry("overhead-press", "Overhead Press", intermediate, pushUpper, domain.TagBarbell),
	entry("barbell-row", "Barbell Row", intermediate, pullUpper, domain.TagBarbell),
	entry("machine-chest-press", "Machine Chest Press", beginner, pushUpper, domain.TagMachine),
	entry("lat-pulldown", "Lat Pulldown", beginner, pullUpper, domain.TagMachine),
	entry("cable-fly", "Cable Fly", beginner, []string{"push"}, domain.TagCable),
	entry("seated-cable-row", "Seated Cable Row", beginner, pullUpper, domain.TagCable),
	entry("muscle-up", "Muscle-Up", advanced, pullUpper, domain.TagPullupBar),
	entry("face-pull", "Face Pull", beginner, []string{"pull"}, domain.TagCable),

	entry("bodyweight-squat", "Bodyweight Squat", beginner, legsLowerFull),
	entry("glute-bridge", "Glute Bridge", beginner, legsLower),
	entry("reverse-lunge", "Reverse Lunge", beginner, legsLowerFull),
	entry("wall-sit", "Wall Sit", beginner, legsLower),
	entry("step-up", "Step-Up", beginner, legsLower),
	entry("standing-calf-raise", "Standing Calf Raise", beginner, legsLower),
	entry("bulgarian-split-squat", "Bulgarian Split Squat", intermediate, legsLower),
	entry("jump-squat", "Jump Squat", intermediate, legsLowerFull),
	entry("single-leg-glute-bridge", "Single-Leg Glute Bridge", intermediate, legsLower),
	entry("pistol-squat", "Pistol Squat", advanced, legsLower),
	entry("nordic-hamstring-curl", "Nordic Hamstring Curl", advanced, legsLower),

	entry("goblet-squat", "Goblet Squat", beginner, legsLowerFull, domain.TagDumbbell),
	entry("dumbbell-romanian-deadlift", "Dumbbell Romanian Deadlift", beginner, legsLower, domain.TagDumbbell),
	entry("banded-lateral-walk", "Banded Lateral Walk", beginner, legsLower, domain.TagBand),
	entry("kettlebell-swing", "Kettlebell Swing", intermediate, legsLowerFull, domain.TagKettlebell),
	entry("hill-sprint", "Hill Sprint", intermediate, legsLower, domain.TagOutdoor),
	entry("leg-press", "Leg Press", beginner, legsLower, domain.TagMachine),
	entry("lying-leg-curl", "Lying Leg Curl", beginner, legsLower, domain.TagMachine),
	entry("barbell-back-squat", "Barbell Back Squat", intermediate, legsLower, domain.TagBarbell),
	entry("romanian-deadlift", "Romanian Deadlift", intermediate, legsLower, domain.TagBarbell),
	entry("conventional-deadlift", "Conventional Deadlift", advanced, legsLowerFull, domain.TagBarbell),

	entry("mountain-climber", "Mountain Climber", beginner, fullBody),
	entry("bear-crawl", "Bear Crawl", beginner, fullBody),
	entry("forearm-plank", "Forearm Plank", beginner, fullBody),
	entry("burpee", "Burpee", intermediate, fullBody),
	entry("dumbbell-thruster", "Dumbbell Thruster", beginner, fullBody, domain.TagDumbbell),
	entry("kettlebell-clean-and-press", "Kettlebell Clean and Press", intermediate, fullBody, domain.TagKettlebell),

	entry("cat-cow", "Cat-Cow", beginner, mobilityTarget),
	entry("worlds-greatest-stretch", "World's Greatest Stretch", beginner, mobilityTarget),
	entry("hip-90-90-switch", "90/90 Hip Switch", beginner, mobilityTarget),
	entry("thoracic-open-book", "Thoracic Open Book", beginner, mobilityTarget),
	entry("deep-squat-hold", "Deep Squat Hold", intermediate, mobilityTarget),
	entry("couch-stretch", "Couch Stretch", intermediate, mobilityTarget),
	entry("jefferson-curl", "Jefferson Curl", advanced, mobilityTarget),
	entry("band-shoulder-dislocate", "Band Shoulder Dislocate", beginner, mobilityTarget, domain.TagBand),
}
