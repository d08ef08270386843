package training

import (
	"math/rand/v2"
	"slices"
	"sync"

	"example.com/fitplan/internal/domain"
)

// Pool exposes the ordered exercise catalog.
type Pool interface {
	Exercises() []domain.Exercise
}

// ExerciseSource picks exercise names for one training day.
type ExerciseSource interface {
	Select(focus domain.Focus, req domain.CalculationRequest) []string
}

var templateCounts = map[domain.Experience]int{
	domain.ExperienceBeginner:     3,
	domain.ExperienceIntermediate: 4,
	domain.ExperienceAdvanced:     5,
}

// poolRanges holds the inclusive min/max exercises drawn per day.
var poolRanges = map[domain.Experience][2]int{
	domain.ExperienceBeginner:     {3, 4},
	domain.ExperienceIntermediate: {4, 5},
	domain.ExperienceAdvanced:     {5, 6},
}

// Candidates returns the catalog entries that train the focus and fit the
// equipment context, in catalog order. Entries matching the experience level
// come first; others are only kept as backfill.
func Candidates(pool Pool, focus domain.Focus, req domain.CalculationRequest) (fit, backfill []domain.Exercise) {
	for _, ex := range pool.Exercises() {
		if !ex.TargetsFocus(focus) || !req.Equipment.Allows(ex.Requires) {
			continue
		}
		if req.Experience.Permits(ex.Difficulty) {
			fit = append(fit, ex)
		} else {
			backfill = append(backfill, ex)
		}
	}
	return fit, backfill
}

// TemplateExerciseSource takes the first N candidates in catalog order, with
// equipment-based movements ahead of bodyweight ones when the context has
// equipment. The same request always yields the same names.
type TemplateExerciseSource struct {
	Pool Pool
}

func (s TemplateExerciseSource) Select(focus domain.Focus, req domain.CalculationRequest) []string {
	n, ok := templateCounts[req.Experience]
	if !ok {
		n = templateCounts[domain.ExperienceBeginner]
	}
	fit, backfill := Candidates(s.Pool, focus, req)
	if req.Equipment != domain.EquipmentMinimal {
		slices.SortStableFunc(fit, func(a, b domain.Exercise) int {
			return equipmentRank(a) - equipmentRank(b)
		})
	}
	return names(take(fit, backfill, n))
}

// RandomPoolExerciseSource samples a random subset of the candidates. Output
// is reproducible only when the source is built from a seeded generator.
type RandomPoolExerciseSource struct {
	pool Pool

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPoolExerciseSource wraps pool. A nil rng uses a PCG seeded from
// the runtime's random source.
func NewRandomPoolExerciseSource(pool Pool, rng *rand.Rand) *RandomPoolExerciseSource {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomPoolExerciseSource{pool: pool, rng: rng}
}

// NewSeededExerciseSource returns a pool source whose draws are fully
// determined by seed.
func NewSeededExerciseSource(pool Pool, seed uint64) *RandomPoolExerciseSource {
	return NewRandomPoolExerciseSource(pool, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (s *RandomPoolExerciseSource) Select(focus domain.Focus, req domain.CalculationRequest) []string {
	bounds, ok := poolRanges[req.Experience]
	if !ok {
		bounds = poolRanges[domain.ExperienceBeginner]
	}
	fit, backfill := Candidates(s.pool, focus, req)

	s.mu.Lock()
	n := bounds[0] + s.rng.IntN(bounds[1]-bounds[0]+1)
	s.rng.Shuffle(len(fit), func(i, j int) { fit[i], fit[j] = fit[j], fit[i] })
	s.rng.Shuffle(len(backfill), func(i, j int) { backfill[i], backfill[j] = backfill[j], backfill[i] })
	s.mu.Unlock()

	return names(take(fit, backfill, n))
}

func take(fit, backfill []domain.Exercise, n int) []domain.Exercise {
	out := make([]domain.Exercise, 0, n)
	for _, list := range [][]domain.Exercise{fit, backfill} {
		for _, ex := range list {
			if len(out) == n {
				return out
			}
			out = append(out, ex)
		}
	}
	return out
}

// equipmentRank sorts loaded movements before bodyweight ones.
func equipmentRank(ex domain.Exercise) int {
	for _, r := range ex.Requires {
		if r != domain.TagNone {
			return 0
		}
	}
	return 1
}

func names(exercises []domain.Exercise) []string {
	out := make([]string, len(exercises))
	for i, ex := range exercises {
		out[i] = ex.Name
	}
	return out
}
