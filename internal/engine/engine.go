// Package engine chains the calculation stages into a single pure call:
// validate, metabolic profile, calorie target, macros, weekly plan, advice.
// The variant on the request picks the strategy used at each stage.
package engine

import (
	"example.com/fitplan/internal/advice"
	"example.com/fitplan/internal/calories"
	"example.com/fitplan/internal/domain"
	"example.com/fitplan/internal/macros"
	"example.com/fitplan/internal/metabolic"
	"example.com/fitplan/internal/training"
	"example.com/fitplan/internal/validate"
)

// Engine runs calculations. It is safe for concurrent use.
type Engine struct {
	pool     training.Pool
	template training.ExerciseSource
	random   training.ExerciseSource
}

// Option configures the engine.
type Option func(*Engine)

// WithTemplateSource replaces the deterministic exercise source.
func WithTemplateSource(src training.ExerciseSource) Option {
	return func(e *Engine) {
		e.template = src
	}
}

// WithRandomSource replaces the shared source used for unseeded random
// requests.
func WithRandomSource(src training.ExerciseSource) Option {
	return func(e *Engine) {
		e.random = src
	}
}

// New constructs an engine drawing exercises from pool.
func New(pool training.Pool, opts ...Option) *Engine {
	e := &Engine{
		pool:     pool,
		template: training.TemplateExerciseSource{Pool: pool},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.random == nil {
		e.random = training.NewRandomPoolExerciseSource(pool, nil)
	}
	return e
}

// Calculate validates req and computes the full program. Field errors come
// back as *domain.ValidationError and physiological hard stops as
// *domain.RejectionError; in both cases no result is returned.
func (e *Engine) Calculate(req domain.CalculationRequest) (*domain.Result, error) {
	verdict := validate.Request(req)
	if err := verdict.Err(); err != nil {
		return nil, err
	}

	flags := domain.FlagSet{}
	flags.Merge(verdict.Flags)

	profile, f := metabolic.Calculate(metabolic.ForVariant(req.Variant), req)
	flags.Merge(f)

	target, f := calories.Resolve(calories.ForVariant(req.Variant), req, profile)
	flags.Merge(f)

	split, f := macros.Allocate(macros.ForVariant(req.Variant), req, target)
	flags.Merge(f)

	gen := training.Generator{Source: e.source(req), Volume: training.ForVariant(req.Variant)}

	result := &domain.Result{
		Variant:        req.Variant,
		BMR:            profile.BMR,
		TDEE:           profile.TDEE,
		ActivityFactor: profile.ActivityFactor,
		TargetCalories: target,
		Macros:         split,
		WorkoutPlan:    gen.Week(req),
		WaterNeedsML:   advice.ForVariant(req.Variant).WaterML(req),
	}
	timing := advice.Timing(req, split)
	result.NutrientTiming = &timing

	switch req.Variant {
	case domain.VariantV2:
		result.MealFrequency = req.MealsPerDay
		result.MealPlan = advice.MealPlan(req.MealsPerDay, target, split)
		result.RecoveryTips = training.RecoveryTips(req)
	default:
		result.FoodRecommendations = advice.Foods(req.Diet)
	}

	result.Flags = flags
	return result, nil
}

func (e *Engine) source(req domain.CalculationRequest) training.ExerciseSource {
	if req.ExerciseMode != domain.ExerciseModeRandom {
		return e.template
	}
	if req.Seed != nil {
		return training.NewSeededExerciseSource(e.pool, *req.Seed)
	}
	return e.random
}
