// Package knowledge holds the exercise catalog the training generator draws
// from, plus the Dgraph loader that extends it.
package knowledge

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/fitplan/internal/domain"
)

// Catalog is an ordered in-memory exercise store. Insertion order is kept so
// template selection stays stable.
type Catalog struct {
	mu        sync.RWMutex
	order     []string
	exercises map[string]domain.Exercise
}

// NewCatalog constructs a catalog populated with the built-in exercises.
func NewCatalog() *Catalog {
	c := &Catalog{exercises: make(map[string]domain.Exercise, len(seedExercises))}
	c.Load(seedExercises)
	return c
}

// Upsert inserts or replaces an exercise. New entries are appended; replaced
// entries keep their position.
func (c *Catalog) Upsert(exercise domain.Exercise) domain.Exercise {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.upsertLocked(exercise)
}

// Load upserts every exercise and returns how many were new.
func (c *Catalog) Load(exercises []domain.Exercise) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0
	for _, ex := range exercises {
		before := len(c.order)
		c.upsertLocked(ex)
		if len(c.order) > before {
			added++
		}
	}
	return added
}

func (c *Catalog) upsertLocked(exercise domain.Exercise) domain.Exercise {
	if strings.TrimSpace(exercise.ID) == "" {
		exercise.ID = uuid.NewString()
	}
	if exercise.LastUpdated.IsZero() {
		exercise.LastUpdated = time.Now().UTC()
	}
	exercise.Targets = domain.NormalizeTags(exercise.Targets)
	exercise.Requires = domain.NormalizeTags(exercise.Requires)
	exercise.Difficulty = strings.ToLower(strings.TrimSpace(exercise.Difficulty))

	if _, exists := c.exercises[exercise.ID]; !exists {
		c.order = append(c.order, exercise.ID)
	}
	c.exercises[exercise.ID] = exercise
	return exercise
}

// Exercises returns a snapshot of the catalog in insertion order.
func (c *Catalog) Exercises() []domain.Exercise {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Exercise, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.exercises[id])
	}
	return out
}

// Get returns the exercise by ID.
func (c *Catalog) Get(id string) (domain.Exercise, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ex, ok := c.exercises[id]
	return ex, ok
}

// Len reports the number of exercises.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Filter narrows a catalog search. Zero values match everything.
type Filter struct {
	Query     string
	Focus     domain.Focus
	Equipment domain.Equipment
	Limit     int
}

// Search performs a case-insensitive substring match on names, filtered by
// focus and equipment, in catalog order.
func (c *Catalog) Search(f Filter) []domain.Exercise {
	c.mu.RLock()
	defer c.mu.RUnlock()

	normalized := strings.ToLower(strings.TrimSpace(f.Query))
	results := make([]domain.Exercise, 0)
	for _, id := range c.order {
		ex := c.exercises[id]
		if normalized != "" && !strings.Contains(strings.ToLower(ex.Name), normalized) {
			continue
		}
		if f.Focus != "" && !ex.TargetsFocus(f.Focus) {
			continue
		}
		if f.Equipment != "" && !f.Equipment.Allows(ex.Requires) {
			continue
		}
		results = append(results, ex)
		if f.Limit > 0 && len(results) >= f.Limit {
			break
		}
	}
	return results
}
