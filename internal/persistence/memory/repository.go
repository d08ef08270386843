// Package memory keeps programs in process memory for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"example.com/fitplan/internal/domain"
)

// Repository is a tenant-scoped in-memory program store.
type Repository struct {
	mu       sync.RWMutex
	programs map[string]domain.Program
}

// NewRepository constructs an empty store.
func NewRepository() *Repository {
	return &Repository{programs: make(map[string]domain.Program)}
}

// Save stores or replaces the program.
func (r *Repository) Save(_ context.Context, program domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[program.ID] = program
	return nil
}

// Get returns nil when the program is missing or belongs to another tenant.
func (r *Repository) Get(_ context.Context, tenantID, programID string) (*domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.programs[programID]
	if !ok || p.TenantID != tenantID {
		return nil, nil
	}
	return &p, nil
}

// ListByUser returns the newest programs first.
func (r *Repository) ListByUser(_ context.Context, tenantID, userID string, limit int) ([]domain.Program, error) {
	r.mu.RLock()
	out := make([]domain.Program, 0)
	for _, p := range r.programs {
		if p.TenantID == tenantID && p.UserID == userID {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Program) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
