package domain

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/fitplan/internal/cache"
	"example.com/fitplan/internal/observability"
)

// Default and maximum page sizes for ListPrograms.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Program is a stored calculation: the normalized request and the result the
// engine produced for it.
type Program struct {
	ID        string             `json:"id"`
	TenantID  string             `json:"tenant_id"`
	UserID    string             `json:"user_id"`
	Variant   Variant            `json:"variant"`
	Request   CalculationRequest `json:"request"`
	Result    Result             `json:"result"`
	CreatedAt time.Time          `json:"created_at"`
}

// Calculator turns a normalized request into a result.
type Calculator interface {
	Calculate(req CalculationRequest) (*Result, error)
}

// Repository exposes program persistence. Get returns (nil, nil) when the
// program does not exist for the tenant.
type Repository interface {
	Save(ctx context.Context, program Program) error
	Get(ctx context.Context, tenantID, programID string) (*Program, error)
	ListByUser(ctx context.Context, tenantID, userID string, limit int) ([]Program, error)
}

// Publisher announces stored programs to downstream consumers.
type Publisher interface {
	PublishProgramComputed(ctx context.Context, program Program) error
}

type noopPublisher struct{}

func (noopPublisher) PublishProgramComputed(context.Context, Program) error { return nil }

// Service wraps the calculator with persistence, cache invalidation and
// event publication.
type Service struct {
	calc      Calculator
	repo      Repository
	cache     cache.Invalidator
	publisher Publisher
}

// NewService constructs a Service. Nil invalidator and publisher are
// replaced by no-ops.
func NewService(calc Calculator, repo Repository, invalidator cache.Invalidator, publisher Publisher) *Service {
	if invalidator == nil {
		invalidator = cache.NoopInvalidator{}
	}
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &Service{calc: calc, repo: repo, cache: invalidator, publisher: publisher}
}

// ComputeProgramInput captures the payload from the API and consumer layers.
type ComputeProgramInput struct {
	TenantID string
	UserID   string
	Request  CalculationRequest
}

// Preview runs the calculation without storing anything.
func (s *Service) Preview(req CalculationRequest) (*Result, error) {
	return s.calculate(req)
}

// ComputeProgram calculates, stores and announces a program. Validation
// failures and rejections are returned unchanged and nothing is stored.
func (s *Service) ComputeProgram(ctx context.Context, input ComputeProgramInput) (*Program, error) {
	var missing []FieldError
	if strings.TrimSpace(input.TenantID) == "" {
		missing = append(missing, FieldError{Field: "tenant_id", Message: "is required"})
	}
	if strings.TrimSpace(input.UserID) == "" {
		missing = append(missing, FieldError{Field: "user_id", Message: "is required"})
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	result, err := s.calculate(input.Request)
	if err != nil {
		return nil, err
	}

	program := Program{
		ID:        uuid.NewString(),
		TenantID:  input.TenantID,
		UserID:    input.UserID,
		Variant:   result.Variant,
		Request:   input.Request,
		Result:    *result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, program); err != nil {
		return nil, fmt.Errorf("save program: %w", err)
	}
	observability.RecordProgramStored(program.CreatedAt)

	// Stored. Follow-up failures are logged and counted, not returned.
	if err := s.cache.Invalidate(ctx, CacheKey(program.TenantID, program.UserID)); err != nil {
		observability.RecordFollowUpFailure("invalidate")
		log.Printf("program %s stored, cache invalidation failed: %v", program.ID, err)
	}
	if err := s.publisher.PublishProgramComputed(ctx, program); err != nil {
		observability.RecordFollowUpFailure("publish")
		log.Printf("program %s stored, publish failed: %v", program.ID, err)
	}
	return &program, nil
}

// GetProgram retrieves a program by ID within the tenant.
func (s *Service) GetProgram(ctx context.Context, tenantID, programID string) (*Program, error) {
	if strings.TrimSpace(programID) == "" {
		return nil, ErrProgramNotFound
	}
	program, err := s.repo.Get(ctx, tenantID, programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	return program, nil
}

// ListPrograms returns the user's programs, newest first.
func (s *Service) ListPrograms(ctx context.Context, tenantID, userID string, limit int) ([]Program, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "user_id", Message: "is required"}}}
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)
	return s.repo.ListByUser(ctx, tenantID, userID, limit)
}

// CacheKey is the edge-cache key covering a user's program listing.
func CacheKey(tenantID, userID string) string {
	return "programs/" + tenantID + "/" + userID
}

func (s *Service) calculate(req CalculationRequest) (*Result, error) {
	result, err := s.calc.Calculate(req)
	switch {
	case err == nil:
		observability.RecordCalculation(string(result.Variant), observability.OutcomeOK, result.Flags.Strings())
	case errors.Is(err, ErrRejected):
		var flags []string
		var rej *RejectionError
		if errors.As(err, &rej) {
			flags = rej.Flags.Strings()
		}
		observability.RecordCalculation(string(req.Variant), observability.OutcomeRejected, flags)
	case errors.Is(err, ErrInvalidRequest):
		observability.RecordCalculation(string(req.Variant), observability.OutcomeInvalid, nil)
	default:
		observability.RecordCalculation(string(req.Variant), observability.OutcomeError, nil)
	}
	return result, err
}
