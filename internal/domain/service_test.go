package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/fitplan/internal/domain"
	"example.com/fitplan/internal/persistence/memory"
)

type stubCalculator struct {
	result *domain.Result
	err    error
	calls  int
}

func (c *stubCalculator) Calculate(req domain.CalculationRequest) (*domain.Result, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	out := *c.result
	out.Variant = req.Variant
	return &out, nil
}

type recordingInvalidator struct {
	keys []string
	err  error
}

func (r *recordingInvalidator) Invalidate(_ context.Context, key string) error {
	r.keys = append(r.keys, key)
	return r.err
}

type recordingPublisher struct {
	programs []domain.Program
	err      error
}

func (p *recordingPublisher) PublishProgramComputed(_ context.Context, program domain.Program) error {
	p.programs = append(p.programs, program)
	return p.err
}

func okCalculator() *stubCalculator {
	return &stubCalculator{result: &domain.Result{
		BMR:            1761,
		TDEE:           2421,
		TargetCalories: 2671,
		Macros:         domain.MacroSet{Protein: 165, Carbs: 302, Fat: 89},
		Flags:          domain.FlagSet{},
	}}
}

func TestComputeProgramStoresInvalidatesAndPublishes(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	inv := &recordingInvalidator{}
	pub := &recordingPublisher{}
	svc := domain.NewService(okCalculator(), repo, inv, pub)

	program, err := svc.ComputeProgram(ctx, domain.ComputeProgramInput{
		TenantID: "tenant-1",
		UserID:   "user-1",
		Request:  domain.CalculationRequest{Variant: domain.VariantV2},
	})
	require.NoError(t, err)
	require.NotEmpty(t, program.ID)
	assert.Equal(t, domain.VariantV2, program.Variant)
	assert.Equal(t, 2671, program.Result.TargetCalories)
	assert.False(t, program.CreatedAt.IsZero())

	stored, err := svc.GetProgram(ctx, "tenant-1", program.ID)
	require.NoError(t, err)
	assert.Equal(t, program.ID, stored.ID)

	assert.Equal(t, []string{"programs/tenant-1/user-1"}, inv.keys)
	require.Len(t, pub.programs, 1)
	assert.Equal(t, program.ID, pub.programs[0].ID)
}

func TestComputeProgramDoesNotStoreRejections(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	pub := &recordingPublisher{}
	rejection := &domain.RejectionError{Flags: domain.FlagSet{domain.FlagExtremeBodyMetrics}}
	svc := domain.NewService(&stubCalculator{err: rejection}, repo, nil, pub)

	program, err := svc.ComputeProgram(ctx, domain.ComputeProgramInput{TenantID: "t", UserID: "u"})
	assert.Nil(t, program)
	require.ErrorIs(t, err, domain.ErrRejected)
	var rej *domain.RejectionError
	require.True(t, errors.As(err, &rej))
	assert.Same(t, rejection, rej)

	list, err := svc.ListPrograms(ctx, "t", "u", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, pub.programs)
}

func TestComputeProgramRequiresIdentity(t *testing.T) {
	calc := okCalculator()
	svc := domain.NewService(calc, memory.NewRepository(), nil, nil)

	_, err := svc.ComputeProgram(context.Background(), domain.ComputeProgramInput{TenantID: " "})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Zero(t, calc.calls)
}

func TestComputeProgramSurvivesFollowUpFailures(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	inv := &recordingInvalidator{err: errors.New("purge endpoint down")}
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := domain.NewService(okCalculator(), repo, inv, pub)

	program, err := svc.ComputeProgram(ctx, domain.ComputeProgramInput{TenantID: "t", UserID: "u"})
	require.NoError(t, err)
	require.NotNil(t, program)
	assert.Len(t, inv.keys, 1)
	assert.Len(t, pub.programs, 1)

	stored, err := repo.ListByUser(ctx, "t", "u", 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, program.ID, stored[0].ID)
}

func TestComputeProgramSaveFailureIsReturned(t *testing.T) {
	boom := errors.New("postgres down")
	pub := &recordingPublisher{}
	svc := domain.NewService(okCalculator(), failingRepo{err: boom}, nil, pub)

	_, err := svc.ComputeProgram(context.Background(), domain.ComputeProgramInput{TenantID: "t", UserID: "u"})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "save program")
	assert.Empty(t, pub.programs)
}

type failingRepo struct{ err error }

func (r failingRepo) Save(context.Context, domain.Program) error { return r.err }

func (r failingRepo) Get(context.Context, string, string) (*domain.Program, error) {
	return nil, r.err
}

func (r failingRepo) ListByUser(context.Context, string, string, int) ([]domain.Program, error) {
	return nil, r.err
}

func TestGetProgramNotFound(t *testing.T) {
	svc := domain.NewService(okCalculator(), memory.NewRepository(), nil, nil)
	_, err := svc.GetProgram(context.Background(), "t", "missing")
	require.ErrorIs(t, err, domain.ErrProgramNotFound)
}

func TestListProgramsClampsLimit(t *testing.T) {
	ctx := context.Background()
	svc := domain.NewService(okCalculator(), memory.NewRepository(), nil, nil)
	for i := 0; i < domain.MaxListLimit+5; i++ {
		_, err := svc.ComputeProgram(ctx, domain.ComputeProgramInput{TenantID: "t", UserID: "u"})
		require.NoError(t, err)
	}

	defaulted, err := svc.ListPrograms(ctx, "t", "u", 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, domain.DefaultListLimit)

	clamped, err := svc.ListPrograms(ctx, "t", "u", 1000)
	require.NoError(t, err)
	assert.Len(t, clamped, domain.MaxListLimit)

	_, err = svc.ListPrograms(ctx, "t", "", 10)
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestPreviewDoesNotPersist(t *testing.T) {
	repo := memory.NewRepository()
	svc := domain.NewService(okCalculator(), repo, nil, nil)

	res, err := svc.Preview(domain.CalculationRequest{Variant: domain.VariantV1})
	require.NoError(t, err)
	assert.Equal(t, 2421, res.TDEE)

	list, err := repo.ListByUser(context.Background(), "", "", 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
