// Package postgres stores programs in Postgres behind tenant row-level security.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fitplan/internal/domain"
)

const selectProgram = `SELECT program_id::text, tenant_id, user_id, variant, request, result, created_at FROM programs`

// Repository provides Postgres-backed persistence for programs.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Save inserts the program, replacing any row with the same ID.
func (r *Repository) Save(ctx context.Context, program domain.Program) error {
	request, err := json.Marshal(program.Request)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	result, err := json.Marshal(program.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return r.inTenant(ctx, program.TenantID, func(tx pgx.Tx) error {
		const stmt = `INSERT INTO programs (program_id, tenant_id, user_id, variant, target_calories, flags, request, result, created_at)
        VALUES (@id, @tenantID, @userID, @variant, @target, @flags, @request, @result, @createdAt)
        ON CONFLICT (program_id) DO UPDATE SET
            variant = EXCLUDED.variant,
            target_calories = EXCLUDED.target_calories,
            flags = EXCLUDED.flags,
            request = EXCLUDED.request,
            result = EXCLUDED.result`

		_, err := tx.Exec(ctx, stmt, pgx.NamedArgs{
			"id":        program.ID,
			"tenantID":  program.TenantID,
			"userID":    program.UserID,
			"variant":   string(program.Variant),
			"target":    program.Result.TargetCalories,
			"flags":     program.Result.Flags.Strings(),
			"request":   request,
			"result":    result,
			"createdAt": program.CreatedAt,
		})
		return err
	})
}

// Get retrieves a program by ID. It returns nil when no row is visible to the tenant.
func (r *Repository) Get(ctx context.Context, tenantID, programID string) (*domain.Program, error) {
	var program *domain.Program
	err := r.inTenant(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectProgram+` WHERE tenant_id = @tenantID AND program_id::text = @id`,
			pgx.NamedArgs{"tenantID": tenantID, "id": programID})
		if err != nil {
			return err
		}
		p, err := pgx.CollectOneRow(rows, scanProgram)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		program = &p
		return nil
	})
	return program, err
}

// ListByUser returns the user's programs ordered newest first.
func (r *Repository) ListByUser(ctx context.Context, tenantID, userID string, limit int) ([]domain.Program, error) {
	var programs []domain.Program
	err := r.inTenant(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectProgram+` WHERE tenant_id = @tenantID AND user_id = @userID
        ORDER BY created_at DESC, program_id DESC LIMIT @limit`,
			pgx.NamedArgs{"tenantID": tenantID, "userID": userID, "limit": limit})
		if err != nil {
			return err
		}
		programs, err = pgx.CollectRows(rows, scanProgram)
		return err
	})
	if err != nil {
		return nil, err
	}
	if programs == nil {
		programs = []domain.Program{}
	}
	return programs, nil
}

// inTenant runs fn in a transaction with app.tenant_id set for the RLS policy.
func (r *Repository) inTenant(ctx context.Context, tenantID string, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT set_config('app.tenant_id', $1, true)", tenantID); err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanProgram(row pgx.CollectableRow) (domain.Program, error) {
	var (
		p               domain.Program
		variant         string
		request, result []byte
	)
	if err := row.Scan(&p.ID, &p.TenantID, &p.UserID, &variant, &request, &result, &p.CreatedAt); err != nil {
		return domain.Program{}, err
	}
	p.Variant = domain.Variant(variant)
	if err := json.Unmarshal(request, &p.Request); err != nil {
		return domain.Program{}, fmt.Errorf("decode request: %w", err)
	}
	if err := json.Unmarshal(result, &p.Result); err != nil {
		return domain.Program{}, fmt.Errorf("decode result: %w", err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
