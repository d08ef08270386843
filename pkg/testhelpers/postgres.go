package testhelpers

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// StartPostgres launches Postgres, applies every up migration and returns a pool.
func StartPostgres(ctx context.Context) (testcontainers.Container, *pgxpool.Pool, error) {
	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fitplan"),
		postgrescontainer.WithUsername("fitplan"),
		postgrescontainer.WithPassword("fitplan"),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		pg.Terminate(context.Background())
		return nil, nil, err
	}

	pool, err := waitForDatabase(ctx, connStr)
	if err != nil {
		pg.Terminate(context.Background())
		return nil, nil, err
	}

	if err := applyMigrations(ctx, pool); err != nil {
		pool.Close()
		pg.Terminate(context.Background())
		return nil, nil, err
	}
	return pg, pool, nil
}

func waitForDatabase(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		if time.Now().After(deadline) {
			return nil, err
		}
		time.Sleep(time.Second)
	}
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, file, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(file), "..", "..", "db", "migrations")

	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, path := range files {
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(contents)) == "" {
			continue
		}
		if _, err := pool.Exec(ctx, string(contents)); err != nil {
			return err
		}
	}
	return nil
}
