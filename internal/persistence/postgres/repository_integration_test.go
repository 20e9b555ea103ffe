//go:build integration

package postgres

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/atarik0/workout-tracker/internal/domain"
)

func TestRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("workouts"),
		postgrescontainer.WithUsername("workouts"),
		postgrescontainer.WithPassword("workouts"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, waitForDatabase(ctx, connStr))

	runMigrations(t, ctx, connStr)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	repo := NewRepository(pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	calories := 280
	older := domain.Workout{
		ID:        uuid.NewString(),
		Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Type:      domain.TypeStrength,
		Duration:  45,
		Calories:  &calories,
		Notes:     "leg day",
		CreatedAt: now,
		UpdatedAt: now,
	}
	newer := domain.Workout{
		ID:        uuid.NewString(),
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:      domain.TypeCardio,
		Duration:  30,
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	// Ordering: most recent date first.
	workouts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	require.Equal(t, newer.ID, workouts[0].ID)
	require.Equal(t, older.ID, workouts[1].ID)

	// Nullable columns round-trip.
	stored, err := repo.Get(ctx, older.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.Calories)
	require.Equal(t, 280, *stored.Calories)
	require.Equal(t, "leg day", stored.Notes)

	storedNewer, err := repo.Get(ctx, newer.ID)
	require.NoError(t, err)
	require.NotNil(t, storedNewer)
	require.Nil(t, storedNewer.Calories)
	require.Empty(t, storedNewer.Notes)

	// Partial update touches only the set fields.
	duration := 60
	updatedCalories := 400
	updated, err := repo.Update(ctx, older.ID, domain.UpdateFields{
		Duration: &duration,
		Calories: &updatedCalories,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, 60, updated.Duration)
	require.Equal(t, 400, *updated.Calories)
	require.Equal(t, older.Date, updated.Date)
	require.Equal(t, older.Type, updated.Type)
	require.Equal(t, "leg day", updated.Notes)
	require.True(t, updated.UpdatedAt.After(older.UpdatedAt))

	// Missing rows surface as nil, not errors.
	missing, err := repo.Get(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, missing)

	ghost, err := repo.Update(ctx, uuid.NewString(), domain.UpdateFields{Duration: &duration})
	require.NoError(t, err)
	require.Nil(t, ghost)

	// Hard delete.
	removed, err := repo.Delete(ctx, older.ID)
	require.NoError(t, err)
	require.True(t, removed)

	gone, err := repo.Get(ctx, older.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	removed, err = repo.Delete(ctx, older.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func runMigrations(t *testing.T, ctx context.Context, connStr string) {
	files := []string{
		"../../../db/postgres/migrations/0001_init.up.sql",
	}

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	defer pool.Close()

	for _, rel := range files {
		path := resolvePath(t, rel)
		contents, readErr := os.ReadFile(path)
		require.NoError(t, readErr)

		_, execErr := pool.Exec(ctx, string(contents))
		require.NoError(t, execErr)
	}
}

func resolvePath(t *testing.T, rel string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), rel)
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}
