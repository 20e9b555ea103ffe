// Package postgres provides pgx-backed persistence for workouts.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atarik0/workout-tracker/internal/domain"
)

const workoutColumns = "workout_id, workout_date, workout_type, duration_min, calories, notes, created_at, updated_at"

// Repository provides Postgres-backed persistence for workouts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all workouts ordered by date descending.
func (r *Repository) List(ctx context.Context) ([]domain.Workout, error) {
	query := fmt.Sprintf(`SELECT %s FROM workouts ORDER BY workout_date DESC, workout_id DESC`, workoutColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.Workout, 0)
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Get retrieves a workout by id, returning nil when absent.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Workout, error) {
	query := fmt.Sprintf(`SELECT %s FROM workouts WHERE workout_id=$1`, workoutColumns)

	row := r.pool.QueryRow(ctx, query, id)
	workout, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

// Create persists the workout.
func (r *Repository) Create(ctx context.Context, workout domain.Workout) error {
	const stmt = `INSERT INTO workouts (workout_id, workout_date, workout_type, duration_min, calories, notes, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	_, err := r.pool.Exec(ctx, stmt,
		workout.ID,
		workout.Date,
		workout.Type,
		workout.Duration,
		workout.Calories,
		nullIfEmpty(workout.Notes),
		workout.CreatedAt,
		workout.UpdatedAt,
	)
	return err
}

// Update applies only the set fields and returns the updated row, or nil when
// the id does not resolve.
func (r *Repository) Update(ctx context.Context, id string, fields domain.UpdateFields) (*domain.Workout, error) {
	sets := make([]string, 0, 6)
	args := make([]interface{}, 0, 8)

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if fields.Date != nil {
		appendSet("workout_date", fields.Date.UTC())
	}
	if fields.Type != nil {
		appendSet("workout_type", *fields.Type)
	}
	if fields.Duration != nil {
		appendSet("duration_min", *fields.Duration)
	}
	if fields.Calories != nil {
		appendSet("calories", *fields.Calories)
	}
	if fields.Notes != nil {
		appendSet("notes", nullIfEmpty(*fields.Notes))
	}
	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE workouts SET %s WHERE workout_id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), workoutColumns)

	row := r.pool.QueryRow(ctx, query, args...)
	workout, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

// Delete removes the workout and reports whether a row was affected.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE workout_id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Truncate removes every workout. Used by the seed script.
func (r *Repository) Truncate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM workouts`)
	return err
}

func scanWorkout(row pgx.Row) (domain.Workout, error) {
	var (
		workout  domain.Workout
		calories *int
		notes    *string
	)
	if err := row.Scan(&workout.ID, &workout.Date, &workout.Type, &workout.Duration, &calories, &notes, &workout.CreatedAt, &workout.UpdatedAt); err != nil {
		return domain.Workout{}, err
	}
	workout.Calories = calories
	if notes != nil {
		workout.Notes = *notes
	}
	return workout, nil
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
