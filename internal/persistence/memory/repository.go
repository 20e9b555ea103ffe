// Package memory provides an in-memory workout repository for local
// development and tests. It honours the same ordering and partial-update
// contract as the Postgres repository.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atarik0/workout-tracker/internal/domain"
)

// Repository stores workouts in a map guarded by a RWMutex.
type Repository struct {
	mu       sync.RWMutex
	workouts map[string]domain.Workout
}

// NewRepository constructs an empty Repository.
func NewRepository() *Repository {
	return &Repository{workouts: make(map[string]domain.Workout)}
}

// List returns all workouts ordered by date descending, id descending on ties.
func (r *Repository) List(ctx context.Context) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Workout, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Get returns nil when the id does not resolve.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.workouts[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// Create persists the workout.
func (r *Repository) Create(ctx context.Context, workout domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workouts[workout.ID] = workout
	return nil
}

// Update applies the set fields, refreshes UpdatedAt, and returns the result.
func (r *Repository) Update(ctx context.Context, id string, fields domain.UpdateFields) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workouts[id]
	if !ok {
		return nil, nil
	}

	fields.Apply(&w)
	w.UpdatedAt = time.Now().UTC()
	r.workouts[id] = w
	return &w, nil
}

// Delete removes the workout and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[id]; !ok {
		return false, nil
	}
	delete(r.workouts, id)
	return true, nil
}
