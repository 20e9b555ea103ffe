package domain

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// Repository captures persistence operations for workouts.
type Repository interface {
	// List returns every workout ordered by date descending (id descending on ties).
	List(ctx context.Context) ([]Workout, error)
	// Get returns nil without error when the id does not resolve.
	Get(ctx context.Context, id string) (*Workout, error)
	Create(ctx context.Context, workout Workout) error
	// Update applies the set fields and returns the updated row, or nil when absent.
	Update(ctx context.Context, id string, fields UpdateFields) (*Workout, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// Publisher emits workout mutation events. Implementations must not block
// request handling on broker availability.
type Publisher interface {
	WorkoutCreated(ctx context.Context, workout Workout) error
	WorkoutUpdated(ctx context.Context, workout Workout) error
	WorkoutDeleted(ctx context.Context, id string) error
}

// Recorder receives persistence watermarks for observability.
type Recorder interface {
	WorkoutPersisted(ts time.Time)
	WorkoutDeleted()
}

// Service orchestrates workout workflows.
type Service struct {
	repo     Repository
	events   Publisher
	recorder Recorder
}

// NewService constructs a Service. events and recorder may be nil.
func NewService(repo Repository, events Publisher, recorder Recorder) *Service {
	return &Service{repo: repo, events: events, recorder: recorder}
}

// CreateWorkoutInput captures the payload from the API layer, already validated.
type CreateWorkoutInput struct {
	Date     time.Time
	Type     WorkoutType
	Duration int
	Calories *int
	Notes    string
}

// ListWorkouts returns all workouts, most recent date first.
func (s *Service) ListWorkouts(ctx context.Context) ([]Workout, error) {
	return s.repo.List(ctx)
}

// GetWorkout fetches by id.
func (s *Service) GetWorkout(ctx context.Context, id string) (*Workout, error) {
	workout, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

// CreateWorkout assigns identity and timestamps, persists, and publishes.
func (s *Service) CreateWorkout(ctx context.Context, input CreateWorkoutInput) (*Workout, error) {
	now := time.Now().UTC()
	workout := Workout{
		ID:        uuid.NewString(),
		Date:      input.Date.UTC(),
		Type:      input.Type,
		Duration:  input.Duration,
		Calories:  input.Calories,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ValidateConstraints(workout); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.WorkoutPersisted(workout.UpdatedAt)
	}
	if s.events != nil {
		if err := s.events.WorkoutCreated(ctx, workout); err != nil {
			log.Printf("publish workout.created failed: %v", err)
		}
	}
	return &workout, nil
}

// UpdateWorkout applies a partial update and returns the updated record.
func (s *Service) UpdateWorkout(ctx context.Context, id string, fields UpdateFields) (*Workout, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	workout, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, ErrWorkoutNotFound
	}

	if s.recorder != nil {
		s.recorder.WorkoutPersisted(workout.UpdatedAt)
	}
	if s.events != nil {
		if err := s.events.WorkoutUpdated(ctx, *workout); err != nil {
			log.Printf("publish workout.updated failed: %v", err)
		}
	}
	return workout, nil
}

// DeleteWorkout removes the record permanently.
func (s *Service) DeleteWorkout(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrWorkoutNotFound
	}

	if s.recorder != nil {
		s.recorder.WorkoutDeleted()
	}
	if s.events != nil {
		if err := s.events.WorkoutDeleted(ctx, id); err != nil {
			log.Printf("publish workout.deleted failed: %v", err)
		}
	}
	return nil
}
