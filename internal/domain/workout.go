// Package domain defines the business logic for the workout tracker.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrWorkoutNotFound is returned when a workout cannot be located.
var ErrWorkoutNotFound = errors.New("workout not found")

// Field constraints shared by server-side and client-side validation.
const (
	MinDurationMinutes = 1
	MaxNotesLength     = 500
)

// Validation messages surfaced verbatim to clients.
const (
	MsgRequiredFields   = "Date, type, and duration are required"
	MsgDurationTooShort = "Duration must be at least 1 minute"
	MsgCaloriesNegative = "Calories cannot be negative"
	MsgNotesTooLong     = "Notes cannot exceed 500 characters"
	MsgInvalidType      = "Type must be one of: strength, cardio, mobility, other"
	MsgInvalidDate      = "Date must be a valid date"
)

// WorkoutType enumerates the supported session categories.
type WorkoutType string

const (
	TypeStrength WorkoutType = "strength"
	TypeCardio   WorkoutType = "cardio"
	TypeMobility WorkoutType = "mobility"
	TypeOther    WorkoutType = "other"
)

// WorkoutTypes lists all valid types in display order.
var WorkoutTypes = []WorkoutType{TypeStrength, TypeCardio, TypeMobility, TypeOther}

// ParseWorkoutType validates a raw type string.
func ParseWorkoutType(raw string) (WorkoutType, error) {
	t := WorkoutType(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range WorkoutTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%s", MsgInvalidType)
}

// Workout is the canonical record stored by the repository.
type Workout struct {
	ID        string
	Date      time.Time
	Type      WorkoutType
	Duration  int  // minutes
	Calories  *int // nil when not recorded
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidationError aggregates field-level failures for a single write.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NewValidationError builds a ValidationError from non-empty messages.
func NewValidationError(messages ...string) *ValidationError {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			out = append(out, m)
		}
	}
	return &ValidationError{Messages: out}
}

// ValidateConstraints checks the range rules on a fully populated workout.
// Required-field presence is the concern of the API layer, which can tell
// absent fields from zero values.
func ValidateConstraints(w Workout) error {
	var messages []string
	if w.Duration < MinDurationMinutes {
		messages = append(messages, MsgDurationTooShort)
	}
	if w.Calories != nil && *w.Calories < 0 {
		messages = append(messages, MsgCaloriesNegative)
	}
	if len(w.Notes) > MaxNotesLength {
		messages = append(messages, MsgNotesTooLong)
	}
	if _, err := ParseWorkoutType(string(w.Type)); err != nil {
		messages = append(messages, MsgInvalidType)
	}
	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// UpdateFields carries a partial update; nil fields are left untouched.
type UpdateFields struct {
	Date     *time.Time
	Type     *WorkoutType
	Duration *int
	Calories *int
	Notes    *string
}

// Validate checks the range rules on the fields present.
func (f UpdateFields) Validate() error {
	var messages []string
	if f.Duration != nil && *f.Duration < MinDurationMinutes {
		messages = append(messages, MsgDurationTooShort)
	}
	if f.Calories != nil && *f.Calories < 0 {
		messages = append(messages, MsgCaloriesNegative)
	}
	if f.Notes != nil && len(*f.Notes) > MaxNotesLength {
		messages = append(messages, MsgNotesTooLong)
	}
	if f.Type != nil {
		if _, err := ParseWorkoutType(string(*f.Type)); err != nil {
			messages = append(messages, MsgInvalidType)
		}
	}
	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// Apply copies the set fields onto the workout.
func (f UpdateFields) Apply(w *Workout) {
	if f.Date != nil {
		w.Date = f.Date.UTC()
	}
	if f.Type != nil {
		w.Type = *f.Type
	}
	if f.Duration != nil {
		w.Duration = *f.Duration
	}
	if f.Calories != nil {
		calories := *f.Calories
		w.Calories = &calories
	}
	if f.Notes != nil {
		w.Notes = *f.Notes
	}
}
