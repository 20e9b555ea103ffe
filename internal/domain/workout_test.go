package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseWorkoutType(t *testing.T) {
	for _, valid := range []string{"strength", "cardio", "mobility", "other", " Cardio "} {
		parsed, err := ParseWorkoutType(valid)
		require.NoError(t, err, valid)
		require.NotEmpty(t, parsed)
	}

	_, err := ParseWorkoutType("swimming")
	require.Error(t, err)
	require.Equal(t, MsgInvalidType, err.Error())
}

func TestValidateConstraints(t *testing.T) {
	base := Workout{
		Date:     time.Now().UTC(),
		Type:     TypeStrength,
		Duration: 45,
	}

	require.NoError(t, ValidateConstraints(base))

	short := base
	short.Duration = 0
	err := ValidateConstraints(short)
	require.Error(t, err)
	require.Contains(t, err.Error(), MsgDurationTooShort)

	negative := base
	burned := -5
	negative.Calories = &burned
	err = ValidateConstraints(negative)
	require.Error(t, err)
	require.Contains(t, err.Error(), MsgCaloriesNegative)

	long := base
	long.Notes = strings.Repeat("x", MaxNotesLength+1)
	err = ValidateConstraints(long)
	require.Error(t, err)
	require.Contains(t, err.Error(), MsgNotesTooLong)
}

func TestValidateConstraintsJoinsMessages(t *testing.T) {
	burned := -1
	bad := Workout{
		Type:     "swimming",
		Duration: 0,
		Calories: &burned,
	}

	err := ValidateConstraints(bad)
	require.Error(t, err)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Len(t, validation.Messages, 3)
	require.Equal(t, strings.Join(validation.Messages, ", "), err.Error())
}

func TestUpdateFieldsValidate(t *testing.T) {
	require.NoError(t, UpdateFields{}.Validate())

	duration := 30
	calories := 200
	require.NoError(t, UpdateFields{Duration: &duration, Calories: &calories}.Validate())

	zero := 0
	err := UpdateFields{Duration: &zero}.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), MsgDurationTooShort)

	negative := -1
	err = UpdateFields{Calories: &negative}.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), MsgCaloriesNegative)

	badType := WorkoutType("swimming")
	err = UpdateFields{Type: &badType}.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), MsgInvalidType)
}

func TestUpdateFieldsApply(t *testing.T) {
	original := Workout{
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:     TypeStrength,
		Duration: 45,
		Notes:    "leg day",
	}

	duration := 60
	calories := 400
	fields := UpdateFields{Duration: &duration, Calories: &calories}

	updated := original
	fields.Apply(&updated)

	require.Equal(t, 60, updated.Duration)
	require.NotNil(t, updated.Calories)
	require.Equal(t, 400, *updated.Calories)
	require.Equal(t, original.Date, updated.Date)
	require.Equal(t, original.Type, updated.Type)
	require.Equal(t, original.Notes, updated.Notes)
}
