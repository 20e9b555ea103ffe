package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atarik0/workout-tracker/internal/domain"
	"github.com/atarik0/workout-tracker/pkg/client"
)

var (
	editDuration int
	editCalories int
	editNotes    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit duration, calories or notes of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().IntVar(&editDuration, "duration", 0, "New duration in minutes")
	editCmd.Flags().IntVar(&editCalories, "calories", 0, "New calories burned")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "New notes")
}

func runEdit(cmd *cobra.Command, args []string) error {
	// Only flags the user actually set are submitted, so untouched fields
	// keep their stored values.
	var update client.UpdateWorkout
	var messages []string

	if cmd.Flags().Changed("duration") {
		if editDuration < domain.MinDurationMinutes {
			messages = append(messages, domain.MsgDurationTooShort)
		}
		update.Duration = &editDuration
	}
	if cmd.Flags().Changed("calories") {
		if editCalories < 0 {
			messages = append(messages, domain.MsgCaloriesNegative)
		}
		update.Calories = &editCalories
	}
	if cmd.Flags().Changed("notes") {
		if len(editNotes) > domain.MaxNotesLength {
			messages = append(messages, domain.MsgNotesTooLong)
		}
		update.Notes = &editNotes
	}

	if len(messages) > 0 {
		return domain.NewValidationError(messages...)
	}
	if update.Duration == nil && update.Calories == nil && update.Notes == nil {
		return fmt.Errorf("nothing to update: set --duration, --calories or --notes")
	}

	updated, err := apiClient().UpdateWorkout(cmd.Context(), args[0], update)
	if err != nil {
		return fmt.Errorf("%s", userMessage(err))
	}

	fmt.Println("Workout updated:")
	printWorkout(*updated)
	return nil
}
