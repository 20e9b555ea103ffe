package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/atarik0/workout-tracker/internal/domain"
	"github.com/atarik0/workout-tracker/pkg/client"
)

var (
	addDate     string
	addType     string
	addDuration int
	addCalories int
	addNotes    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new workout session",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", time.Now().Format("2006-01-02"), "Session date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addType, "type", string(domain.TypeStrength), "Session type: strength, cardio, mobility or other")
	addCmd.Flags().IntVar(&addDuration, "duration", 0, "Duration in minutes")
	addCmd.Flags().IntVar(&addCalories, "calories", -1, "Calories burned (optional)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-form notes (optional)")
	_ = addCmd.MarkFlagRequired("duration")
}

func runAdd(cmd *cobra.Command, args []string) error {
	draft := draft{
		Date:     addDate,
		Type:     addType,
		Duration: addDuration,
		Notes:    addNotes,
	}
	if cmd.Flags().Changed("calories") {
		draft.Calories = &addCalories
	}

	// Validate locally before any network round-trip, with the same rules
	// and messages the server applies.
	if err := draft.validate(); err != nil {
		return err
	}

	payload := client.CreateWorkout{
		Date:     draft.Date,
		Type:     draft.Type,
		Duration: draft.Duration,
		Calories: draft.Calories,
		Notes:    draft.Notes,
	}

	saved, err := apiClient().CreateWorkout(cmd.Context(), payload)
	if err != nil {
		return fmt.Errorf("%s", userMessage(err))
	}

	fmt.Println("Workout saved:")
	printWorkout(*saved)
	return nil
}

// draft holds form input before submission.
type draft struct {
	Date     string
	Type     string
	Duration int
	Calories *int
	Notes    string
}

// validate mirrors the server-side rules exactly.
func (d draft) validate() error {
	var messages []string

	if strings.TrimSpace(d.Date) == "" {
		messages = append(messages, domain.MsgRequiredFields)
	} else if _, err := time.Parse("2006-01-02", d.Date); err != nil {
		messages = append(messages, domain.MsgInvalidDate)
	}
	if _, err := domain.ParseWorkoutType(d.Type); err != nil {
		messages = append(messages, domain.MsgInvalidType)
	}
	if d.Duration < domain.MinDurationMinutes {
		messages = append(messages, domain.MsgDurationTooShort)
	}
	if d.Calories != nil && *d.Calories < 0 {
		messages = append(messages, domain.MsgCaloriesNegative)
	}
	if len(d.Notes) > domain.MaxNotesLength {
		messages = append(messages, domain.MsgNotesTooLong)
	}

	if len(messages) > 0 {
		return domain.NewValidationError(messages...)
	}
	return nil
}
