package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atarik0/workout-tracker/pkg/client"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workout sessions with aggregate stats",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	workouts, err := apiClient().ListWorkouts(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s", userMessage(err))
	}

	if len(workouts) == 0 {
		fmt.Println("No workouts recorded yet.")
		return nil
	}

	for _, w := range workouts {
		printWorkout(w)
	}
	printTotals(workouts)
	return nil
}

func printWorkout(w client.Workout) {
	line := fmt.Sprintf("%s  %-8s  %3d min", w.Date.Format("2006-01-02"), w.Type, w.Duration)
	if w.Calories != nil {
		line += fmt.Sprintf("  %4d kcal", *w.Calories)
	}
	fmt.Printf("%s  [%s]\n", line, w.ID)
	if w.Notes != "" {
		fmt.Printf("    %s\n", w.Notes)
	}
}

// printTotals sums the three aggregates; missing calories count as zero.
func printTotals(workouts []client.Workout) {
	totalDuration := 0
	totalCalories := 0
	for _, w := range workouts {
		totalDuration += w.Duration
		if w.Calories != nil {
			totalCalories += *w.Calories
		}
	}
	fmt.Printf("\n%d workouts, %d min total, %d kcal total\n", len(workouts), totalDuration, totalCalories)
}
