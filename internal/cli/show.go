package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single workout session",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	workout, err := apiClient().GetWorkout(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("%s", userMessage(err))
	}
	printWorkout(*workout)
	return nil
}
