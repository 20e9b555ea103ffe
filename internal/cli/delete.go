package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout session permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if !deleteYes && !confirm(fmt.Sprintf("Delete workout %s? This cannot be undone. [y/N] ", args[0])) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := apiClient().DeleteWorkout(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("%s", userMessage(err))
	}
	fmt.Println("Workout deleted.")
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
