// Package cli implements the workout tracker command-line client. It drives
// the same create/list/edit/delete flows as the web form, including
// client-side validation that mirrors the server rules.
package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/atarik0/workout-tracker/internal/config"
	"github.com/atarik0/workout-tracker/pkg/client"
)

var rootCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Record and review training sessions",
	Long: `workouts is a command-line client for the workout tracker API.
Sessions are recorded with a date, type, duration, optional calories and notes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}

func apiClient() *client.Client {
	cfg := config.Load()
	return client.New(cfg.APIBaseURL, &http.Client{Timeout: 30 * time.Second})
}

// userMessage unwraps an API error so the server's message is shown instead
// of a Go error chain. Transport failures keep their full error text.
func userMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
