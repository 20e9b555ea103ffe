package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/atarik0/workout-tracker/internal/domain"
)

const msgWorkoutNotFound = "Workout not found"

// writeDomainError is the single translation point between domain failures and
// HTTP responses. Anything it does not recognise becomes a 500 with a generic
// message; the cause is only logged server-side.
func writeDomainError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, domain.ErrWorkoutNotFound):
		writeError(w, http.StatusNotFound, msgWorkoutNotFound)
	default:
		log.Printf("unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Success:    false,
		Message:    message,
		StatusCode: status,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}
