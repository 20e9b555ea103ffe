// Package api exposes the HTTP surface of the workout tracker.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atarik0/workout-tracker/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux. The root pattern catches every
// unmatched route with a 404 envelope.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/workouts", h.workouts)
	mux.HandleFunc("/api/workouts/", h.workoutByID)
	mux.HandleFunc("/health", h.health)
	mux.HandleFunc("/stats", h.statsPage)
	mux.HandleFunc("/", routeNotFound)
}

func (h *Handler) workouts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listWorkouts(w, r)
	case http.MethodPost:
		h.createWorkout(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) workoutByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/workouts/")

	// A malformed identifier can never resolve to a record, so it is reported
	// the same way as a missing one.
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, msgWorkoutNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getWorkout(w, r, id)
	case http.MethodPut:
		h.updateWorkout(w, r, id)
	case http.MethodDelete:
		h.deleteWorkout(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.service.ListWorkouts(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	data := make([]WorkoutView, 0, len(workouts))
	for _, workout := range workouts {
		data = append(data, toWorkoutView(workout))
	}

	writeJSON(w, http.StatusOK, ListWorkoutsResponse{
		Success: true,
		Count:   len(data),
		Data:    data,
	})
}

func (h *Handler) getWorkout(w http.ResponseWriter, r *http.Request, id string) {
	workout, err := h.service.GetWorkout(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, WorkoutResponse{Success: true, Data: toWorkoutView(*workout)})
}

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	var req WorkoutPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Unable to parse request body")
		return
	}

	input, err := req.ToCreateInput()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	workout, err := h.service.CreateWorkout(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, WorkoutResponse{Success: true, Data: toWorkoutView(*workout)})
}

func (h *Handler) updateWorkout(w http.ResponseWriter, r *http.Request, id string) {
	var req WorkoutPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Unable to parse request body")
		return
	}

	fields, err := req.ToUpdateFields()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	workout, err := h.service.UpdateWorkout(r.Context(), id, fields)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, WorkoutResponse{Success: true, Data: toWorkoutView(*workout)})
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.service.DeleteWorkout(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found")
}

// WorkoutPayload is the request body for create and update. Pointer fields
// distinguish absent keys from zero values, which is what makes partial
// updates possible.
type WorkoutPayload struct {
	Date     *string `json:"date"`
	Type     *string `json:"type"`
	Duration *int    `json:"duration"`
	Calories *int    `json:"calories"`
	Notes    *string `json:"notes"`
}

// ToCreateInput validates the payload for creation, gathering every field
// failure into one message.
func (p WorkoutPayload) ToCreateInput() (domain.CreateWorkoutInput, error) {
	var messages []string

	if p.Date == nil || strings.TrimSpace(*p.Date) == "" ||
		p.Type == nil || strings.TrimSpace(*p.Type) == "" ||
		p.Duration == nil {
		messages = append(messages, domain.MsgRequiredFields)
	}

	var input domain.CreateWorkoutInput

	if p.Date != nil && strings.TrimSpace(*p.Date) != "" {
		date, err := parseDate(*p.Date)
		if err != nil {
			messages = append(messages, domain.MsgInvalidDate)
		} else {
			input.Date = date
		}
	}
	if p.Type != nil && strings.TrimSpace(*p.Type) != "" {
		workoutType, err := domain.ParseWorkoutType(*p.Type)
		if err != nil {
			messages = append(messages, domain.MsgInvalidType)
		} else {
			input.Type = workoutType
		}
	}
	if p.Duration != nil {
		if *p.Duration < domain.MinDurationMinutes {
			messages = append(messages, domain.MsgDurationTooShort)
		}
		input.Duration = *p.Duration
	}
	if p.Calories != nil {
		if *p.Calories < 0 {
			messages = append(messages, domain.MsgCaloriesNegative)
		}
		input.Calories = p.Calories
	}
	if p.Notes != nil {
		if len(*p.Notes) > domain.MaxNotesLength {
			messages = append(messages, domain.MsgNotesTooLong)
		}
		input.Notes = *p.Notes
	}

	if len(messages) > 0 {
		return domain.CreateWorkoutInput{}, domain.NewValidationError(messages...)
	}
	return input, nil
}

// ToUpdateFields converts the payload into a partial update. Range rules on
// the present fields are re-checked by the domain layer.
func (p WorkoutPayload) ToUpdateFields() (domain.UpdateFields, error) {
	var fields domain.UpdateFields

	if p.Date != nil {
		date, err := parseDate(*p.Date)
		if err != nil {
			return domain.UpdateFields{}, domain.NewValidationError(domain.MsgInvalidDate)
		}
		fields.Date = &date
	}
	if p.Type != nil {
		workoutType := domain.WorkoutType(*p.Type)
		fields.Type = &workoutType
	}
	fields.Duration = p.Duration
	fields.Calories = p.Calories
	fields.Notes = p.Notes

	return fields, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		return date.UTC(), nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return date.UTC(), nil
}

// WorkoutView is the JSON shape of a workout record.
type WorkoutView struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Duration  int       `json:"duration"`
	Calories  *int      `json:"calories,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListWorkoutsResponse is the envelope for the list endpoint.
type ListWorkoutsResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []WorkoutView `json:"data"`
}

// WorkoutResponse is the envelope for single-record endpoints.
type WorkoutResponse struct {
	Success bool        `json:"success"`
	Data    WorkoutView `json:"data"`
}

// HealthResponse is the envelope for the health endpoint.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the envelope for every failure.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func toWorkoutView(workout domain.Workout) WorkoutView {
	return WorkoutView{
		ID:        workout.ID,
		Date:      workout.Date,
		Type:      string(workout.Type),
		Duration:  workout.Duration,
		Calories:  workout.Calories,
		Notes:     workout.Notes,
		CreatedAt: workout.CreatedAt,
		UpdatedAt: workout.UpdatedAt,
	}
}
