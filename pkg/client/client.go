// Package client is a typed wrapper around the workout tracker REST API.
// Every non-2xx response surfaces as *APIError so callers can tell
// user-correctable validation failures apart from transport problems.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const fallbackMessage = "Something went wrong"

// Workout mirrors the server's record shape.
type Workout struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Duration  int       `json:"duration"`
	Calories  *int      `json:"calories,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateWorkout is the payload for creating a record. Date uses the
// YYYY-MM-DD form the API accepts.
type CreateWorkout struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	Calories *int   `json:"calories,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateWorkout carries a partial update; nil fields are not sent.
type UpdateWorkout struct {
	Date     *string `json:"date,omitempty"`
	Type     *string `json:"type,omitempty"`
	Duration *int    `json:"duration,omitempty"`
	Calories *int    `json:"calories,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// APIError carries the server's message and status code for any non-2xx
// response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Client issues the five REST calls against a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a Client. httpClient may be nil.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
}

// ListWorkouts fetches every workout, most recent date first.
func (c *Client) ListWorkouts(ctx context.Context) ([]Workout, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/workouts", nil)
	if err != nil {
		return nil, err
	}
	var workouts []Workout
	if err := json.Unmarshal(env.Data, &workouts); err != nil {
		return nil, fmt.Errorf("decode workouts: %w", err)
	}
	return workouts, nil
}

// GetWorkout fetches one workout by id.
func (c *Client) GetWorkout(ctx context.Context, id string) (*Workout, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/workouts/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeWorkout(env.Data)
}

// CreateWorkout submits a new record and returns the persisted version.
func (c *Client) CreateWorkout(ctx context.Context, workout CreateWorkout) (*Workout, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/workouts", workout)
	if err != nil {
		return nil, err
	}
	return decodeWorkout(env.Data)
}

// UpdateWorkout applies a partial update and returns the updated record.
func (c *Client) UpdateWorkout(ctx context.Context, id string, update UpdateWorkout) (*Workout, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/workouts/"+id, update)
	if err != nil {
		return nil, err
	}
	return decodeWorkout(env.Data)
}

// DeleteWorkout removes a record permanently.
func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/workouts/"+id, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return &envelope{Success: true}, nil
	}

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallbackMessage
		if decodeErr == nil && env.Message != "" {
			message = env.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return &env, nil
}

func decodeWorkout(raw json.RawMessage) (*Workout, error) {
	var workout Workout
	if err := json.Unmarshal(raw, &workout); err != nil {
		return nil, fmt.Errorf("decode workout: %w", err)
	}
	return &workout, nil
}
