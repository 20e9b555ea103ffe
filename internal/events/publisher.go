// Package events publishes workout mutation events to Kafka. Publishing is
// best effort: the API never fails a request because the broker is down.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/atarik0/workout-tracker/internal/domain"
)

// Topic carrying every workout mutation event.
const Topic = "workout_events"

// Event types set in the event_type message header.
const (
	EventWorkoutCreated = "workout.created"
	EventWorkoutUpdated = "workout.updated"
	EventWorkoutDeleted = "workout.deleted"
)

// WorkoutEvent is the payload for created/updated events.
type WorkoutEvent struct {
	WorkoutID  string    `json:"workout_id"`
	Date       time.Time `json:"date"`
	Type       string    `json:"type"`
	Duration   int       `json:"duration_min"`
	Calories   *int      `json:"calories,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// WorkoutDeletedEvent is the payload for deleted events.
type WorkoutDeletedEvent struct {
	WorkoutID  string    `json:"workout_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaPublisher lazily manages writers per topic.
type KafkaPublisher struct {
	brokers []string
	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		brokers: brokers,
		writers: make(map[string]*kafka.Writer),
	}
}

// WorkoutCreated implements domain.Publisher.
func (p *KafkaPublisher) WorkoutCreated(ctx context.Context, workout domain.Workout) error {
	return p.publish(ctx, EventWorkoutCreated, workout.ID, toEvent(workout))
}

// WorkoutUpdated implements domain.Publisher.
func (p *KafkaPublisher) WorkoutUpdated(ctx context.Context, workout domain.Workout) error {
	return p.publish(ctx, EventWorkoutUpdated, workout.ID, toEvent(workout))
}

// WorkoutDeleted implements domain.Publisher.
func (p *KafkaPublisher) WorkoutDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, EventWorkoutDeleted, id, WorkoutDeletedEvent{
		WorkoutID:  id,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType, key string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	writer := p.writerForTopic(Topic)
	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
}

func (p *KafkaPublisher) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

func toEvent(workout domain.Workout) WorkoutEvent {
	return WorkoutEvent{
		WorkoutID:  workout.ID,
		Date:       workout.Date,
		Type:       string(workout.Type),
		Duration:   workout.Duration,
		Calories:   workout.Calories,
		Notes:      workout.Notes,
		OccurredAt: workout.UpdatedAt,
	}
}
