// Command seed resets the workouts table and inserts sample sessions.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/atarik0/workout-tracker/internal/config"
	"github.com/atarik0/workout-tracker/internal/domain"
	persistence "github.com/atarik0/workout-tracker/internal/persistence/postgres"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := persistence.NewRepository(pool)

	if err := repo.Truncate(ctx); err != nil {
		log.Fatalf("failed to clear workouts: %v", err)
	}
	log.Printf("cleared existing workouts")

	for _, workout := range sampleWorkouts() {
		if err := repo.Create(ctx, workout); err != nil {
			log.Fatalf("failed to seed workout: %v", err)
		}
		log.Printf("seeded %s - %d min - %s", workout.Type, workout.Duration, workout.Date.Format("2006-01-02"))
	}
	log.Printf("seed completed")
}

func sampleWorkouts() []domain.Workout {
	now := time.Now().UTC()
	intPtr := func(v int) *int { return &v }
	date := func(value string) time.Time {
		d, err := time.Parse("2006-01-02", value)
		if err != nil {
			log.Fatalf("bad seed date %q: %v", value, err)
		}
		return d.UTC()
	}

	samples := []domain.Workout{
		{
			Date:     date("2024-01-15"),
			Type:     domain.TypeStrength,
			Duration: 45,
			Calories: intPtr(280),
			Notes:    "Upper body strength training - chest, shoulders, triceps",
		},
		{
			Date:     date("2024-01-16"),
			Type:     domain.TypeCardio,
			Duration: 30,
			Calories: intPtr(350),
			Notes:    "Morning run in the park, felt great!",
		},
		{
			Date:     date("2024-01-17"),
			Type:     domain.TypeMobility,
			Duration: 20,
			Calories: intPtr(80),
			Notes:    "Yoga session focusing on flexibility and relaxation",
		},
	}

	for i := range samples {
		samples[i].ID = uuid.NewString()
		samples[i].CreatedAt = now
		samples[i].UpdatedAt = now
	}
	return samples
}
