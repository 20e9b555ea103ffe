package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atarik0/workout-tracker/internal/api"
	"github.com/atarik0/workout-tracker/internal/config"
	"github.com/atarik0/workout-tracker/internal/domain"
	"github.com/atarik0/workout-tracker/internal/events"
	"github.com/atarik0/workout-tracker/internal/observability"
	"github.com/atarik0/workout-tracker/internal/persistence/memory"
	persistence "github.com/atarik0/workout-tracker/internal/persistence/postgres"
	httptransport "github.com/atarik0/workout-tracker/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded configuration from .env")
	}
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repo domain.Repository
	switch cfg.Store {
	case config.StoreMemory:
		repo = memory.NewRepository()
		log.Printf("using in-memory store")
	default:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		repo = persistence.NewRepository(pool)
	}

	var publisher domain.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("publishing workout events to %v", cfg.KafkaBrokers)
	}

	service := domain.NewService(repo, publisher, observability.Metrics{})

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	cors := api.CORS(cfg.CORSOrigin)
	chain := api.Instrument(api.RequestLogger(cors(mux)))

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, chain)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("workout tracker listening on %s (%s mode, CORS origin %s)",
			cfg.HTTPAddress, cfg.Environment, cfg.CORSOrigin)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
