package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"

	"example.com/fitplan/internal/cache"
	"example.com/fitplan/internal/config"
	"example.com/fitplan/internal/consumer"
	"example.com/fitplan/internal/domain"
	"example.com/fitplan/internal/engine"
	"example.com/fitplan/internal/events"
	"example.com/fitplan/internal/knowledge"
	"example.com/fitplan/internal/observability"
	"example.com/fitplan/internal/persistence/memory"
	persistence "example.com/fitplan/internal/persistence/postgres"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsSrv := &http.Server{Addr: cfg.MetricsAddress, Handler: promhttp.Handler()}
	go func() {
		log.Printf("questionnaire consumer metrics listening on %s", cfg.MetricsAddress)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()

	catalog := knowledge.NewCatalog()
	if cfg.DgraphURL != "" {
		if _, err := knowledge.NewDgraphSource(cfg.DgraphURL, cfg.HTTPTimeout).LoadInto(ctx, catalog, cfg.CatalogLimit); err != nil {
			log.Printf("dgraph catalog load failed, using built-in exercises: %v", err)
		}
	}
	observability.RecordCatalogSize(catalog.Len())

	var repo domain.Repository = memory.NewRepository()
	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		repo = persistence.NewRepository(pool)
	} else {
		log.Printf("POSTGRES_URL not set, computed programs are kept in memory only")
	}

	var invalidator cache.Invalidator = cache.NoopInvalidator{}
	if cfg.CacheInvalidationURL != "" {
		invalidator = cache.NewHTTPInvalidator(cfg.CacheInvalidationURL, cfg.CacheInvalidationToken, cfg.HTTPTimeout)
	}

	var publisher domain.Publisher = events.NoopPublisher{}
	if cfg.ProgramEventsTopic != "" {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.ProgramEventsTopic)
		defer kp.Close()
		publisher = kp
	}

	service := domain.NewService(engine.New(catalog), repo, invalidator, publisher)
	handler := consumer.NewQuestionnaireHandler(service, cfg.DefaultVariant)
	var wg sync.WaitGroup

	for _, topic := range cfg.ConsumerTopics {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.KafkaBrokers,
			GroupID:        cfg.ConsumerGroup,
			Topic:          topic,
			MinBytes:       1e3,
			MaxBytes:       10e6,
			CommitInterval: time.Second,
		})
		proc := consumer.NewProcessor(reader, handler)

		wg.Add(1)
		go func(tp string, r *kafka.Reader) {
			defer wg.Done()
			defer r.Close()
			if err := proc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("consumer stopped with error (topic=%s): %v", tp, err)
			}
		}(topic, reader)
	}

	<-ctx.Done()
	log.Println("questionnaire consumer shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics shutdown error: %v", err)
	}

	wg.Wait()
}
