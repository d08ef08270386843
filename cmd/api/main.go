package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"example.com/fitplan/internal/api"
	"example.com/fitplan/internal/auth"
	"example.com/fitplan/internal/cache"
	"example.com/fitplan/internal/config"
	"example.com/fitplan/internal/domain"
	"example.com/fitplan/internal/engine"
	"example.com/fitplan/internal/events"
	"example.com/fitplan/internal/knowledge"
	"example.com/fitplan/internal/observability"
	"example.com/fitplan/internal/persistence/memory"
	persistence "example.com/fitplan/internal/persistence/postgres"
	httptransport "example.com/fitplan/internal/transport/http"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := buildCatalog(ctx, cfg)

	repo, closeRepo := buildRepository(ctx, cfg)
	defer closeRepo()

	var invalidator cache.Invalidator = cache.NoopInvalidator{}
	if cfg.CacheInvalidationURL != "" {
		invalidator = cache.NewHTTPInvalidator(cfg.CacheInvalidationURL, cfg.CacheInvalidationToken, cfg.HTTPTimeout)
		log.Printf("cache invalidator enabled -> %s", cfg.CacheInvalidationURL)
	}

	var publisher domain.Publisher = events.NoopPublisher{}
	if cfg.ProgramEventsTopic != "" && len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.ProgramEventsTopic)
		defer kp.Close()
		publisher = kp
		log.Printf("publishing program events to %s", cfg.ProgramEventsTopic)
	}

	service := domain.NewService(engine.New(catalog), repo, invalidator, publisher)
	handler := api.NewHandler(service, catalog, cfg.DefaultVariant)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	authMiddleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})

	root := corsHandler.Handler(httptransport.LogRequests(nil, authMiddleware.Wrap(mux)))

	log.Printf("fitplan api listening on %s (default variant %s)", cfg.HTTPAddress, cfg.DefaultVariant)
	if err := httptransport.Run(ctx, httptransport.DefaultServerConfig(cfg.HTTPAddress), root); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Println("fitplan api stopped")
}

func buildCatalog(ctx context.Context, cfg config.Config) *knowledge.Catalog {
	catalog := knowledge.NewCatalog()
	if cfg.DgraphURL != "" {
		source := knowledge.NewDgraphSource(cfg.DgraphURL, cfg.HTTPTimeout)
		n, err := source.LoadInto(ctx, catalog, cfg.CatalogLimit)
		if err != nil {
			log.Printf("dgraph catalog load failed, using built-in exercises: %v", err)
		} else {
			log.Printf("loaded %d exercises from dgraph at %s", n, cfg.DgraphURL)
		}
	}
	observability.RecordCatalogSize(catalog.Len())
	return catalog
}

func buildRepository(ctx context.Context, cfg config.Config) (domain.Repository, func()) {
	if cfg.PostgresURL == "" {
		log.Printf("POSTGRES_URL not set, using in-memory repository")
		return memory.NewRepository(), func() {}
	}
	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("postgres ping failed: %v", err)
	}
	log.Printf("using postgres repository")
	return persistence.NewRepository(pool), pool.Close
}
