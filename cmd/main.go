package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/config"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/handlers"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/jwt"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/media"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/middlewares"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/migrations"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/repositories"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/services"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Travel Wishlist API
// @version 1.0.0
// @description Personal travel wishlist: destinations with photos, trip plans with budgets and itineraries
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// api bundles what the router needs.
type api struct {
	auth         *services.AuthService
	destinations *services.DestinationService
	tripPlans    *services.TripPlanService
	tokener      middlewares.Tokener
	db           handlers.Pinger
	uploads      *media.LocalStorage // nil unless the local media backend is used
	registry     *prometheus.Registry
}

// run initializes the logger, database, cache, event writer, media storage
// and HTTP server. It sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DB.URL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)

	if err := migrations.Migrate(db.DB); err != nil {
		return err
	}

	// Optional Redis cache
	var cache services.DestinationCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewDestinationCacheRepository(rdb, cfg.Redis.CacheTTL)
		logger.Log.Infow("destination cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	}

	// Optional Kafka activity events
	var writer services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.Kafka.BatchTimeout,
			Async:        true,
			Completion: func(msgs []kafka.Message, err error) {
				if err != nil {
					logger.Log.Errorw("Failed to deliver activity events", "count", len(msgs), "error", err)
				}
			},
		}
		defer kw.Close()
		writer = kw
		logger.Log.Infow("activity events enabled", "brokers", strings.Join(cfg.Kafka.Brokers, ","), "topic", cfg.Kafka.Topic)
	}

	storage, err := media.New(ctx, cfg.Media, cfg.S3)
	if err != nil {
		return err
	}
	uploads, _ := storage.(*media.LocalStorage)

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration),
	)
	validator := validation.New()
	publisher := services.NewActivityPublisher(writer, services.WithPublishTimeout(cfg.Kafka.PublishTimeout))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	destinationRepo := repositories.NewDestinationRepository(db)
	tripPlanRepo := repositories.NewTripPlanRepository(db)

	// Initialize services
	destinationService := services.NewDestinationService(destinationRepo, cache, storage, validator, publisher, cfg.Media.MaxFiles)
	deps := api{
		auth:         services.NewAuthService(userReadRepo, userWriteRepo, tokens, validator, publisher),
		destinations: destinationService,
		tripPlans:    services.NewTripPlanService(tripPlanRepo, destinationRepo, validator, publisher),
		tokener:      tokens,
		db:           db,
		uploads:      uploads,
		registry:     prometheus.NewRegistry(),
	}
	deps.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           newRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires middlewares and routes.
func newRouter(cfg *config.Config, deps api) http.Handler {
	metrics := middlewares.NewMetrics(deps.registry)
	limiter := middlewares.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	maxUpload := cfg.Media.MaxUploadBytes

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/auth/register", handlers.NewRegisterHandler(deps.auth))
			r.Post("/auth/login", handlers.NewLoginHandler(deps.auth))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(deps.tokener))

			r.Get("/auth/me", handlers.NewProfileHandler(deps.auth))
			r.Put("/auth/update", handlers.NewUpdateProfileHandler(deps.auth))

			r.Route("/destinations", func(r chi.Router) {
				r.Get("/", handlers.NewListDestinationsHandler(deps.destinations))
				r.Post("/", handlers.NewCreateDestinationHandler(deps.destinations, maxUpload))
				r.Get("/{id}", handlers.NewGetDestinationHandler(deps.destinations))
				r.Put("/{id}", handlers.NewUpdateDestinationHandler(deps.destinations, maxUpload))
				r.Delete("/{id}", handlers.NewDeleteDestinationHandler(deps.destinations))

				updatePlan := handlers.NewUpdateDestinationPlanHandler(deps.destinations)
				r.Get("/{id}/plan", handlers.NewGetDestinationPlanHandler(deps.destinations))
				r.Put("/{id}/plan", updatePlan)
				r.Post("/{id}/plan", updatePlan)
			})

			r.Route("/tripplans", func(r chi.Router) {
				r.Get("/", handlers.NewListTripPlansHandler(deps.tripPlans))
				r.Post("/", handlers.NewCreateTripPlanHandler(deps.tripPlans))
				r.Get("/{id}", handlers.NewGetTripPlanHandler(deps.tripPlans))
				r.Put("/{id}", handlers.NewUpdateTripPlanHandler(deps.tripPlans))
				r.Delete("/{id}", handlers.NewDeleteTripPlanHandler(deps.tripPlans))
			})
		})
	})

	if deps.uploads != nil {
		prefix := "/" + deps.uploads.Prefix()
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(deps.uploads.Dir()))))
	}

	r.Handle("/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", handlers.NewHealthHandler(deps.db))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr())),
	))

	return r
}
