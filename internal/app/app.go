package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/StorefrontGo/internal/config"
	"github.com/utafrali/StorefrontGo/internal/event"
	handler "github.com/utafrali/StorefrontGo/internal/handler/http"
	"github.com/utafrali/StorefrontGo/internal/repository/memory"
	redisrepo "github.com/utafrali/StorefrontGo/internal/repository/redis"
	"github.com/utafrali/StorefrontGo/internal/service"
	"github.com/utafrali/StorefrontGo/pkg/health"
	pkgkafka "github.com/utafrali/StorefrontGo/pkg/kafka"
	"github.com/utafrali/StorefrontGo/pkg/middleware"
	"github.com/utafrali/StorefrontGo/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize tracing.
	tracingCfg := tracing.DefaultConfig("storefront")
	tracingCfg.Environment = cfg.Environment
	tracingCfg.OTLPEndpoint = cfg.OTLPEndpoint
	tracingCfg.SampleRate = cfg.TraceSampleRate
	tracingCfg.Enabled = cfg.TracingEnabled
	tracingShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Initialize Redis client (theme preference store).
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	cartRepo := memory.NewCartRepository()
	catalogRepo := memory.NewSeededCatalogRepository()
	orderRepo := memory.NewOrderRepository()
	themeTTL := time.Duration(cfg.ThemeTTLHours) * time.Hour
	preferenceRepo := redisrepo.NewPreferenceRepository(rdb, themeTTL)

	eventProducer := event.NewProducer(producer, logger)

	services := handler.Services{
		Cart:       service.NewCartService(cartRepo, eventProducer, logger),
		Catalog:    service.NewCatalogService(catalogRepo, logger),
		Checkout:   service.NewCheckoutService(cartRepo, orderRepo, eventProducer, logger),
		Preference: service.NewPreferenceService(preferenceRepo, logger),
	}

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	// CORS policy for the browser client.
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSOrigins
	corsCfg.Environment = cfg.Environment

	// HTTP router.
	router := handler.NewRouter(services, healthHandler, corsCfg, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	// Close Kafka producer.
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	// Close Redis client.
	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	// Flush pending trace spans.
	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
