package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/handler"
	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/messaging"
	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/middleware"
	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/placeholder"
	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/repository"
	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/router"
	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/storage"
	"github.com/AchilleasB/mindease/wellness-service/internal/config"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/services"
	"github.com/AchilleasB/mindease/wellness-service/internal/observability/metrics"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)
	if cfg.EphemeralKeys {
		logger.Warn("no signing key found, using an ephemeral key pair; sessions will not survive a restart")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("storage ready", "backend", cfg.StorageBackend)

	healthDeps := map[string]handler.Pinger{"storage": store}

	var publisher ports.AppointmentEventPublisher = messaging.NewLogPublisher(logger)
	if cfg.RabbitMQURL != "" {
		broker, err := messaging.NewRabbitMQBroker(cfg.RabbitMQURL, cfg.NotificationQueue, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer broker.Close()
		publisher = broker
		healthDeps["messaging"] = broker
		logger.Info("publishing appointment notifications", "queue", cfg.NotificationQueue)
	}

	seeds, err := services.SeedAccounts(bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to seed accounts", "error", err)
		os.Exit(1)
	}

	accounts := repository.NewAccountRepository(store, logger, seeds...)
	sessions := repository.NewSessionRepository(store, logger).WithTTL(cfg.SessionTTL)
	appointments := repository.NewAppointmentRepository(store, logger)
	drafts := repository.NewBookingDraftRepository(store, logger)
	moods := repository.NewMoodRepository(store, logger)
	remote := placeholder.NewClient(cfg.PlaceholderBaseURL, cfg.PlaceholderTimeout, m, logger)

	authService := services.NewAuthService(accounts, sessions, cfg.JWTPrivateKey, cfg.JWTPublicKey, cfg.SessionTTL, m, logger)
	bookingService := services.NewBookingService(repository.NewTherapistDirectory(), appointments, drafts, publisher, m, logger)
	moodService := services.NewMoodService(moods, m, logger)
	blogService := services.NewBlogService(remote, logger)
	dashboardService := services.NewDashboardService(moodService, bookingService, blogService, logger)

	limiter := middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	go limiter.Run(ctx)

	r := router.New(&router.Config{
		Logger:      logger,
		Metrics:     m,
		Sessions:    middleware.NewSessionMiddleware(authService, logger),
		RateLimiter: limiter,

		Health:    handler.NewHealthHandler(cfg.Version, healthDeps, logger),
		Auth:      handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.CookieSecure, logger),
		Pages:     handler.NewPageHandler(services.NewContactService(remote, logger), logger),
		Dashboard: handler.NewDashboardHandler(dashboardService, logger),
		Mood:      handler.NewMoodHandler(moodService, logger),
		Booking:   handler.NewBookingHandler(bookingService, logger),
		Blog:      handler.NewBlogHandler(blogService, logger),
		Community: handler.NewCommunityHandler(services.NewCommunityService(remote, logger), logger),
		Admin:     handler.NewAdminHandler(services.NewAdminService(remote, logger), bookingService, logger),

		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server stopped")
}

// openStore connects the configured storage backend and returns a cleanup func.
func openStore(ctx context.Context, cfg *config.Config, logger *logging.Logger) (ports.KeyValueStore, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return storage.NewRedisStore(client, logger), func() { client.Close() }, nil

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		store := storage.NewPostgresStore(db, logger)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		go store.Run(ctx)
		return store, func() { db.Close() }, nil

	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}
