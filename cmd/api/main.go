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

	"github.com/Dan9191/fintrack/internal/cache"
	"github.com/Dan9191/fintrack/internal/config"
	"github.com/Dan9191/fintrack/internal/handler"
	"github.com/Dan9191/fintrack/internal/integrations/cbr"
	"github.com/Dan9191/fintrack/internal/middleware"
	"github.com/Dan9191/fintrack/internal/repository"
	"github.com/Dan9191/fintrack/internal/scheduler"
	"github.com/Dan9191/fintrack/internal/service"
	"github.com/Dan9191/fintrack/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to open storage: %v", err)
	}
	defer closeStore()

	rateCache, closeCache := openCache(ctx, cfg, logger)
	defer closeCache()

	// Initialize layers
	svc := service.NewService(store, logger, cfg)
	cbrClient := cbr.NewCBRClient(cfg, rateCache, logger)
	h := handler.NewHandler(svc, cbrClient, logger)

	var notifier scheduler.Notifier
	if cfg.EmailEnabled() {
		notifier = email.NewSender(cfg, logger)
	} else {
		logger.Warn("SMTP_HOST is not set, bill reminder emails are disabled")
	}
	jobs := scheduler.New(svc, notifier, cfg.ReminderDays, logger)
	if err := jobs.Start(cfg.SchedulerSpec); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	if cfg.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		defer limiter.Stop()
		r.Use(middleware.RateLimit(limiter))
	}
	h.Routes(r, middleware.Auth(svc))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Errorf("Server failed: %v", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	<-jobs.Stop().Done()
	logger.Info("Server exited")
}

func openStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (service.Store, func(), error) {
	if cfg.Storage == "memory" {
		logger.Warn("Using in-memory storage, data will not survive a restart")
		return repository.NewMemory(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := repository.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, func() { db.Close() }, nil
}

func openCache(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (cache.Cache, func()) {
	if cfg.RedisAddr == "" {
		return cache.NewMemory(), func() {}
	}
	rdb, err := cache.NewRedis(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warnf("Redis unavailable at %s, using in-memory cache: %v", cfg.RedisAddr, err)
		return cache.NewMemory(), func() {}
	}
	return rdb, func() { rdb.Close() }
}
