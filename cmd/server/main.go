package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/config"
	"github.com/Bossax/creagy-project-tracker/internal/analytics"
	"github.com/Bossax/creagy-project-tracker/internal/cache"
	"github.com/Bossax/creagy-project-tracker/internal/handler"
	"github.com/Bossax/creagy-project-tracker/internal/httpserver"
	"github.com/Bossax/creagy-project-tracker/internal/repository"
	"github.com/Bossax/creagy-project-tracker/pkg/db"
	"github.com/Bossax/creagy-project-tracker/pkg/logger"
	"github.com/Bossax/creagy-project-tracker/pkg/mq"
	appredis "github.com/Bossax/creagy-project-tracker/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting project tracker...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("server_port", cfg.Server.Port),
	)

	// Schema and reference-data migrations
	if err := db.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations applied")

	// DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis cache for derived analytics. Optional: without an address
	// the service derives on every request.
	var analyticsCache *cache.AnalyticsCache
	if cfg.Redis.Addr != "" {
		rdb := appredis.NewRedisClient(cfg.Redis)
		analyticsCache = cache.NewAnalyticsCache(rdb, 5*time.Minute, log)
		log.Info("Analytics cache enabled", zap.String("redis_addr", cfg.Redis.Addr))
	} else {
		analyticsCache = cache.NewAnalyticsCache(nil, 0, log)
		log.Warn("REDIS_ADDR not set; analytics caching disabled")
	}

	// Event publisher. Optional: a nil publisher is a no-op.
	var publisher *mq.Publisher
	if cfg.MQ.URL != "" {
		publisher, err = mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Fatal("Failed to init MQ publisher", zap.Error(err))
		}
		defer publisher.Close()
		log.Info("MQ publisher connected", zap.String("exchange", mq.ExchangeName))
	} else {
		log.Warn("MQ_URL not set; domain events disabled")
	}

	employeeRepo := repository.NewEmployeeRepository(dbConn, log)
	projectRepo := repository.NewProjectRepository(dbConn, log)
	taskRepo := repository.NewTaskRepository(dbConn, log)
	assignmentRepo := repository.NewAssignmentRepository(dbConn, log)
	referenceRepo := repository.NewReferenceRepository(dbConn, log)

	analyticsService := analytics.NewService(projectRepo, taskRepo, assignmentRepo, referenceRepo, log)

	handlers := httpserver.Handlers{
		Auth:      handler.NewAuthHandler(employeeRepo, cfg.JWT.Secret, log),
		Reference: handler.NewReferenceHandler(referenceRepo, employeeRepo, log),
		Project:   handler.NewProjectHandler(projectRepo, taskRepo, referenceRepo, publisher, log),
		Task:      handler.NewTaskHandler(projectRepo, taskRepo, publisher, analyticsCache, log),
		Analytics: handler.NewAnalyticsHandler(analyticsService, analyticsCache, log),
		Report:    handler.NewReportHandler(projectRepo, taskRepo, log),
	}

	router := httpserver.NewRouter(handlers, log, dbConn, cfg.JWT.Secret)

	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("Shutdown complete")
}
