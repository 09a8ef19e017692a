package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"problemhub/catalog/internal/config"
	"problemhub/catalog/internal/handlers"
	"problemhub/catalog/internal/middlewares"
	"problemhub/catalog/internal/oss"
	"problemhub/catalog/internal/repositories"
	"problemhub/catalog/internal/routers"
	"problemhub/catalog/internal/search"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	store, err := oss.New(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	if err != nil {
		logger.Fatal("failed to create object store client", zap.Error(err))
	}

	searchClient, err := search.NewClient(cfg.ElasticsearchURL, cfg.ElasticsearchUsername, cfg.ElasticsearchPassword)
	if err != nil {
		logger.Fatal("failed to create search client", zap.Error(err))
	}

	problemRepo := &repositories.ProblemRepository{DB: db}
	problemHandler := handlers.NewProblemHandler(problemRepo, store, logger)
	searchHandler := handlers.NewSearchHandler(searchClient, logger)
	healthHandler := handlers.NewHealthHandler(db)

	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	router.Use(middlewares.Metrics)

	router.Get("/", func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte("Hello World!"))
	})
	router.Handle("/metrics", promhttp.Handler())

	routers.ProblemRoutes(router, problemHandler)
	routers.SearchRoutes(router, searchHandler)
	routers.HealthRoutes(router, healthHandler)

	// HTTP server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Catalog service starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Catalog service shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Catalog service exited")
}
