package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workout-builder-service/internal/adapters/primary/http/handlers"
	"workout-builder-service/internal/adapters/primary/http/middleware"
	"workout-builder-service/internal/adapters/secondary/postgres"
	"workout-builder-service/internal/config"
	"workout-builder-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	config.ApplyLogger(cfg.Logger)

	pool, err := postgres.NewPool(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// Secondary Adapters (Output Ports - Repositories)
	exerciseRepo := postgres.NewExerciseRepository(pool)
	attrRepo := postgres.NewAttributeRepository(pool)

	// Core Services (Application Layer)
	opts := services.SelectionOptions{
		DefaultLimit:     cfg.Selection.DefaultLimit,
		MaxLimit:         cfg.Selection.MaxLimit,
		PoolMultiplier:   cfg.Selection.PoolMultiplier,
		MinPoolSize:      cfg.Selection.MinPoolSize,
		MinimumThreshold: cfg.Selection.MinimumThreshold,
		PrimaryRatio:     cfg.Selection.PrimaryRatio,
		MaxParallel:      cfg.Selection.MaxParallel,
	}
	selectionSvc := services.NewExerciseSelectionService(exerciseRepo, attrRepo, opts, nil)
	catalogSvc := services.NewCatalogService(exerciseRepo, attrRepo, nil)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(selectionSvc, catalogSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/workout-builder")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", healthz(pool))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthz(db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
