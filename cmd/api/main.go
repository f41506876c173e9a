package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/timespan/internal/domain/usecase/timespan"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production || cfg.Logger.Format == "json")
	level, err := logger.ParseLevel(cfg.Logger.Level)
	if err != nil {
		appLogger.Warn("Unknown log level, using info", map[string]any{"level": cfg.Logger.Level})
	}
	appLogger.SetLevel(level)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	timeSpanService := timespan.NewTimeSpanService(tp, appLogger, cfg.TimeSpan.DefaultTimezone).
		WithMaxSpanYears(cfg.TimeSpan.MaxSpanYears)

	timeSpanHandler := handler.NewTimeSpanHandler(timeSpanService, appLogger)
	healthHandler := handler.NewHealthHandler(tp)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, timeSpanHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":            server.Addr,
			"env":             cfg.Environment,
			"defaultTimezone": cfg.TimeSpan.DefaultTimezone,
			"maxSpanYears":    cfg.TimeSpan.MaxSpanYears,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			_ = appLogger.Flush()
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
