package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/grubdash/backend/internal/config"
	"github.com/Lixing-Zhang/grubdash/backend/internal/handlers"
	"github.com/Lixing-Zhang/grubdash/backend/internal/observability"
	"github.com/Lixing-Zhang/grubdash/backend/internal/repository"
	"github.com/Lixing-Zhang/grubdash/backend/internal/service"
	"github.com/Lixing-Zhang/grubdash/backend/pkg/logger"
)

const (
	serviceName = "grubdash-api"
	version     = "1.0.0"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting grubdash api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"tracing_exporter", cfg.Tracing.Exporter,
	)

	shutdownTracing, err := observability.InitTracing(context.Background(), serviceName, cfg.Tracing.Exporter)
	if err != nil {
		log.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	// Initialize stores
	ids := repository.UUIDGenerator{}
	dishStore := repository.NewDishStore(ids)
	orderStore := repository.NewOrderStore(ids)
	if cfg.SeedData {
		dishStore.Seed(repository.SeedDishes()...)
		orderStore.Seed(repository.SeedOrders()...)
		log.Info("seed data loaded", "dishes", dishStore.Len(), "orders", orderStore.Len())
	}

	// Initialize services
	dishService := service.NewDishService(dishStore)
	orderService := service.NewOrderService(orderStore)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, version, dishStore, orderStore)
	dishHandler := handlers.NewDishHandler(dishService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	router := handlers.NewRouter(handlers.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	}, healthHandler, dishHandler, orderHandler, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := shutdownTracing(ctx); err != nil {
		log.Error("failed to flush traces", "error", err)
	}

	log.Info("server stopped gracefully")
}
