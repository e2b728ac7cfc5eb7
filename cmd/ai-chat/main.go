package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finanzas-ai/internal/api"
	"finanzas-ai/internal/api/handlers"
	"finanzas-ai/internal/llm"
	"finanzas-ai/internal/metrics"
	"finanzas-ai/internal/service"
	"finanzas-ai/pkg/config"
	"finanzas-ai/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Finanzas AI Chat API
// @version 1.0
// @description Fina chat assistant and receipt OCR extraction for the Finanzas Familiares app

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting ai-chat service", zap.String("provider", cfg.AI.Provider))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// The provider client is shared by both modes and built on first use
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	generator := llm.NewLazy(func() (llm.Generator, error) {
		return llm.NewFromConfig(ctx, cfg, appLogger)
	})
	defer func(c io.Closer) {
		if err := c.Close(); err != nil {
			appLogger.Warn("Failed to close AI provider", zap.Error(err))
		}
	}(generator)

	instrumented := appMetrics.InstrumentGenerator(cfg.AI.Provider, generator)

	// Initialize services
	chatService := service.NewChatService(instrumented, &cfg.AI, appLogger)
	receiptService := service.NewReceiptService(instrumented, &cfg.AI, appLogger)

	// Initialize handlers
	aiChatHandler := handlers.NewAIChatHandler(chatService, receiptService, appMetrics, appLogger)

	// Setup router
	app := api.SetupRouter(aiChatHandler, registry, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
