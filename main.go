package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"certgen/api-gateway/config"
	"certgen/api-gateway/handlers"
	"certgen/api-gateway/routes"
)

// @title Certificate Generator API
// @version 1.0
// @description Stores certificate templates and composes certificate data for client-side rendering.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.InitLogger(cfg.LogLevel)

	st, err := config.OpenStore(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize document store: %v", err)
	}

	app := routes.NewApp(handlers.NewApplicationHandler(st, logger), logger)

	go func() {
		logger.Infof("Starting Certificate Generator API on port %s...", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down Certificate Generator API...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	if err := st.Close(); err != nil {
		logger.Errorf("Closing document store failed: %v", err)
	}
	logger.Info("Certificate Generator API shut down gracefully.")
}
