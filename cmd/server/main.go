// Package main implements the entry point for the Streamly API server,
// a small REST service exposing user and payment resources backed by
// in-memory stores.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/streamly-api/internal/config"
	"github.com/phrazzld/streamly-api/internal/platform/logger"
)

// main is the entry point for the streamly-api server. It initializes
// configuration and logging, wires the application's dependencies, and
// starts the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components. Returns the application and any initialization
// error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, l), nil
}
