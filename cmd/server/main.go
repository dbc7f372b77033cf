// Package main implements the entry point for the TaskFlow API server,
// which stores per-owner task lists and proposes tasks for a topic.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("taskflow-api: %v", err)
		os.Exit(1)
	}
}

// run wires configuration, logging and the application, then serves until
// the process receives SIGINT or SIGTERM or ctx is canceled.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider,
		"allow_anonymous_as_demo", cfg.Auth.AllowAnonymousAsDemo)

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
