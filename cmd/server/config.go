package main

import (
	"fmt"

	"github.com/phrazzld/taskflow-api/internal/config"
)

// loadAppConfig reads settings through config.Load and tags any failure so
// startup errors name the stage that broke.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
