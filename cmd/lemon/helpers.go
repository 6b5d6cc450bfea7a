package main

import (
	"fmt"
	"path/filepath"

	"github.com/at-ishikawa/lemon/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func wordCloudPath(cfg *config.Config) string {
	return filepath.Join(cfg.Media.DocumentsDirectory, cfg.WordCloud.OutputFilename)
}
