package main

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config controls parser behavior and logging for the CLI.
type Config struct {
	// Tolerant downgrades malformed endpoint origins to identity
	// transforms instead of failing the document.
	Tolerant bool `yaml:"tolerant"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{LogLevel: "info"}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
