// Package config loads settings from CHOREJAR_-prefixed environment
// variables, with sensible defaults for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	DBPath string

	// Logging
	LogLevel string

	// Photo storage (S3-compatible). Leave the bucket or credentials empty
	// to disable photo uploads.
	PhotoEndpoint  string
	PhotoBucket    string
	PhotoRegion    string
	PhotoAccessKey string
	PhotoSecretKey string
}

func Load() *Config {
	return &Config{
		Port:     getEnv("CHOREJAR_PORT", "8080"),
		DBPath:   getEnv("CHOREJAR_DB_PATH", "./data/chorejar.db"),
		LogLevel: getEnv("CHOREJAR_LOG_LEVEL", "info"),

		PhotoEndpoint:  getEnv("CHOREJAR_PHOTO_ENDPOINT", ""),
		PhotoBucket:    getEnv("CHOREJAR_PHOTO_BUCKET", ""),
		PhotoRegion:    getEnv("CHOREJAR_PHOTO_REGION", "auto"),
		PhotoAccessKey: getEnv("CHOREJAR_PHOTO_ACCESS_KEY", ""),
		PhotoSecretKey: getEnv("CHOREJAR_PHOTO_SECRET_KEY", ""),
	}
}

func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.PhotoBucket != "" && (c.PhotoAccessKey == "" || c.PhotoSecretKey == "") {
		return fmt.Errorf("photo storage requires both access key and secret key")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
