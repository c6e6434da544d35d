package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort          = "3000"
	defaultMaxTextLength = 5000
)

type ServerConfig struct {
	Port          string
	MaxTextLength int
	StaticDir     string
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	maxTextLength := defaultMaxTextLength
	if raw := os.Getenv("MAX_TEXT_LENGTH"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("MAX_TEXT_LENGTH must be a positive integer, got %q", raw)
		}
		maxTextLength = parsed
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "public"
	}

	return &ServerConfig{
		Port:          port,
		MaxTextLength: maxTextLength,
		StaticDir:     staticDir,
	}, nil
}
