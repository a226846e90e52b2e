package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Base URL of the external analysis service
	AnalysisAPIURL string

	// Address the web UI listens on
	ListenAddr string

	// Timeout for outbound calls to the analysis service
	RequestTimeout time.Duration
}

func Load() *Config {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg := &Config{
		AnalysisAPIURL: "http://127.0.0.1:8000",
		ListenAddr:     ":8090",
		RequestTimeout: 30 * time.Second,
	}

	if v := os.Getenv("ANALYSIS_API_URL"); v != "" {
		cfg.AnalysisAPIURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.RequestTimeout = time.Duration(sec) * time.Second
		}
	}

	return cfg
}
