package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	RunCacheSize      int
	ReadHeaderTimeout time.Duration
	LogLevel          slog.Level
}

// FromEnv reads configuration from the environment, loading a .env file first
// if one is present. Existing env variables win over the file.
func FromEnv() Config {
	_ = godotenv.Load()

	to := 10 * time.Second
	if v := os.Getenv("HTTP_READ_HEADER_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		Port:              envOr("PORT", "8080"),
		RunCacheSize:      intOr("RUN_CACHE_SIZE", 128),
		ReadHeaderTimeout: to,
		LogLevel:          lvl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func intOr(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
