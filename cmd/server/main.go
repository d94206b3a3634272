package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/mmmlab/whatif/internal/config"
	"github.com/mmmlab/whatif/internal/httpx"
	"github.com/mmmlab/whatif/internal/store"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	st := store.NewMemoryStore(cfg.RunCacheSize)
	r := httpx.NewRouter(logger, st)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
