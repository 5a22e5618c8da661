// @title Frameview API
// @version 1.0
// @description Local client daemon for a video frame-extraction service: submits videos, caches extracted frame references, and serves the gallery UI.
// @host localhost:8090
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"frameview/internal/config"
	"frameview/internal/daemon"
	_ "frameview/internal/docs"
	"frameview/internal/store"
)

func main() {
	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	)

	cfgPath := os.Getenv("FRAMEVIEW_CONFIG")
	if cfgPath == "" {
		cfgPath = "frameview.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	st := openStore(logger, cfg.DBPath)
	defer st.Close()

	server := daemon.NewServer(cfg, logger, st, nil)

	// Prune cached frames whose backing images are gone before serving.
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.ProbeTimeoutSeconds)*time.Second+30*time.Second)
	if err := server.ValidateCache(ctx); err != nil {
		logger.Warn("startup cache validation failed", "error", err)
	}
	cancel()

	logger.Info("starting frameview", "addr", cfg.ListenAddr, "backend", cfg.BackendURL, "db", cfg.DBPath)
	if err := http.ListenAndServe(cfg.ListenAddr, server.Routes()); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// openStore returns the durable store, falling back to in-memory caching
// when the database file cannot be opened.
func openStore(logger *slog.Logger, path string) store.FrameStore {
	bs := store.NewBoltStore(path)
	if _, err := bs.ListAll(context.Background()); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			logger.Warn("frame store unavailable, caching in memory only", "path", path, "error", err)
			_ = bs.Close()
			return store.NewMemoryStore()
		}
		logger.Warn("frame store check failed", "error", err)
	}
	return bs
}
