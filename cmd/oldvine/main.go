// Package main is the entry point for the Old Vine Hotel API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oldvine/internal/cache"
	"oldvine/internal/config"
	"oldvine/internal/database"
	"oldvine/internal/handlers"
	"oldvine/internal/middleware"
	"oldvine/internal/router"
	"oldvine/internal/session"
	"oldvine/internal/storage"
	"oldvine/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	sessionStore := session.NewStore(valkeyClient)
	apiCache := cache.NewAPICache(valkeyClient, cache.DefaultAPITTL)

	adminStore := store.NewAdminStore(db)
	contentStore := store.NewContentStore(db)
	roomStore := store.NewRoomStore(db)
	roomCategoryStore := store.NewRoomCategoryStore(db)
	galleryCategoryStore := store.NewGalleryCategoryStore(db)
	blogStore := store.NewBlogStore(db)
	bookingStore := store.NewBookingStore(db)
	mediaStore := store.NewMediaStore(db)
	contactStore := store.NewContactStore(db)
	settingsStore := store.NewSettingsStore(db)

	// S3-compatible object storage is optional; media uploads are
	// disabled without it.
	var storageClient *storage.Client
	if cfg.HasS3() {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	rateLimiter := middleware.NewRateLimiter(300, time.Minute)
	defer rateLimiter.Stop()

	r := router.New(router.Deps{
		Sessions:       sessionStore,
		RateLimiter:    rateLimiter,
		FrontendOrigin: cfg.FrontendOrigin,
		StaticDataDir:  cfg.StaticDataDir,

		Admin:      handlers.NewAdmin(sessionStore, adminStore, roomStore, roomCategoryStore, galleryCategoryStore, blogStore, bookingStore, mediaStore),
		Content:    handlers.NewContent(contentStore, apiCache),
		Rooms:      handlers.NewRooms(roomStore, apiCache),
		Categories: handlers.NewCategories(roomCategoryStore, galleryCategoryStore, apiCache),
		Blog:       handlers.NewBlog(blogStore, apiCache),
		Bookings:   handlers.NewBookings(bookingStore),
		Settings:   handlers.NewSettings(settingsStore, apiCache),
		Contact:    handlers.NewContact(contactStore),
		Media:      handlers.NewMedia(mediaStore, storageClient),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
