// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the portfolio API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/router"
	"portfolio/internal/session"
	"portfolio/internal/storage"
	"portfolio/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Text logs in development, JSON everywhere else.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))

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

	// Seed the development admin (no-op if users already exist).
	if cfg.IsDev() {
		if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Valkey backs sessions, the response cache and the shared rate limiter.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	sessionStore := session.NewStore(valkeyClient, cfg.SecureCookies())

	userStore := store.NewUserStore(db)
	caseStudyStore := store.NewCaseStudyStore(db)
	categoryStore := store.NewCategoryStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	clientLogoStore := store.NewClientLogoStore(db)
	pixelStore := store.NewPixelSettingsStore(db)
	mediaStore := store.NewMediaStore(db)

	// Object storage is optional; without it uploads answer 503.
	var objects handlers.ObjectStore
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		objects = storageClient
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	var limiter, loginLimiter middleware.Limiter
	switch cfg.RateLimitBackend {
	case "memory":
		ml := middleware.NewMemoryLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		defer ml.Stop()
		ll := middleware.NewMemoryLimiter(cfg.LoginRateLimit, cfg.RateLimitWindow)
		defer ll.Stop()
		limiter, loginLimiter = ml, ll
	default:
		limiter = middleware.NewValkeyLimiter(valkeyClient, cfg.RateLimitRequests, cfg.RateLimitWindow)
		loginLimiter = middleware.NewValkeyLimiter(valkeyClient, cfg.LoginRateLimit, cfg.RateLimitWindow)
	}

	responseCache := cache.NewResponseCache(valkeyClient, cfg.CacheTTL)

	adminHandlers := handlers.NewAdmin(handlers.AdminDeps{
		CaseStudies:  caseStudyStore,
		Categories:   categoryStore,
		Testimonials: testimonialStore,
		ClientLogos:  clientLogoStore,
		Pixels:       pixelStore,
		Media:        mediaStore,
		Objects:      objects,
		Cache:        responseCache,
	})
	authHandlers := handlers.NewAuth(userStore, sessionStore)
	publicHandlers := handlers.NewPublic(handlers.PublicDeps{
		CaseStudies:  caseStudyStore,
		Categories:   categoryStore,
		Testimonials: testimonialStore,
		ClientLogos:  clientLogoStore,
		Pixels:       pixelStore,
	})

	r := router.New(router.Deps{
		Admin:         adminHandlers,
		Auth:          authHandlers,
		Public:        publicHandlers,
		Sessions:      sessionStore,
		Users:         userStore,
		Cache:         responseCache,
		Limiter:       limiter,
		LoginLimiter:  loginLimiter,
		Origins:       cfg.Origins(),
		SecureCookies: cfg.SecureCookies(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		slog.Error("server failed to start", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
