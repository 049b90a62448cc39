package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"lifecover/internal/adapters/http/handlers"
	"lifecover/internal/adapters/http/middleware"
	"lifecover/internal/adapters/http/routes"
	"lifecover/internal/core/services"
	"lifecover/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default command)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("❌ Failed to open storage", zap.Error(err))
		return err
	}
	defer store.close(log)

	hasher, err := password.NewHasher(cfg.Security.BcryptCost, cfg.Security.MaxConcurrentHashes)
	if err != nil {
		return fmt.Errorf("creating password hasher: %w", err)
	}

	// Initialize services
	authService := services.NewAuthService(store.users, hasher, cfg, log)
	recommendationService := services.NewRecommendationService(store.submissions, log)

	retention := services.NewRetentionService(store.store, cfg.Retention, log)
	if err := retention.Start(); err != nil {
		return err
	}
	defer retention.Stop()

	// Initialize handlers
	var cachePinger handlers.Pinger
	if store.redis != nil {
		cachePinger = store.redis
	}

	app := fiber.New(fiber.Config{
		AppName:      "lifecover API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})
	middleware.Setup(app, cfg)
	routes.Setup(app, &routes.Handlers{
		Health:         handlers.NewHealthHandler(cfg, cachePinger),
		Auth:           handlers.NewAuthHandler(authService, log.Named("auth")),
		Recommendation: handlers.NewRecommendationHandler(recommendationService, log.Named("recommendation")),
		Verifier:       authService,
	})

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		log.Info("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("❌ Error during shutdown", zap.Error(err))
		}
	}()

	log.Info("🚀 Server starting", zap.String("port", cfg.Port), zap.String("mode", cfg.AppMode))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("❌ Failed to start server", zap.Error(err))
		return err
	}

	log.Info("✅ Server stopped gracefully")
	return nil
}
