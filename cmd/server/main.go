package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staff-service/internal/app"
	"staff-service/internal/config"
	"staff-service/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", map[string]any{
			"error": err.Error(),
		})
	}

	go func() {
		if err := application.Run(); err != nil {
			logger.Fatal("http server failed", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	logger.Info("staff-service started", map[string]any{
		"port":          cfg.AppPort,
		"api_key_set":   cfg.APIKey != "",
		"supabase_set":  cfg.SupabaseURL != "",
		"profile_store": profileStoreName(cfg),
	})

	<-ctx.Done() // wait for Ctrl+C

	logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("graceful shutdown failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("staff-service stopped cleanly", nil)
}

func profileStoreName(cfg config.Config) string {
	if cfg.DatabaseDSN != "" {
		return "postgres"
	}
	return "supabase-rest"
}
