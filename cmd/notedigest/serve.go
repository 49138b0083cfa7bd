package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/note-digest/internal/config"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/server"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "note-digest API")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Transcription model: %s", cfg.Transcription.Model)
	log.Info(ctx, "Summarizer: %s (%s)", cfg.Summarizer.Provider, cfg.Summarizer.Model)
	log.Info(ctx, "Normalize audio: %v", cfg.FFmpeg.Normalize)
	log.Info(ctx, "Max concurrent pipelines: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Upload limit: %d MB", cfg.Server.MaxUploadMB)

	svc, err := buildServices(ctx, cfg, log)
	if err != nil {
		return err
	}
	srv := server.New(cfg, svc.intake, svc.pipeline, log)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Listen(cfg.Server.Addr)
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case <-ctx.Done():
		log.Info(ctx, "Context cancelled")
	case err := <-errChan:
		if err != nil {
			log.Error(ctx, "Server error: %v", err)
			return err
		}
		return nil
	}

	// Graceful shutdown waits for in-flight pipelines.
	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
		return err
	}

	log.Info(ctx, "note-digest stopped")
	return nil
}
