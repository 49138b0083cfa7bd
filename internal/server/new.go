package server

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/note-digest/internal/config"
	"github.com/nguyentantai21042004/note-digest/internal/intake"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/pipeline"
)

type implServer struct {
	app      *fiber.App
	intake   intake.Intake
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

// New creates the HTTP server and registers its routes.
func New(cfg *config.Config, in intake.Intake, pl pipeline.Pipeline, log logger.Logger) Server {
	s := &implServer{
		intake:   in,
		pipeline: pl,
		logger:   log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "note-digest",
		BodyLimit:             cfg.MaxUploadBytes(),
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
	})
	s.routes()

	return s
}

func (s *implServer) Listen(addr string) error {
	s.logger.Info(context.Background(), "HTTP server listening on %s", addr)
	return s.app.Listen(addr)
}

func (s *implServer) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
