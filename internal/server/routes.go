package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const TranscribeAndSummarizePath = "/api/transcribe-and-summarize"

func (s *implServer) routes() {
	s.app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: localsRequestID,
	}))
	s.app.Use(s.accessLog)
	s.app.Use(recover.New())
	s.app.Use(s.originGuard)
	s.app.Use(cors.New(cors.Config{
		AllowOriginsFunc: isLocalOrigin,
		AllowMethods:     strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders:     strings.Join([]string{fiber.HeaderContentType, fiber.HeaderXRequestID}, ","),
		ExposeHeaders:    fiber.HeaderXRequestID,
	}))

	s.app.Get("/healthz", s.handleHealth)
	s.app.Post(TranscribeAndSummarizePath, s.handleTranscribeAndSummarize)
}
