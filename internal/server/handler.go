package server

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/note-digest/internal/intake"
	"github.com/nguyentantai21042004/note-digest/internal/models"
)

const kindRequest = "request"

func (s *implServer) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// handleTranscribeAndSummarize stages the "audio" part and runs the pipeline.
func (s *implServer) handleTranscribeAndSummarize(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	fh, err := c.FormFile(intake.FieldName)
	if err != nil || fh == nil {
		return models.NewMissingAudioError(`multipart field "audio" is required`)
	}

	staged, err := s.intake.Stage(ctx, intake.Upload{
		Filename:  fh.Filename,
		MediaType: fh.Header.Get(fiber.HeaderContentType),
		Size:      fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	})
	if err != nil {
		return err
	}
	defer staged.Release(ctx)

	result, err := s.pipeline.Process(ctx, staged.Payload())
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// errorHandler renders every failure as an ErrorEnvelope.
func (s *implServer) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(models.ErrorEnvelope{
			Error: fe.Message,
			Kind:  kindRequest,
		})
	}

	pe := models.AsPipelineError(err)
	if pe.Kind == models.KindInternal {
		s.logger.Error(s.requestContext(c), "Request failed: %v", pe)
	}
	return c.Status(pe.HTTPStatus()).JSON(pe.Envelope())
}
