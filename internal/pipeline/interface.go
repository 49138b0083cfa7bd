package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

// Pipeline runs one staged voice note through transcription and
// summarization.
type Pipeline interface {
	// Process runs the stages in order. Every returned error is a
	// *models.PipelineError; a degraded summary is still a success.
	Process(ctx context.Context, audio models.AudioPayload) (models.Result, error)
}
