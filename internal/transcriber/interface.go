package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

// Transcriber turns staged audio into text. Failures are *models.PipelineError
// values with stage "transcribe"; an empty transcript is an error.
type Transcriber interface {
	Transcribe(ctx context.Context, audio models.AudioPayload) (string, error)
}
