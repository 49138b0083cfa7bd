package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

// Summarizer turns a transcript into key points and action items.
type Summarizer interface {
	// Summarize never fails on malformed model output; it returns a degraded
	// outcome instead. Provider failures are *models.PipelineError values.
	Summarize(ctx context.Context, transcript string) (models.SummaryOutcome, error)
}
