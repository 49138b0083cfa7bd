package summarizer

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

// Summarize sends one completion request and parses the reply.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (models.SummaryOutcome, error) {
	start := time.Now()

	raw, err := s.completer.Complete(ctx, buildMessages(transcript))
	if err != nil {
		return models.SummaryOutcome{}, err
	}

	outcome := ParseSummary(raw)
	if outcome.Degraded {
		s.logger.Warn(ctx, "Model output is not a valid summary, returning raw text (%d chars)", len(raw))
	}

	s.logger.Info(ctx, "Summary completed in %s: %d key points, %d action items",
		time.Since(start).Round(time.Millisecond),
		len(outcome.Summary.KeyPoints),
		len(outcome.Summary.ActionItems),
	)
	return outcome, nil
}
