package intake

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/models"
)

// Staged owns one temp file. Release must run on every exit path; defer it
// right after Stage succeeds.
type Staged struct {
	payload models.AudioPayload
	logger  logger.Logger
	once    sync.Once
}

func newStaged(payload models.AudioPayload, log logger.Logger) *Staged {
	return &Staged{payload: payload, logger: log}
}

// Payload returns the staged audio.
func (s *Staged) Payload() models.AudioPayload {
	return s.payload
}

// Release removes the temp file. Safe to call more than once.
func (s *Staged) Release(ctx context.Context) {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if err := os.Remove(s.payload.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn(ctx, "Failed to cleanup staged audio %s: %v", s.payload.Path, err)
			return
		}
		s.logger.Debug(ctx, "Cleaned up staged audio: %s", s.payload.Path)
	})
}
