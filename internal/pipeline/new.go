package pipeline

import (
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/media"
	"github.com/nguyentantai21042004/note-digest/internal/summarizer"
	"github.com/nguyentantai21042004/note-digest/internal/transcriber"
)

type implPipeline struct {
	normalizer  media.Normalizer
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	sem         *semaphore
	logger      logger.Logger
}

// Options configures a Pipeline. Normalizer is optional; MaxConcurrent <= 0
// means unbounded.
type Options struct {
	Normalizer    media.Normalizer
	Transcriber   transcriber.Transcriber
	Summarizer    summarizer.Summarizer
	MaxConcurrent int
}

// New creates a Pipeline.
func New(opts Options, log logger.Logger) Pipeline {
	return &implPipeline{
		normalizer:  opts.Normalizer,
		transcriber: opts.Transcriber,
		summarizer:  opts.Summarizer,
		sem:         newSemaphore(opts.MaxConcurrent),
		logger:      log,
	}
}
