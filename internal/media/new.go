package media

import (
	"github.com/nguyentantai21042004/note-digest/internal/config"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/pkg/executor"
)

type implNormalizer struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates an ffmpeg-backed Normalizer.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
