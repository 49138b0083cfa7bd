package intake

import (
	"github.com/nguyentantai21042004/note-digest/internal/logger"
)

type implIntake struct {
	tempDir string
	logger  logger.Logger
}

// New creates an Intake that stages files under tempDir.
func New(tempDir string, log logger.Logger) Intake {
	return &implIntake{
		tempDir: tempDir,
		logger:  log,
	}
}
