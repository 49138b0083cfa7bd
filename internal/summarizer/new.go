package summarizer

import (
	"github.com/nguyentantai21042004/note-digest/internal/completion"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
)

type implSummarizer struct {
	completer completion.Completer
	logger    logger.Logger
}

// New creates a Summarizer on top of a chat completer.
func New(completer completion.Completer, log logger.Logger) Summarizer {
	return &implSummarizer{
		completer: completer,
		logger:    log,
	}
}
