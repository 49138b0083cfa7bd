package transcriber

import (
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/note-digest/internal/config"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/upstream"
)

type implTranscriber struct {
	client   *openai.Client
	model    string
	language string
	logger   logger.Logger
}

// New creates a Transcriber for an OpenAI-compatible audio endpoint.
// A nil httpClient gets one with the configured timeout.
func New(cfg config.TranscriptionConfig, httpClient *http.Client, log logger.Logger) Transcriber {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = upstream.WrapClient(httpClient)

	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &implTranscriber{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    model,
		language: cfg.Language,
		logger:   log,
	}
}
