package completion

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/note-digest/internal/config"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/upstream"
)

type openAICompleter struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

type geminiCompleter struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// New builds the Completer selected by cfg.Provider.
func New(ctx context.Context, cfg config.SummarizerConfig, log logger.Logger) (Completer, error) {
	httpClient := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	switch strings.ToLower(cfg.Provider) {
	case "", config.ProviderOpenAI:
		return NewOpenAI(cfg, httpClient, log), nil
	case config.ProviderGemini:
		return NewGemini(ctx, cfg, httpClient, log)
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}

// NewOpenAI creates a Completer for any OpenAI-compatible chat endpoint.
func NewOpenAI(cfg config.SummarizerConfig, httpClient *http.Client, log logger.Logger) Completer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = upstream.WrapClient(httpClient)
	return &openAICompleter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: log,
	}
}

// NewGemini creates a Completer backed by the Gemini API.
func NewGemini(ctx context.Context, cfg config.SummarizerConfig, httpClient *http.Client, log logger.Logger) (Completer, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: upstream.WrapClient(httpClient),
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiCompleter{
		client: client,
		model:  cfg.Model,
		logger: log,
	}, nil
}
