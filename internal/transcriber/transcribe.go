package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/note-digest/internal/models"
	"github.com/nguyentantai21042004/note-digest/internal/upstream"
)

// Transcribe uploads the audio once and returns the provider text as is.
// Whitespace-only text counts as empty.
func (t *implTranscriber) Transcribe(ctx context.Context, audio models.AudioPayload) (string, error) {
	f, err := os.Open(audio.Path)
	if err != nil {
		return "", models.NewInternalError(models.StageTranscribe, fmt.Errorf("open staged audio: %w", err))
	}
	defer f.Close()

	t.logger.Info(ctx, "Transcribing %s with %s", audio.Filename, t.model)
	start := time.Now()
	ctx, exchange := upstream.Capture(ctx)

	// FilePath only names the multipart part; the bytes come from Reader.
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: f.Name(),
		Reader:   f,
		Language: t.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", upstream.FromOpenAI(models.StageTranscribe, err, exchange)
	}

	if strings.TrimSpace(resp.Text) == "" {
		return "", models.NewEmptyTranscriptError()
	}

	t.logger.Info(ctx, "Transcription completed in %s (%d chars)", time.Since(start).Round(time.Millisecond), len(resp.Text))
	return resp.Text, nil
}
