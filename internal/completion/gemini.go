package completion

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/note-digest/internal/models"
	"github.com/nguyentantai21042004/note-digest/internal/upstream"
)

// Complete maps system messages onto the system instruction and the rest
// onto conversation turns.
func (c *geminiCompleter) Complete(ctx context.Context, messages []Message) (string, error) {
	var (
		system   []string
		contents []*genai.Content
	)
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	var genCfg *genai.GenerateContentConfig
	if len(system) > 0 {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser),
		}
	}

	c.logger.Debug(ctx, "Requesting completion from %s (%d messages)", c.model, len(messages))

	ctx, exchange := upstream.Capture(ctx)
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, genCfg)
	if err != nil {
		return "", upstream.FromGemini(models.StageSummarize, err, exchange)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", models.NewEmptyCompletionError("no candidates")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", models.NewEmptyCompletionError("finish_reason=" + string(result.Candidates[0].FinishReason))
	}
	return text, nil
}
