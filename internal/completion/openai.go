package completion

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/note-digest/internal/models"
	"github.com/nguyentantai21042004/note-digest/internal/upstream"
)

// Complete sends one chat completion request. No retries.
func (c *openAICompleter) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	c.logger.Debug(ctx, "Requesting completion from %s (%d messages)", c.model, len(messages))

	ctx, exchange := upstream.Capture(ctx)
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", upstream.FromOpenAI(models.StageSummarize, err, exchange)
	}

	if len(resp.Choices) == 0 {
		return "", models.NewEmptyCompletionError("no choices")
	}
	choice := resp.Choices[0]
	content := choice.Message.Content
	if strings.TrimSpace(content) == "" {
		detail := "finish_reason=" + string(choice.FinishReason)
		if choice.Message.Refusal != "" {
			detail += ", refusal=" + choice.Message.Refusal
		}
		return "", models.NewEmptyCompletionError(detail)
	}
	return content, nil
}
