package completion

import "context"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string
	Content string
}

// Completer returns a single text completion for an ordered message list.
// Failures are *models.PipelineError values with stage "summarize".
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
