package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/note-digest/internal/completion"
)

const systemInstruction = `You summarize short voice notes. You extract the key points the speaker makes and any concrete action items they mention. You always answer with a single JSON object and nothing else.`

const userPrompt = `Summarize the voice note transcript below.

Reply with ONLY a JSON object of exactly this shape:
{"key_points": ["..."], "action_items": ["..."]}

Rules:
- key_points: the main ideas, one short sentence each
- action_items: tasks or follow-ups the speaker mentions; use [] when there are none
- every array element is a plain string
- no markdown, no code fences, no text before or after the JSON

Transcript:
---
%s
---`

// buildMessages returns the fixed system instruction and the user prompt
// with the transcript embedded verbatim.
func buildMessages(transcript string) []completion.Message {
	return []completion.Message{
		{Role: completion.RoleSystem, Content: systemInstruction},
		{Role: completion.RoleUser, Content: fmt.Sprintf(userPrompt, transcript)},
	}
}
