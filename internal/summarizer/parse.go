package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

// ParseSummary interprets untrusted model output. Only a JSON object whose
// key_points and action_items are absent, null or arrays of strings is
// accepted; anything else yields the fallback summary with the raw text as
// the single key point.
func ParseSummary(raw string) models.SummaryOutcome {
	summary, err := parseStrict(raw)
	if err != nil {
		return models.SummaryOutcome{
			Summary: models.Summary{
				KeyPoints:   []string{raw},
				ActionItems: []string{},
			},
			Degraded: true,
			Raw:      raw,
		}
	}
	return models.SummaryOutcome{Summary: summary, Raw: raw}
}

func parseStrict(raw string) (models.Summary, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &fields); err != nil {
		return models.Summary{}, err
	}
	if fields == nil {
		return models.Summary{}, fmt.Errorf("top-level value is null")
	}

	keyPoints, err := stringList(fields, "key_points")
	if err != nil {
		return models.Summary{}, err
	}
	actionItems, err := stringList(fields, "action_items")
	if err != nil {
		return models.Summary{}, err
	}

	return models.Summary{KeyPoints: keyPoints, ActionItems: actionItems}, nil
}

func stringList(fields map[string]json.RawMessage, key string) ([]string, error) {
	out := []string{}
	value, ok := fields[key]
	if !ok {
		return out, nil
	}

	var items []any
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: want string, got %T", key, i, item)
		}
		out = append(out, s)
	}
	return out, nil
}
