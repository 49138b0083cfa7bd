package summarizer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/note-digest/internal/completion"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/models"
)

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantSummary  models.Summary
		wantDegraded bool
	}{
		{
			name:        "exact object",
			raw:         `{"key_points":["Buy milk"],"action_items":["Call Bob"]}`,
			wantSummary: models.Summary{KeyPoints: []string{"Buy milk"}, ActionItems: []string{"Call Bob"}},
		},
		{
			name:        "surrounding whitespace",
			raw:         "\n  {\"key_points\":[\"a\",\"b\"],\"action_items\":[]}  \n",
			wantSummary: models.Summary{KeyPoints: []string{"a", "b"}, ActionItems: []string{}},
		},
		{
			name:        "missing and null fields",
			raw:         `{"key_points":null}`,
			wantSummary: models.Summary{KeyPoints: []string{}, ActionItems: []string{}},
		},
		{
			name:        "extra keys ignored",
			raw:         `{"key_points":["x"],"action_items":[],"title":"memo"}`,
			wantSummary: models.Summary{KeyPoints: []string{"x"}, ActionItems: []string{}},
		},
		{
			name:         "prose",
			raw:          `Sure! Here's your summary: buy milk.`,
			wantSummary:  models.Summary{KeyPoints: []string{`Sure! Here's your summary: buy milk.`}, ActionItems: []string{}},
			wantDegraded: true,
		},
		{
			name:         "key_points is a string",
			raw:          `{"key_points":"buy milk","action_items":[]}`,
			wantSummary:  models.Summary{KeyPoints: []string{`{"key_points":"buy milk","action_items":[]}`}, ActionItems: []string{}},
			wantDegraded: true,
		},
		{
			name:         "non-string element",
			raw:          `{"key_points":["a",1],"action_items":[]}`,
			wantSummary:  models.Summary{KeyPoints: []string{`{"key_points":["a",1],"action_items":[]}`}, ActionItems: []string{}},
			wantDegraded: true,
		},
		{
			name:         "null element",
			raw:          `{"key_points":[],"action_items":[null]}`,
			wantSummary:  models.Summary{KeyPoints: []string{`{"key_points":[],"action_items":[null]}`}, ActionItems: []string{}},
			wantDegraded: true,
		},
		{
			name:         "top-level array",
			raw:          `["a","b"]`,
			wantSummary:  models.Summary{KeyPoints: []string{`["a","b"]`}, ActionItems: []string{}},
			wantDegraded: true,
		},
		{
			name:         "top-level null",
			raw:          `null`,
			wantSummary:  models.Summary{KeyPoints: []string{`null`}, ActionItems: []string{}},
			wantDegraded: true,
		},
		{
			name:         "code fence",
			raw:          "```json\n{\"key_points\":[],\"action_items\":[]}\n```",
			wantSummary:  models.Summary{KeyPoints: []string{"```json\n{\"key_points\":[],\"action_items\":[]}\n```"}, ActionItems: []string{}},
			wantDegraded: true,
		},
		{
			name:         "trailing data",
			raw:          `{"key_points":[],"action_items":[]} thanks`,
			wantSummary:  models.Summary{KeyPoints: []string{`{"key_points":[],"action_items":[]} thanks`}, ActionItems: []string{}},
			wantDegraded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSummary(tt.raw)
			if got.Degraded != tt.wantDegraded {
				t.Errorf("ParseSummary().Degraded = %v, want %v", got.Degraded, tt.wantDegraded)
			}
			if !reflect.DeepEqual(got.Summary, tt.wantSummary) {
				t.Errorf("ParseSummary().Summary = %#v, want %#v", got.Summary, tt.wantSummary)
			}
			if got.Raw != tt.raw {
				t.Errorf("ParseSummary().Raw = %q, want %q", got.Raw, tt.raw)
			}
		})
	}
}

type stubCompleter struct {
	reply    string
	err      error
	calls    int
	messages []completion.Message
}

func (s *stubCompleter) Complete(_ context.Context, messages []completion.Message) (string, error) {
	s.calls++
	s.messages = messages
	return s.reply, s.err
}

func TestSummarize(t *testing.T) {
	transcript := "Buy milk. Call Bob about the \"Q3\" report."
	stub := &stubCompleter{reply: `{"key_points":["Buy milk"],"action_items":["Call Bob"]}`}

	got, err := New(stub, logger.Discard()).Summarize(context.Background(), transcript)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.Degraded {
		t.Error("Summarize().Degraded = true, want false")
	}
	want := models.Summary{KeyPoints: []string{"Buy milk"}, ActionItems: []string{"Call Bob"}}
	if !reflect.DeepEqual(got.Summary, want) {
		t.Errorf("Summarize().Summary = %#v, want %#v", got.Summary, want)
	}

	if stub.calls != 1 {
		t.Fatalf("Complete() calls = %d, want 1", stub.calls)
	}
	if len(stub.messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(stub.messages))
	}
	if stub.messages[0].Role != completion.RoleSystem {
		t.Errorf("messages[0].Role = %v, want %v", stub.messages[0].Role, completion.RoleSystem)
	}
	if stub.messages[1].Role != completion.RoleUser {
		t.Errorf("messages[1].Role = %v, want %v", stub.messages[1].Role, completion.RoleUser)
	}
	if !strings.Contains(stub.messages[1].Content, "\n"+transcript+"\n") {
		t.Errorf("user prompt does not embed transcript verbatim: %q", stub.messages[1].Content)
	}
	if !strings.Contains(stub.messages[1].Content, `{"key_points": ["..."], "action_items": ["..."]}`) {
		t.Error("user prompt does not state the output shape")
	}
}

func TestSummarizeDegraded(t *testing.T) {
	raw := "Sure! Here's your summary: buy milk."
	got, err := New(&stubCompleter{reply: raw}, logger.Discard()).Summarize(context.Background(), "buy milk")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if !got.Degraded {
		t.Error("Summarize().Degraded = false, want true")
	}
	if len(got.Summary.KeyPoints) != 1 || got.Summary.KeyPoints[0] != raw {
		t.Errorf("KeyPoints = %v, want [%q]", got.Summary.KeyPoints, raw)
	}
	if got.Summary.ActionItems == nil || len(got.Summary.ActionItems) != 0 {
		t.Errorf("ActionItems = %#v, want empty slice", got.Summary.ActionItems)
	}
}

func TestSummarizeProviderError(t *testing.T) {
	providerErr := models.NewStatusError(models.StageSummarize, 429, `{"error":"rate limited"}`, nil)

	_, err := New(&stubCompleter{err: providerErr}, logger.Discard()).Summarize(context.Background(), "x")
	if !errors.Is(err, models.ErrUpstreamStatus) {
		t.Errorf("Summarize() error = %v, want upstream status", err)
	}
}
