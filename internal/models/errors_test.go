package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestPipelineErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *PipelineError
		want int
	}{
		{"missing audio", NewMissingAudioError("audio field is required"), http.StatusBadRequest},
		{"empty transcript", NewEmptyTranscriptError(), http.StatusUnprocessableEntity},
		{"transport", NewTransportError(StageTranscribe, errors.New("connection refused")), http.StatusBadGateway},
		{"transport timeout", NewTransportError(StageSummarize, fmt.Errorf("post: %w", context.DeadlineExceeded)), http.StatusGatewayTimeout},
		{"status", NewStatusError(StageSummarize, 429, "slow down", nil), http.StatusBadGateway},
		{"empty completion", NewEmptyCompletionError(""), http.StatusBadGateway},
		{"internal", NewInternalError(StageNormalize, errors.New("ffmpeg missing")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPipelineErrorIs(t *testing.T) {
	err := fmt.Errorf("handle upload: %w", NewEmptyTranscriptError())

	if !errors.Is(err, ErrEmptyTranscript) {
		t.Error("errors.Is(err, ErrEmptyTranscript) = false, want true")
	}
	if errors.Is(err, ErrMissingAudio) {
		t.Error("errors.Is(err, ErrMissingAudio) = true, want false")
	}
}

func TestAsPipelineErrorWrapsUnknown(t *testing.T) {
	pe := AsPipelineError(errors.New("boom"))
	if pe.Kind != KindInternal {
		t.Errorf("Kind = %v, want %v", pe.Kind, KindInternal)
	}
	if AsPipelineError(nil) != nil {
		t.Error("AsPipelineError(nil) should be nil")
	}
}

func TestEnvelopeUpstreamBody(t *testing.T) {
	jsonErr := NewStatusError(StageSummarize, 401, `{"error":{"message":"bad key"}}`, nil)
	env := jsonErr.Envelope()
	if env.UpstreamStatus != 401 {
		t.Errorf("UpstreamStatus = %v, want %v", env.UpstreamStatus, 401)
	}
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		UpstreamBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"upstream_body"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.UpstreamBody.Error.Message != "bad key" {
		t.Errorf("upstream_body.error.message = %q, want %q", decoded.UpstreamBody.Error.Message, "bad key")
	}

	textEnv := NewStatusError(StageTranscribe, 503, "service unavailable", nil).Envelope()
	if textEnv.UpstreamBody != "service unavailable" {
		t.Errorf("UpstreamBody = %v, want %q", textEnv.UpstreamBody, "service unavailable")
	}
}

func TestEnvelopeHidesInternalDetail(t *testing.T) {
	env := NewInternalError(StageNormalize, errors.New("/tmp/secret path")).Envelope()
	if env.Error != "internal error" {
		t.Errorf("Error = %q, want %q", env.Error, "internal error")
	}
}

func TestSummaryNormalized(t *testing.T) {
	raw, err := json.Marshal(Summary{}.Normalized())
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"key_points":[],"action_items":[]}` {
		t.Errorf("Marshal() = %s", raw)
	}
}

func TestEnvelopeOmitsCause(t *testing.T) {
	cause := errors.New("error, status code: 503, status: 503 Service Unavailable, body: {}")
	tests := []struct {
		name string
		err  *PipelineError
		want string
	}{
		{"status", NewStatusError(StageSummarize, 503, `{"detail":"overloaded"}`, cause), "summarize: provider responded with http 503"},
		{"transport", NewTransportError(StageTranscribe, cause), "transcribe: provider unreachable"},
		{"undecodable", NewUndecodableResponseError(StageSummarize, 200, "oops", cause), "summarize: provider returned an undecodable response"},
		{"no stage", &PipelineError{Kind: KindMissingAudio, Message: "no audio"}, "no audio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := tt.err.Envelope()
			if env.Error != tt.want {
				t.Errorf("Envelope().Error = %q, want %q", env.Error, tt.want)
			}
			if !strings.Contains(tt.err.Error(), "status code: 503") {
				t.Errorf("Error() = %q, should keep the cause for logs", tt.err.Error())
			}
		})
	}
}

func TestUndecodableResponseStatus(t *testing.T) {
	err := NewUndecodableResponseError(StageTranscribe, 200, "not json", nil)
	if err.HTTPStatus() != http.StatusBadGateway {
		t.Errorf("HTTPStatus() = %v, want %v", err.HTTPStatus(), http.StatusBadGateway)
	}
	if !errors.Is(err, ErrUpstreamStatus) {
		t.Error("undecodable response should match ErrUpstreamStatus")
	}
}
