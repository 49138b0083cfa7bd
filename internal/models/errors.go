package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ErrorKind classifies pipeline failures.
type ErrorKind string

const (
	KindMissingAudio      ErrorKind = "missing_audio"
	KindEmptyTranscript   ErrorKind = "empty_transcript"
	KindUpstreamTransport ErrorKind = "upstream_transport"
	KindUpstreamStatus    ErrorKind = "upstream_status"
	KindEmptyCompletion   ErrorKind = "empty_completion"
	KindInternal          ErrorKind = "internal"
)

// Pipeline stages used in errors and logs.
const (
	StageIntake     = "intake"
	StageNormalize  = "normalize"
	StageTranscribe = "transcribe"
	StageSummarize  = "summarize"
)

// PipelineError is the single error shape that leaves the pipeline.
// UpstreamStatus is zero when no provider response was received.
type PipelineError struct {
	Kind           ErrorKind
	Stage          string
	Message        string
	UpstreamStatus int
	UpstreamBody   string
	Err            error
}

func (e *PipelineError) Error() string {
	msg := e.Message
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
	}
	if e.UpstreamStatus > 0 {
		msg = fmt.Sprintf("%s (upstream http %d)", msg, e.UpstreamStatus)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Is matches another *PipelineError by kind, so sentinel values such as
// ErrMissingAudio work with errors.Is.
func (e *PipelineError) Is(target error) bool {
	t, ok := target.(*PipelineError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Stage == "" && t.Message == ""
}

// Sentinels for errors.Is checks.
var (
	ErrMissingAudio      = &PipelineError{Kind: KindMissingAudio}
	ErrEmptyTranscript   = &PipelineError{Kind: KindEmptyTranscript}
	ErrUpstreamTransport = &PipelineError{Kind: KindUpstreamTransport}
	ErrUpstreamStatus    = &PipelineError{Kind: KindUpstreamStatus}
	ErrEmptyCompletion   = &PipelineError{Kind: KindEmptyCompletion}
)

// NewMissingAudioError reports an upload without usable audio.
func NewMissingAudioError(message string) *PipelineError {
	return &PipelineError{Kind: KindMissingAudio, Stage: StageIntake, Message: message}
}

// NewEmptyTranscriptError reports a transcription that produced no text.
func NewEmptyTranscriptError() *PipelineError {
	return &PipelineError{
		Kind:    KindEmptyTranscript,
		Stage:   StageTranscribe,
		Message: "transcription returned no text",
	}
}

// NewEmptyCompletionError reports a completion without content.
func NewEmptyCompletionError(detail string) *PipelineError {
	msg := "model returned empty completion"
	if detail != "" {
		msg += " (" + detail + ")"
	}
	return &PipelineError{Kind: KindEmptyCompletion, Stage: StageSummarize, Message: msg}
}

// NewTransportError reports a failure to reach a provider.
func NewTransportError(stage string, err error) *PipelineError {
	return &PipelineError{
		Kind:    KindUpstreamTransport,
		Stage:   stage,
		Message: "provider unreachable",
		Err:     err,
	}
}

// NewStatusError reports a non-success provider response.
func NewStatusError(stage string, status int, body string, err error) *PipelineError {
	return &PipelineError{
		Kind:           KindUpstreamStatus,
		Stage:          stage,
		Message:        fmt.Sprintf("provider responded with http %d", status),
		UpstreamStatus: status,
		UpstreamBody:   strings.TrimSpace(body),
		Err:            err,
	}
}

// NewUndecodableResponseError reports a provider response that arrived but
// could not be decoded. It is classified with the status errors.
func NewUndecodableResponseError(stage string, status int, body string, err error) *PipelineError {
	return &PipelineError{
		Kind:           KindUpstreamStatus,
		Stage:          stage,
		Message:        "provider returned an undecodable response",
		UpstreamStatus: status,
		UpstreamBody:   strings.TrimSpace(body),
		Err:            err,
	}
}

// NewInternalError wraps a local failure.
func NewInternalError(stage string, err error) *PipelineError {
	return &PipelineError{Kind: KindInternal, Stage: stage, Message: "internal error", Err: err}
}

// AsPipelineError returns err as a *PipelineError, wrapping unknown errors
// as internal failures.
func AsPipelineError(err error) *PipelineError {
	if err == nil {
		return nil
	}
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe
	}
	return NewInternalError("", err)
}

// PublicMessage is Error without the wrapped cause or SDK detail.
func (e *PipelineError) PublicMessage() string {
	if e.Stage == "" {
		return e.Message
	}
	return e.Stage + ": " + e.Message
}

// HTTPStatus maps the error to the status returned to API callers.
func (e *PipelineError) HTTPStatus() int {
	switch e.Kind {
	case KindMissingAudio:
		return http.StatusBadRequest
	case KindEmptyTranscript:
		return http.StatusUnprocessableEntity
	case KindUpstreamTransport:
		if isTimeout(e.Err) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	case KindUpstreamStatus, KindEmptyCompletion:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ErrorEnvelope is the JSON body of every failed request.
type ErrorEnvelope struct {
	Error          string `json:"error"`
	Kind           string `json:"kind"`
	Stage          string `json:"stage,omitempty"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
	UpstreamBody   any    `json:"upstream_body,omitempty"`
}

// Envelope renders the error for API callers. The upstream body is embedded
// as JSON when it parses and as a string otherwise.
func (e *PipelineError) Envelope() ErrorEnvelope {
	env := ErrorEnvelope{
		Error:          e.PublicMessage(),
		Kind:           string(e.Kind),
		Stage:          e.Stage,
		UpstreamStatus: e.UpstreamStatus,
	}
	if e.Kind == KindInternal {
		env.Error = "internal error"
	}
	if body := strings.TrimSpace(e.UpstreamBody); body != "" {
		if json.Valid([]byte(body)) {
			env.UpstreamBody = json.RawMessage(body)
		} else {
			env.UpstreamBody = body
		}
	}
	return env
}
