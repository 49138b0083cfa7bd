// Package upstream translates provider SDK failures into pipeline errors so
// nothing SDK-specific leaves the provider packages except status and body.
package upstream

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

// FromOpenAI maps go-openai errors. The raw body recorded in ex is preferred;
// without it a parsed API error is re-encoded as {"error": ...}. ex may be nil.
func FromOpenAI(stage string, err error, ex *Exchange) error {
	if err == nil {
		return nil
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
		return models.NewStatusError(stage, apiErr.HTTPStatusCode, rawOr(ex, apiErr.HTTPStatusCode, encodeBody(apiErr, apiErr.Message)), err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return models.NewStatusError(stage, reqErr.HTTPStatusCode, rawOr(ex, reqErr.HTTPStatusCode, string(reqErr.Body)), err)
	}
	if isDecodeError(err) {
		return undecodable(stage, err, ex)
	}
	return models.NewTransportError(stage, err)
}

// FromGemini maps genai errors. ex may be nil.
func FromGemini(stage string, err error, ex *Exchange) error {
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code > 0 {
		return models.NewStatusError(stage, apiErr.Code, rawOr(ex, apiErr.Code, encodeBody(apiErr, apiErr.Message)), err)
	}
	if isDecodeError(err) {
		return undecodable(stage, err, ex)
	}
	return models.NewTransportError(stage, err)
}

// rawOr returns the captured body when it belongs to a response with the
// given status.
func rawOr(ex *Exchange, status int, fallback string) string {
	if ex != nil && ex.Status() == status {
		if body := ex.Body(); body != "" {
			return body
		}
	}
	return fallback
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// undecodable reports a response that arrived but could not be parsed.
func undecodable(stage string, err error, ex *Exchange) error {
	status := ex.Status()
	if status == 0 {
		status = http.StatusOK
	}
	return models.NewUndecodableResponseError(stage, status, ex.Body(), err)
}

func encodeBody(apiErr any, fallback string) string {
	body, err := json.Marshal(map[string]any{"error": apiErr})
	if err != nil {
		return fallback
	}
	return string(body)
}
