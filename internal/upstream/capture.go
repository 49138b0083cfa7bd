package upstream

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
)

// maxCapturedBody caps how much of a provider response is kept for errors.
const maxCapturedBody = 64 << 10

type exchangeKey struct{}

// Exchange records the status and leading body bytes of the last provider
// response sent on a context returned by Capture.
type Exchange struct {
	mu     sync.Mutex
	status int
	body   []byte
}

// Capture returns a context whose provider responses are recorded in the
// returned Exchange. Requests must go through a client from WrapClient.
func Capture(ctx context.Context) (context.Context, *Exchange) {
	ex := &Exchange{}
	return context.WithValue(ctx, exchangeKey{}, ex), ex
}

// Status returns the last recorded HTTP status, or 0.
func (e *Exchange) Status() int {
	if e == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Body returns the recorded body, truncated to maxCapturedBody bytes.
func (e *Exchange) Body() string {
	if e == nil {
		return ""
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return string(e.body)
}

func (e *Exchange) record(status int, body []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = status
	e.body = body
}

// WrapClient returns a copy of c whose transport feeds Exchanges. The SDK
// still reads the full, unmodified body.
func WrapClient(c *http.Client) *http.Client {
	if c == nil {
		c = &http.Client{}
	}
	wrapped := *c
	wrapped.Transport = &captureTransport{base: c.Transport}
	return &wrapped
}

type captureTransport struct {
	base http.RoundTripper
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil || resp == nil || resp.Body == nil {
		return resp, err
	}
	ex, ok := req.Context().Value(exchangeKey{}).(*Exchange)
	if !ok {
		return resp, nil
	}

	head, readErr := io.ReadAll(io.LimitReader(resp.Body, maxCapturedBody))
	ex.record(resp.StatusCode, head)
	resp.Body = &replayBody{
		Reader: io.MultiReader(bytes.NewReader(head), errReader{readErr}, resp.Body),
		closer: resp.Body,
	}
	return resp, nil
}

type replayBody struct {
	io.Reader
	closer io.Closer
}

func (b *replayBody) Close() error {
	return b.closer.Close()
}

// errReader replays a read error hit while capturing; nil means EOF.
type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return 0, io.EOF
}
