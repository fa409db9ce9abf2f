package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single submission.
const DefaultTimeout = 15 * time.Second

var (
	// ErrEncode is returned when a record cannot be encoded.
	ErrEncode = errors.New("contact: encode record")

	// ErrTransport is returned when the request could not be made.
	ErrTransport = errors.New("contact: transport failure")
)

// Submitter delivers a record to the sheet-backed endpoint.
type Submitter interface {
	Submit(ctx context.Context, rec Record) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, rec Record) error

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}

// HTTPSubmitter POSTs records as JSON. The response is never inspected: a
// request that completes counts as delivered whatever the status, matching
// an opaque no-cors fetch in the browser.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter creates a submitter for endpoint. A nil client gets one
// with DefaultTimeout.
func NewHTTPSubmitter(endpoint string, client *http.Client) *HTTPSubmitter {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	return &HTTPSubmitter{endpoint: endpoint, client: client}
}

// Endpoint returns the configured URL.
func (s *HTTPSubmitter) Endpoint() string {
	return s.endpoint
}

// Submit implements Submitter.
func (s *HTTPSubmitter) Submit(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, s.endpoint, bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	setOpaqueMode(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	// Drain so the connection can be reused; the content is ignored.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return nil
}

var _ Submitter = (*HTTPSubmitter)(nil)
