// Package api is the HTTP gateway to the Wall Is Well partner backend.
// It owns the two transport interceptors: attach the stored bearer
// credential to every outgoing request, and clear that credential whenever
// the backend answers 401. Every call is at-most-once; the gateway applies
// no retry or backoff policy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wallpartners/internal/session"
)

const defaultTimeout = 15 * time.Second

// Client talks to the collaborator backend. Construct it once per process
// and share it; it is safe for concurrent use.
type Client struct {
	base  string
	http  *http.Client
	creds *session.Store
	log   *zap.Logger
}

// Config carries the transport settings the client needs.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient builds a gateway for the given backend. creds may not be nil;
// an empty store simply means no Authorization header is attached.
func NewClient(cfg Config, creds *session.Store, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &sessionTransport{
		next:  http.DefaultTransport,
		creds: creds,
		log:   log,
	}

	return &Client{
		base:  strings.TrimRight(cfg.BaseURL, "/"),
		http:  &http.Client{Transport: transport, Timeout: timeout},
		creds: creds,
		log:   log,
	}
}

// sessionTransport is the interceptor pair: bearer attach on the way out,
// credential clear on a 401 on the way back. The response and error always
// propagate unchanged to the caller.
type sessionTransport struct {
	next  http.RoundTripper
	creds *session.Store
	log   *zap.Logger
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	if token, ok := t.creds.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Session expired or revoked. Deletion is idempotent, so a burst
		// of concurrent 401s is safe.
		if clearErr := t.creds.Clear(); clearErr != nil {
			t.log.Warn("failed to clear credential after 401", zap.Error(clearErr))
		} else {
			t.log.Info("session expired, credential cleared")
		}
	}

	return resp, nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (when out is non-nil). Non-2xx statuses become
// *APIError carrying the body's message field if one is present.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do sends a prepared request and decodes the response.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
