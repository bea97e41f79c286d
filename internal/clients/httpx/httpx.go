// Package httpx holds the JSON-over-HTTP plumbing shared by the outbound
// adapters: one attempt per call, typed timeout and upstream errors.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
)

// ErrNetworkTimeout is matched with errors.Is for any adapter call that
// ran out of time.
var ErrNetworkTimeout = errors.New("network timeout")

// UpstreamError reports a non-2xx answer from an external service.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// TimeoutError wraps the underlying timeout so both the kind and the cause
// stay inspectable.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrNetworkTimeout)
}

func (e *TimeoutError) Unwrap() []error {
	return []error{ErrNetworkTimeout, e.Err}
}

const maxErrorBody = 2048

// Do sends req once and returns the response body for 2xx answers.
func Do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, classify(req.Context(), req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(req.Context(), req.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := body
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(snippet)}
	}
	return body, nil
}

// PostJSON marshals payload and posts it with Content-Type application/json.
func PostJSON(ctx context.Context, client *http.Client, target string, headers map[string]string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return Do(client, req)
}

// GetJSON issues a GET with the given query and decodes the JSON answer into out.
func GetJSON(ctx context.Context, client *http.Client, target string, query url.Values, headers map[string]string, out any) error {
	if len(query) > 0 {
		target = target + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	body, err := Do(client, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// IsTimeout reports whether err is an adapter timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrNetworkTimeout)
}

// UpstreamStatus returns the status carried by an UpstreamError, or 0.
func UpstreamStatus(err error) int {
	var up *UpstreamError
	if errors.As(err, &up) {
		return up.Status
	}
	return 0
}

func classify(ctx context.Context, u *url.URL, err error) error {
	op := "request"
	if u != nil {
		op = u.Host + u.Path
	}
	// Caller cancellation is not a timeout; keep it as context.Canceled.
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Op: op, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
