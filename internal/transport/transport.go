// Package transport executes single request/response cycles against the
// FeedbackKit REST API and classifies every failure.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swiftlydeveloped/feedbackkit-go/apierror"
	"github.com/swiftlydeveloped/feedbackkit-go/pkg/logger"
)

// Client performs HTTP calls against {baseURL}/api/v1. It is stateless aside
// from the active user id, which is attached to every outgoing request.
type Client struct {
	apiKey string
	apiURL string
	debug  bool
	http   *http.Client

	mu     sync.RWMutex
	userID string
}

// New creates a transport client. apiURL must already include the /api/v1
// suffix.
func New(apiKey, apiURL string, timeout time.Duration, debug bool) *Client {
	return &Client{
		apiKey: apiKey,
		apiURL: strings.TrimRight(apiURL, "/"),
		debug:  debug,
		http:   &http.Client{Timeout: timeout},
	}
}

// UserID returns the active user id, or "" when anonymous.
func (c *Client) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// SetUserID updates the active user id. Pass "" to clear it.
func (c *Client) SetUserID(id string) {
	c.mu.Lock()
	c.userID = id
	c.mu.Unlock()
}

// Get performs a GET request and decodes the response body into out.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, query, nil, out)
}

// Post performs a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, out)
}

// Put performs a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, out)
}

// Delete performs a DELETE request and decodes the response body into out.
func (c *Client) Delete(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	reqURL := c.apiURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	switch method {
	case http.MethodPost, http.MethodPut:
		payload := []byte("{}")
		if body != nil {
			var err error
			payload, err = json.Marshal(body)
			if err != nil {
				return apierror.NewUnknown("Failed to encode request body: "+err.Error(), err)
			}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return apierror.NewUnknown("Failed to build request: "+err.Error(), err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID := c.UserID(); userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apierror.FromError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.FromError(err)
	}

	if c.debug {
		logger.Debug().
			Str("method", method).
			Str("url", reqURL).
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("feedbackkit request")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractErrorMessage(respBody)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return apierror.FromStatusCode(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return apierror.NewUnknown("Failed to decode response: "+err.Error(), err)
	}
	return nil
}

// extractErrorMessage pulls a human-readable message out of an error body,
// checking the common fields servers use, in order.
func extractErrorMessage(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error", "reason"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			return msg
		}
	}
	return ""
}
