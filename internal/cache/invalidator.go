// Package cache purges edge-cached program listings after a recompute.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Invalidator defines a cache invalidation contract.
type Invalidator interface {
	Invalidate(ctx context.Context, key string) error
}

// NoopInvalidator is a no-op implementation.
type NoopInvalidator struct{}

// Invalidate performs no action.
func (NoopInvalidator) Invalidate(context.Context, string) error { return nil }

// HTTPInvalidator posts purge requests to an edge cache endpoint.
type HTTPInvalidator struct {
	client *http.Client
	url    string
	token  string
}

// NewHTTPInvalidator constructs an HTTPInvalidator.
func NewHTTPInvalidator(endpoint, token string, timeout time.Duration) *HTTPInvalidator {
	return &HTTPInvalidator{
		client: &http.Client{Timeout: timeout},
		url:    strings.TrimRight(endpoint, "/"),
		token:  token,
	}
}

type purgeRequest struct {
	Keys        []string  `json:"keys"`
	RequestedAt time.Time `json:"requested_at"`
}

// Invalidate purges every cached response tagged with key.
func (h *HTTPInvalidator) Invalidate(ctx context.Context, key string) error {
	body, err := json.Marshal(purgeRequest{Keys: []string{key}, RequestedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &InvalidationError{Key: key, Status: resp.StatusCode}
	}
	return nil
}

// InvalidationError represents a non-successful purge response.
type InvalidationError struct {
	Key    string
	Status int
}

func (e *InvalidationError) Error() string {
	return fmt.Sprintf("cache purge of %q failed with status %d %s", e.Key, e.Status, http.StatusText(e.Status))
}
