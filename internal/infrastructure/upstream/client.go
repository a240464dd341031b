// Package upstream implements HTTP clients for the marketplace backend APIs
// this gateway fronts: the tour catalog, the booking submission endpoint, the
// credential service and the admin statistics endpoints.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

const defaultClientTimeout = 10 * time.Second

// client is the shared HTTP plumbing for all collaborator clients.
type client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func newClient(baseURL string, timeout time.Duration, log zerolog.Logger) client {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	return client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (c client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s returned %d", domain.ErrUpstreamUnavailable, path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// postJSON issues a POST with a JSON body and returns the raw response for
// the caller to interpret. Extra headers are applied before sending.
func (c client) postJSON(ctx context.Context, path string, body any, headers map[string]string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return resp, nil
}

// decodeInto decodes a JSON response body into out.
func decodeInto(resp *http.Response, out any) error {
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeMessage pulls an optional {"message": "..."} out of a response body.
func decodeMessage(body io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	return envelope.Message
}
