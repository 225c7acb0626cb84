// Package salonapi implements the outbound gateways against the salon
// backend's JSON API. Every response is normalized into the apperrors
// taxonomy: transport failures become ErrNetwork, malformed or
// shape-invalid bodies become ErrDecode, well-formed error envelopes become
// ServerError, and HTTP 401 becomes ErrAuthExpired.
package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lmorales/salon_dashboard_app/internal/apperrors"
)

// enveloped is implemented by every response model via models.Envelope.
type enveloped interface {
	Result() (status, message string)
}

// Client is the shared HTTP plumbing for the salon API gateways.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	validate   *validator.Validate
}

// ClientOption is a functional option for configuring the client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying http.Client (used in tests and
// for custom transports).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIToken sets the bearer token attached to every upstream request.
func WithAPIToken(token string) ClientOption {
	return func(c *Client) {
		c.apiToken = token
	}
}

// NewClient creates a salon API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// getJSON performs a GET against path with the given query and decodes the
// enveloped response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out enveloped) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	return c.do(req, out)
}

// postJSON performs a POST against path with a JSON body and decodes the
// enveloped response into out.
func (c *Client) postJSON(ctx context.Context, path string, body any, out enveloped) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and applies the error normalization shared by all
// gateway operations.
func (c *Client) do(req *http.Request, out enveloped) error {
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", req.Method, req.URL.Path, err, apperrors.ErrNetwork)
	}
	defer resp.Body.Close()

	// 401 means the upstream session is gone; distinct from ServerError so
	// callers can force a reload instead of showing a toast.
	if resp.StatusCode == http.StatusUnauthorized {
		return apperrors.ErrAuthExpired
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %v: %w", req.URL.Path, err, apperrors.ErrNetwork)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %v: %w", req.URL.Path, err, apperrors.ErrDecode)
	}

	// The payload shape is not trusted implicitly: a well-formed JSON body
	// that fails validation is still a decode failure.
	if err := c.validate.Struct(out); err != nil {
		return fmt.Errorf("validating response from %s: %v: %w", req.URL.Path, err, apperrors.ErrDecode)
	}

	status, message := out.Result()
	if status != "success" {
		return apperrors.NewServerError(message)
	}

	return nil
}
