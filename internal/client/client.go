// Package client calls the Nokair backend APIs. Documents travel as raw
// JSON; callers normalize what they receive.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	infraerrors "github.com/punnatorn6420/Nokair-Platform/infrastructure/errors"
	infrahttp "github.com/punnatorn6420/Nokair-Platform/infrastructure/http"
)

// ErrNotConfigured is returned by every call on a client without a base URL.
var ErrNotConfigured = errors.New("api base url not configured")

// maxDocumentSize bounds a layout or page schema response.
const maxDocumentSize = 1 << 20

// Client talks to one backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A nil httpClient gets the shared defaults.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = infrahttp.NewClient(nil)
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

// Configured reports whether a base URL is set.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != ""
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAdminLayout fetches /admin/site/{slug}/layout.
func (c *Client) GetAdminLayout(ctx context.Context, slug string) ([]byte, error) {
	return c.get(ctx, adminLayoutPath(slug))
}

// PutAdminLayout replaces /admin/site/{slug}/layout with data.
func (c *Client) PutAdminLayout(ctx context.Context, slug string, data []byte) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	endpoint := c.baseURL + adminLayoutPath(slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := infraerrors.ParseHTTPError(resp); err != nil {
		return fmt.Errorf("put %s: %w", endpoint, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// GetPublicLayout fetches /site/{slug}/layout.
func (c *Client) GetPublicLayout(ctx context.Context, slug string) ([]byte, error) {
	return c.get(ctx, "/site/"+url.PathEscape(slug)+"/layout")
}

// The slug is a single path segment; '/', '?' and '#' must not leak into the
// path structure or the query.
func adminLayoutPath(slug string) string {
	return "/admin/site/" + url.PathEscape(slug) + "/layout"
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := infraerrors.ParseHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get %s: %w", endpoint, err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
