// ABOUTME: Authenticated WordPress REST API client.
// ABOUTME: Basic auth with an application password; all calls go through do.

package wp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harper/presskit/internal/config"
)

const userAgent = "presskit/1.0"

// Client wraps the WordPress REST API under {site}/wp-json.
type Client struct {
	baseURL    string
	authHeader string
	http       *http.Client
	log        *log.Logger
}

// New builds a client from the loaded configuration.
func New(cfg *config.Config, logger *log.Logger) *Client {
	auth := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.AppPassword))
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.WordPressURL, "/") + "/wp-json",
		authHeader: "Basic " + auth,
		http:       &http.Client{},
		log:        logger.With("component", "wp"),
	}
}

// APIError is a non-2xx response from WordPress.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress api returned status %d: %s", e.Status, e.Body)
}

// do performs a JSON request against endpoint and decodes the response into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	fullURL := c.baseURL + endpoint
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("request", "method", method, "endpoint", endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		c.log.Debug("error response", "status", resp.StatusCode, "endpoint", endpoint)
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}

// upload sends raw bytes to endpoint with the Content-Disposition filename
// header WordPress requires for media creation.
func (c *Client) upload(ctx context.Context, endpoint string, data []byte, filename, mimeType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	req.Header.Set("Content-Type", mimeType)

	c.log.Debug("upload", "endpoint", endpoint, "filename", filename, "bytes", len(data))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}

// RenderedField decodes WordPress fields that arrive either as a plain
// string or as a {raw, rendered} object.
type RenderedField struct {
	Raw      string `json:"raw,omitempty"`
	Rendered string `json:"rendered,omitempty"`
}

func (f *RenderedField) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		f.Rendered = str
		return nil
	}

	var obj struct {
		Raw      string `json:"raw,omitempty"`
		Rendered string `json:"rendered,omitempty"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("cannot unmarshal rendered field from %s", string(data))
	}
	f.Raw = obj.Raw
	f.Rendered = obj.Rendered
	return nil
}

func (f RenderedField) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Rendered)
}

func (f RenderedField) String() string {
	return f.Rendered
}
