package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 1024
	apiVersion       = "2023-06-01"
	requestTimeout   = 60 * time.Second
	maxBodySize      = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the API key is missing or rejected.
	ErrUnauthorized = errors.New("narrative: unauthorized (API key invalid)")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("narrative: rate limited")
	// ErrNoContent indicates the response held no JSON report.
	ErrNoContent = errors.New("narrative: response contained no report")
)

// Options tune the client. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	Model      string
	MaxTokens  int
	HTTPClient *http.Client
}

// Client sends report contexts to the Anthropic Messages API.
type Client struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	http      *http.Client
}

// NewClient creates a client for the given API key.
// Returns nil if the key is empty.
func NewClient(apiKey string, opts Options) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}

	c := &Client{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
		http:      opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.maxTokens <= 0 {
		c.maxTokens = defaultMaxTokens
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	return c
}

// Generate sends the context prompt and decodes the returned report.
// Failures are returned to the caller; there is no retry.
func (c *Client) Generate(ctx context.Context, rc Context) (*Report, error) {
	payload, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    systemPrompt,
		Messages:  []message{{Role: "user", Content: rc.Prompt()}},
	})
	if err != nil {
		return nil, fmt.Errorf("narrative: encoding request: %w", err)
	}

	body, err := c.post(ctx, "/v1/messages", payload, rc.ID.String())
	if err != nil {
		return nil, err
	}

	var resp messagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("narrative: parsing response: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return parseReport(text.String())
}

// post performs an authenticated POST and returns the response body.
func (c *Client) post(ctx context.Context, path string, payload []byte, requestID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("narrative: creating request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req) //nolint:gosec // URL is built from configured base URL
	if err != nil {
		return nil, fmt.Errorf("narrative: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("narrative: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("narrative: reading response: %w", err)
	}
	return body, nil
}

// parseReport decodes the outermost JSON object in text.
// Models sometimes wrap the object in prose or a code fence.
func parseReport(text string) (*Report, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, ErrNoContent
	}

	var r Report
	if err := json.Unmarshal([]byte(text[start:end+1]), &r); err != nil {
		return nil, fmt.Errorf("narrative: parsing report: %w", err)
	}
	return &r, nil
}
