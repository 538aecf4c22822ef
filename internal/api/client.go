// Package api is a typed client for the CampusNexus backend REST contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the backend over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets a per-request timeout. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root this client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Health probes GET /health. A non-2xx answer with a decodable body is
// still returned so the caller can tell "reachable but unhealthy" apart
// from "unreachable".
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/health", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding health response: %w", err)
	}
	return &out, nil
}

// Chat asks a question against the indexed documents.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/chat", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload streams one file to POST /upload as multipart form data.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*UploadResponse, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	resp, err := c.do(ctx, http.MethodPost, "/upload", pr, mw.FormDataContentType())
	if err != nil {
		pr.CloseWithError(err)
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.MethodPost, "/upload"); err != nil {
		return nil, err
	}

	var out UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	return &out, nil
}

// Analytics fetches the previous-year-question summary.
func (c *Client) Analytics(ctx context.Context) (*AnalyticsResponse, error) {
	var out AnalyticsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/analytics/pyq", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// KnowledgeGraph fetches the graph nodes, edges and statistics.
func (c *Client) KnowledgeGraph(ctx context.Context) (*GraphResponse, error) {
	var out GraphResponse
	if err := c.doJSON(ctx, http.MethodGet, "/knowledge-graph", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GovernanceStats fetches document and query counters.
func (c *Client) GovernanceStats(ctx context.Context) (*GovernanceStats, error) {
	var out GovernanceStats
	if err := c.doJSON(ctx, http.MethodGet, "/governance/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingDocuments lists documents awaiting approval.
func (c *Client) PendingDocuments(ctx context.Context) (*PendingResponse, error) {
	var out PendingResponse
	if err := c.doJSON(ctx, http.MethodGet, "/governance/pending", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Review approves or rejects a document.
func (c *Client) Review(ctx context.Context, req ApprovalRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/governance/approve", req, nil)
}

// doJSON sends body as JSON (when non-nil), checks the status and decodes
// the response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, reader, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, method, path); err != nil {
		return err
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s %s request: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	return resp, nil
}

func checkStatus(resp *http.Response, method, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &StatusError{
		Method: method,
		Path:   path,
		Code:   resp.StatusCode,
		Detail: parseDetail(body),
	}
}
