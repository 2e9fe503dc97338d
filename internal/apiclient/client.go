// Package apiclient is the gateway to the IDMS REST backend. It owns the
// HTTP transport, JSON (de)serialization and multipart uploads; everything
// above it works with records and never sees a request. Calls are
// fire-and-await-once: no retries, no deduplication.
package apiclient

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
	"go.uber.org/zap"

	"idms/internal/record"
)

// Client talks to one backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New builds a client for the given base URL. A zero timeout disables the
// transport-level deadline; per-call contexts still apply.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("backend returned %d", e.Code)
}

// List fetches every record of a collection.
func (c *Client) List(ctx context.Context, collection string) ([]record.Record, error) {
	var out []record.Record
	if err := c.doJSON(ctx, http.MethodGet, "/api/"+collection, nil, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return out, nil
}

// Create posts a new record (sans id) and returns the created record with
// its server-assigned id.
func (c *Client) Create(ctx context.Context, collection string, payload map[string]any) (record.Record, error) {
	var out record.Record
	if err := c.doJSON(ctx, http.MethodPost, "/api/"+collection, payload, &out); err != nil {
		return nil, fmt.Errorf("create %s: %w", collection, err)
	}
	return out, nil
}

// Update replaces a record by id and returns the backend's echo.
func (c *Client) Update(ctx context.Context, collection, id string, payload map[string]any) (record.Record, error) {
	var out record.Record
	if err := c.doJSON(ctx, http.MethodPut, "/api/"+collection+"/"+id, payload, &out); err != nil {
		return nil, fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return out, nil
}

// Delete removes a record by id. Any non-2xx response is a failure; no
// response body is required.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/"+collection+"/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Correlation-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Upload sends a file to the collection's upload endpoint as multipart form
// data. The backend answers with either a bare URL string or an array of
// them; both shapes collapse to a slice.
func (c *Client) Upload(ctx context.Context, collection, filename string, contents io.Reader) ([]string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", collection, err)
	}
	if _, err := io.Copy(part, contents); err != nil {
		return nil, fmt.Errorf("upload %s: %w", collection, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload %s: %w", collection, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/"+collection+"/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Correlation-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upload %s: %w", collection,
			&StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", collection, err)
	}
	return parseUploadResponse(data)
}

func parseUploadResponse(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("upload: empty response")
	}
	var many []string
	if err := json.Unmarshal(trimmed, &many); err == nil {
		return many, nil
	}
	var one string
	if err := json.Unmarshal(trimmed, &one); err == nil {
		return []string{one}, nil
	}
	// Some deployments answer with the raw URL, not JSON.
	return []string{string(trimmed)}, nil
}
