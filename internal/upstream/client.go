// Package upstream is the HTTP client for the scanner's sensor API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"thermal_sentinel/internal/models"
)

const (
	defaultTimeout  = 10 * time.Second
	maxErrBodyBytes = 512
)

// ErrNotFound is matched (via errors.Is) by 404 responses.
var ErrNotFound = errors.New("upstream resource not found")

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Client talks to the sensor API rooted at baseURL (e.g. http://host:8080/api).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client; a nil httpClient gets a default with timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Live returns the current telemetry snapshot.
func (c *Client) Live(ctx context.Context) (models.LiveStatus, error) {
	var out models.LiveStatus
	err := c.do(ctx, http.MethodGet, "/live", nil, &out)
	return out, err
}

// Alerts returns the alert history, newest first.
func (c *Client) Alerts(ctx context.Context) ([]models.AlertRecord, error) {
	var out []models.AlertRecord
	err := c.do(ctx, http.MethodGet, "/alerts", nil, &out)
	return out, err
}

// Evolution returns the per-frame summary of a dataset.
func (c *Client) Evolution(ctx context.Context, dataset string) ([]models.EvolutionPoint, error) {
	var out []models.EvolutionPoint
	err := c.do(ctx, http.MethodGet, "/evolution/"+url.PathEscape(dataset), nil, &out)
	return out, err
}

// Matrix returns one full temperature field.
func (c *Client) Matrix(ctx context.Context, dataset string, frameIndex int) (models.ThermalFrame, error) {
	var out models.ThermalFrame
	path := "/matrix/" + url.PathEscape(dataset) + "/" + strconv.Itoa(frameIndex)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return models.ThermalFrame{}, err
	}
	if err := validateFrame(out); err != nil {
		return models.ThermalFrame{}, fmt.Errorf("upstream GET %s: %w", path, err)
	}
	return out, nil
}

// Files lists the captures and logs available for download.
func (c *Client) Files(ctx context.Context) ([]models.DataFile, error) {
	var out []models.DataFile
	err := c.do(ctx, http.MethodGet, "/files", nil, &out)
	return out, err
}

// Config returns the scanner configuration.
func (c *Client) Config(ctx context.Context) (models.RemoteConfig, error) {
	var out models.RemoteConfig
	err := c.do(ctx, http.MethodGet, "/config", nil, &out)
	return out, err
}

// UpdateConfig replaces the scanner configuration.
func (c *Client) UpdateConfig(ctx context.Context, cfg models.RemoteConfig) error {
	return c.do(ctx, http.MethodPost, "/config", cfg, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// validateFrame checks the shape only; per-pixel bounds are trusted.
func validateFrame(f models.ThermalFrame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid frame dimensions %dx%d", f.Width, f.Height)
	}
	if len(f.Pixels) != f.Width*f.Height {
		return fmt.Errorf("frame has %d pixels, want %d", len(f.Pixels), f.Width*f.Height)
	}
	return nil
}
