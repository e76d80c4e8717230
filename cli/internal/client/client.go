// ABOUTME: HTTP client for the LED wall calculator API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/markalston/led-wall-calculator/backend/models"
)

// Client is the API client for the LED wall calculator backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var health models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Catalog calls GET /api/v1/catalog
func (c *Client) Catalog(ctx context.Context) (*models.Catalog, error) {
	var catalog models.Catalog
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog", nil, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Calculate calls POST /api/v1/calculate
func (c *Client) Calculate(ctx context.Context, cfg models.ScreenConfig) (*models.CalculateResponse, error) {
	var resp models.CalculateResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/calculate", cfg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Wiring calls POST /api/v1/wiring
func (c *Client) Wiring(ctx context.Context, req models.WiringRequest) (*models.WiringPlan, error) {
	var plan models.WiringPlan
	if err := c.do(ctx, http.MethodPost, "/api/v1/wiring", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// do sends body as JSON (when non-nil) and decodes a 200 response into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("request canceled")
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	if errResp.Details != "" {
		return fmt.Errorf("backend error: %s: %s", errResp.Error, errResp.Details)
	}
	return fmt.Errorf("backend error: %s", errResp.Error)
}
