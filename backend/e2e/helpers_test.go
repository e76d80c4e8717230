// ABOUTME: Test helpers for e2e tests
// ABOUTME: Starts the full router on an httptest server and wraps JSON round trips

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/markalston/led-wall-calculator/backend/cache"
	"github.com/markalston/led-wall-calculator/backend/config"
	"github.com/markalston/led-wall-calculator/backend/handlers"
)

// testConfig returns a config with generous limits; callers adjust fields before starting a server
func testConfig() *config.Config {
	return &config.Config{
		Port:               "0",
		CacheTTL:           300,
		SessionTTL:         3600,
		DiagramMaxCabinets: 1000,
		RateLimitEnabled:   false,
		RateLimitWrite:     60,
		RateLimitDefault:   100,
	}
}

// newTestServer serves the production router for cfg, closing everything on cleanup.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    cfg := testConfig()
//	    cfg.CORSAllowedOrigins = []string{"https://example.com"}
//	    srv := newTestServer(t, cfg)
//	}
func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	c := cache.New(time.Duration(cfg.CacheTTL) * time.Second)
	h := handlers.NewHandler(cfg, c)
	server := httptest.NewServer(handlers.NewRouter(h))

	t.Cleanup(func() {
		server.Close()
		h.Close()
		c.Close()
	})
	return server
}

// doJSON sends body (if any) as JSON and decodes a successful response into out (if any).
// It returns the status code.
func doJSON(t *testing.T, server *httptest.Server, method, path string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode %s %s response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}
