// ABOUTME: End-to-end tests for rate limiting through the production router
// ABOUTME: Covers the write tier keyed by session, the default tier, and disabled mode

package e2e

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/markalston/led-wall-calculator/backend/models"
)

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

// TestRateLimit_E2E_WriteTierPerSession verifies that one session exhausting its write
// budget does not affect another session.
func TestRateLimit_E2E_WriteTierPerSession(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitWrite = 3
	server := newTestServer(t, cfg)

	// Session creation has no {id}, so it is keyed by client IP
	var a, b models.SessionState
	doJSON(t, server, http.MethodPost, "/api/v1/sessions", models.SessionConfigRequest{Config: models.DefaultScreenConfig()}, &a)
	doJSON(t, server, http.MethodPost, "/api/v1/sessions", models.SessionConfigRequest{Config: models.DefaultScreenConfig()}, &b)

	toggleA := server.URL + "/api/v1/sessions/" + a.ID + "/toggle"
	for i := 0; i < 3; i++ {
		resp := post(t, toggleA, `{"row":0,"col":0}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Request %d should succeed, got %d", i+1, resp.StatusCode)
		}
	}

	resp := post(t, toggleA, `{"row":0,"col":0}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("4th request should return 429, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Retry-After") == "" {
		t.Error("Expected Retry-After header on 429 response")
	}
	var body models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode 429 response body: %v", err)
	}
	if body.Error != "Rate limit exceeded" || body.Code != http.StatusTooManyRequests {
		t.Errorf("Unexpected 429 body: %+v", body)
	}

	// Session b still has its full quota
	respB := post(t, server.URL+"/api/v1/sessions/"+b.ID+"/toggle", `{"row":0,"col":0}`)
	respB.Body.Close()
	if respB.StatusCode != http.StatusOK {
		t.Errorf("Other session should not be limited, got %d", respB.StatusCode)
	}

	// Reads use the default tier
	var state models.SessionState
	if code := doJSON(t, server, http.MethodGet, "/api/v1/sessions/"+a.ID, nil, &state); code != http.StatusOK {
		t.Errorf("Read on a write-limited session should succeed, got %d", code)
	}
}

// TestRateLimit_E2E_DisabledMode verifies that disabled rate limiting passes everything through.
func TestRateLimit_E2E_DisabledMode(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitDefault = 1
	cfg.RateLimitWrite = 1
	server := newTestServer(t, cfg)

	cfgJSON, _ := json.Marshal(models.DefaultScreenConfig())
	for i := 0; i < 20; i++ {
		resp := post(t, server.URL+"/api/v1/calculate", string(cfgJSON))
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Disabled mode request %d should succeed, got %d", i+1, resp.StatusCode)
		}
	}
}
