package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCORSRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(origins))
	router.POST("/generate-cover-letter", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestCORSOptionsPreflight(t *testing.T) {
	router := newCORSRouter([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/generate-cover-letter", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	assertCORSHeaders(t, resp, "http://localhost:5173")
}

func TestCORSHeadersOnPost(t *testing.T) {
	router := newCORSRouter([]string{"http://localhost:5173/"})

	req := httptest.NewRequest(http.MethodPost, "/generate-cover-letter", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	assertCORSHeaders(t, resp, "http://localhost:5173")
}

func TestCORSWildcardSubdomain(t *testing.T) {
	router := newCORSRouter([]string{"https://*.vercel.app"})

	cases := map[string]bool{
		"https://resume-ai.vercel.app":      true,
		"https://preview-123.vercel.app":    true,
		"https://vercel.app":                false,
		"http://resume-ai.vercel.app":       false,
		"https://resume-ai.vercel.app.evil": false,
		"https://evilvercel.app":            false,
	}
	for origin, allowed := range cases {
		req := httptest.NewRequest(http.MethodPost, "/generate-cover-letter", nil)
		req.Header.Set("Origin", origin)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		got := resp.Header().Get("Access-Control-Allow-Origin")
		if allowed && got != origin {
			t.Fatalf("origin %s should be allowed, got %q", origin, got)
		}
		if !allowed && got != "" {
			t.Fatalf("origin %s should be rejected, got %q", origin, got)
		}
	}
}

func TestCORSUnknownOrigin(t *testing.T) {
	router := newCORSRouter([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodPost, "/generate-cover-letter", nil)
	req.Header.Set("Origin", "https://example.com")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no Allow-Origin, got %q", got)
	}
}

func assertCORSHeaders(t *testing.T, resp *httptest.ResponseRecorder, origin string) {
	t.Helper()
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != origin {
		t.Fatalf("expected Allow-Origin %s, got %q", origin, got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatalf("expected Allow-Methods header")
	}
	if got := resp.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Fatalf("expected Allow-Headers header")
	}
	if got := resp.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Fatalf("expected Max-Age 600, got %q", got)
	}
}
