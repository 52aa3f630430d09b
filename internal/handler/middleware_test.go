package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveWithSecurityHeaders(status int) *httptest.ResponseRecorder {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// SecurityHeaders
// ---------------------------------------------------------------------------

func TestSecurityHeaders_FixedValues(t *testing.T) {
	rec := serveWithSecurityHeaders(http.StatusOK)

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"X-XSS-Protection", "0"},
		{"Permissions-Policy", "camera=(), microphone=(), geolocation=()"},
	}
	for _, tt := range tests {
		if got := rec.Header().Get(tt.header); got != tt.want {
			t.Errorf("%s: want %q, got %q", tt.header, tt.want, got)
		}
	}
	if hsts := rec.Header().Get("Strict-Transport-Security"); !strings.Contains(hsts, "max-age=") {
		t.Errorf("HSTS missing max-age: %q", hsts)
	}
}

// TestSecurityHeaders_CSP checks the page can load its own script and the
// inline brand-color style block, and nothing else.
func TestSecurityHeaders_CSP(t *testing.T) {
	csp := serveWithSecurityHeaders(http.StatusOK).Header().Get("Content-Security-Policy")

	for _, d := range []string{
		"default-src 'self'",
		"script-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"frame-ancestors 'none'",
	} {
		if !strings.Contains(csp, d) {
			t.Errorf("CSP missing directive %q: %s", d, csp)
		}
	}
	if strings.Contains(csp, "script-src 'self' 'unsafe-inline'") {
		t.Error("inline scripts must stay blocked")
	}
}

func TestSecurityHeaders_PassesThrough(t *testing.T) {
	if rec := serveWithSecurityHeaders(http.StatusTeapot); rec.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// RequestLogger
// ---------------------------------------------------------------------------

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRequestLogger_RecordsStatusAndBytes(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("oops"))
	})
	req := httptest.NewRequest(http.MethodPost, "/api/sign", nil)
	RequestLogger(inner).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log: %v (%s)", err, buf.String())
	}
	if entry["level"] != "WARN" {
		t.Errorf("expected WARN for 5xx, got %v", entry["level"])
	}
	if entry["status"] != float64(http.StatusBadGateway) {
		t.Errorf("expected status 502, got %v", entry["status"])
	}
	if entry["bytes"] != float64(4) {
		t.Errorf("expected 4 bytes, got %v", entry["bytes"])
	}
	if entry["path"] != "/api/sign" {
		t.Errorf("unexpected path %v", entry["path"])
	}
}

func TestRequestLogger_HealthAtDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	RequestLogger(inner).ServeHTTP(httptest.NewRecorder(), req)

	if buf.Len() != 0 {
		t.Errorf("expected health check to be filtered at INFO, got %s", buf.String())
	}
}
