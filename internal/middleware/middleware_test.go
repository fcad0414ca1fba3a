package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAssignsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var seen string
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/joborder/LOT1", nil))

	if seen == "" {
		t.Fatal("Expected request id in context")
	}
	if rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("Expected header %q, got %q", seen, rec.Header().Get(RequestIDHeader))
	}
	if logs.Len() != 1 {
		t.Fatalf("Expected one access log entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) || fields["path"] != "/api/joborder/LOT1" {
		t.Errorf("Unexpected log fields: %v", fields)
	}
}

func TestLoggerKeepsIncomingRequestID(t *testing.T) {
	h := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("Expected incoming request id to be kept, got %q", got)
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after panic, got %d", rec.Code)
	}
}

func TestCORSAnyOrigin(t *testing.T) {
	h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/joborder/LOT1", nil)
	req.Header.Set("Origin", "https://tablet.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin, got %q", got)
	}
}

func TestCORSPreflightReflectsRequestedHeaders(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodOptions, "/api/inspections", nil)
	req.Header.Set("Origin", "https://tablet.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type, authorization, x-device-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin, got %q", got)
	}
	allowed := rec.Header().Get("Access-Control-Allow-Headers")
	for _, want := range []string{"Content-Type", "Authorization", "X-Device-Id"} {
		if !strings.Contains(allowed, want) {
			t.Errorf("Expected %s in allowed headers, got %q", want, allowed)
		}
	}
	if called {
		t.Error("Preflight must be answered without reaching the route")
	}
}
