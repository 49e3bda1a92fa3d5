package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/processmind/process-mind/assistant"
	"github.com/processmind/process-mind/testutil"
)

func setup(t *testing.T) http.Handler {
	t.Helper()
	st := testutil.SetupTestStore(t)
	a := assistant.NewWithRemote(st, nil, time.Second, slog.Default())
	return New(st, a)
}

func TestLiveness(t *testing.T) {
	h := setup(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("liveness status = %d, want 200", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("liveness body = %q, want OK", w.Body.String())
	}
}

func TestRoot(t *testing.T) {
	h := setup(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("root status = %d, want 200", w.Code)
	}

	// The root route matches only "/", not every unmatched GET path.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", w.Code)
	}
}

func TestMethodRouting(t *testing.T) {
	h := setup(t)

	// Login is POST-only; data reads are GET-only.
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/login"},
		{http.MethodPost, "/municipalities/1/schools"},
		{http.MethodDelete, "/municipalities/1/chat"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: status = %d, want 405", tt.method, tt.path, w.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	h := setup(t)

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
