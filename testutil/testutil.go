package testutil

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/processmind/process-mind/seed"
	"github.com/processmind/process-mind/store"
)

// FixedSeed makes generated datasets reproducible across test runs.
const FixedSeed = 42

// SetupTestStore opens a fresh store on a temp file with the full
// schema created. Closed automatically when the test ends.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// SetupSeededStore opens a fresh store and runs the full synthetic
// bootstrap with a fixed seed.
func SetupSeededStore(t *testing.T) *store.Store {
	t.Helper()

	st := SetupTestStore(t)
	if err := seed.Run(st, rand.New(rand.NewSource(FixedSeed))); err != nil {
		t.Fatalf("Failed to seed test store: %v", err)
	}
	return st
}

// CountRows returns the row count of a table.
func CountRows(t *testing.T, st *store.Store, table string) int64 {
	t.Helper()

	var n int64
	if err := st.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
