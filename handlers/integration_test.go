package handlers_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/processmind/process-mind/assistant"
	"github.com/processmind/process-mind/models"
	"github.com/processmind/process-mind/router"
	"github.com/processmind/process-mind/store"
	"github.com/processmind/process-mind/testutil"
)

// setupAPI builds the full route table over a seeded store with the
// assistant running in local-only mode.
func setupAPI(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	st := testutil.SetupSeededStore(t)
	a := assistant.NewWithRemote(st, nil, time.Second, slog.Default())
	return router.New(st, a), st
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	api, _ := setupAPI(t)

	t.Run("valid credentials", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodPost, "/login", models.LoginRequest{
			Email:    "admin@guaraciaba.ce.gov.br",
			Password: "admin123",
		}, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var session models.Session
		testutil.AssertJSON(t, w, &session)
		if session.MunicipalityID != 1 {
			t.Errorf("municipality id = %d, want 1", session.MunicipalityID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodPost, "/login", models.LoginRequest{
			Email:    "admin@guaraciaba.ce.gov.br",
			Password: "nope",
		}, nil)
		w := serve(api, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodPost, "/login", models.LoginRequest{Email: "x@y.z"}, nil)
		w := serve(api, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := serve(api, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestDataEndpoints(t *testing.T) {
	api, _ := setupAPI(t)

	t.Run("health series", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/1/health", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var records []models.HealthRecord
		testutil.AssertJSON(t, w, &records)
		if len(records) != 31 {
			t.Errorf("expected 31 monthly rows, got %d", len(records))
		}
	})

	t.Run("health with year range", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/1/health?from=2023&to=2023", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var records []models.HealthRecord
		testutil.AssertJSON(t, w, &records)
		if len(records) != 12 {
			t.Errorf("expected 12 rows for 2023, got %d", len(records))
		}
	})

	t.Run("health facilities", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/1/health-facilities", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var facilities []models.HealthFacility
		testutil.AssertJSON(t, w, &facilities)
		if len(facilities) != 6 {
			t.Errorf("expected 6 facilities, got %d", len(facilities))
		}
	})

	t.Run("education", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/2/education", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var records []models.EducationRecord
		testutil.AssertJSON(t, w, &records)
		if len(records) != 5 {
			t.Errorf("expected 5 annual rows, got %d", len(records))
		}
	})

	t.Run("schools", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/3/schools", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var schools []models.School
		testutil.AssertJSON(t, w, &schools)
		if len(schools) < 15 || len(schools) > 25 {
			t.Errorf("expected 15-25 schools, got %d", len(schools))
		}
	})

	t.Run("security units", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/4/security-units", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var units []models.SecurityUnit
		testutil.AssertJSON(t, w, &units)
		if len(units) != 4 {
			t.Errorf("expected 4 units, got %d", len(units))
		}
	})

	t.Run("demographics", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/1/demographics", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var records []models.DemographicRecord
		testutil.AssertJSON(t, w, &records)
		if len(records) != 5 || records[0].Year != 2024 {
			t.Errorf("expected 5 year-descending snapshots, got %d starting at %d",
				len(records), records[0].Year)
		}
	})

	t.Run("unknown municipality returns empty list", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/999/schools", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := w.Body.String(); body == "null\n" {
			t.Error("expected an empty JSON array, got null")
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/abc/health", nil, nil)
		w := serve(api, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestChatAsk(t *testing.T) {
	api, st := setupAPI(t)

	t.Run("json question", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodPost, "/municipalities/1/chat", models.ChatRequest{
			Question: "Quantas escolas temos?",
		}, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ChatResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Source != models.AnswerSourceLocal {
			t.Errorf("source = %q, want %q", resp.Source, models.AnswerSourceLocal)
		}
		if resp.Answer == "" {
			t.Error("empty answer")
		}

		history, err := st.ChatHistory(1, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(history) == 0 {
			t.Error("exchange not persisted")
		}
	})

	t.Run("empty question", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodPost, "/municipalities/1/chat", models.ChatRequest{}, nil)
		w := serve(api, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown municipality", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodPost, "/municipalities/999/chat", models.ChatRequest{
			Question: "Olá",
		}, nil)
		w := serve(api, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("multipart with malformed document still answers", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if err := mw.WriteField("question", "O que diz o documento?"); err != nil {
			t.Fatal(err)
		}
		part, err := mw.CreateFormFile("document", "broken.pdf")
		if err != nil {
			t.Fatal(err)
		}
		fmt.Fprint(part, "this is not a pdf")
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/municipalities/1/chat", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ChatResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Answer == "" {
			t.Error("expected an answer despite the broken upload")
		}
	})
}

func TestChatHistory(t *testing.T) {
	api, st := setupAPI(t)

	for i := 0; i < 3; i++ {
		if err := st.SaveChat(1, fmt.Sprintf("pergunta %d", i), "resposta", nil); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("default window", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/1/chat", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var exchanges []models.ChatExchange
		testutil.AssertJSON(t, w, &exchanges)
		if len(exchanges) != 3 {
			t.Errorf("expected 3 exchanges, got %d", len(exchanges))
		}
		if len(exchanges) > 0 && exchanges[0].Question != "pergunta 2" {
			t.Errorf("newest first expected, got %q", exchanges[0].Question)
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/1/chat?limit=1", nil, nil)
		w := serve(api, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var exchanges []models.ChatExchange
		testutil.AssertJSON(t, w, &exchanges)
		if len(exchanges) != 1 {
			t.Errorf("limit ignored: got %d exchanges", len(exchanges))
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/municipalities/1/chat?limit=zero", nil, nil)
		w := serve(api, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}
