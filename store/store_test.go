package store_test

import (
	"sort"
	"testing"
	"time"

	"github.com/processmind/process-mind/testutil"
)

func TestAuthenticate(t *testing.T) {
	st := testutil.SetupSeededStore(t)

	t.Run("valid credentials", func(t *testing.T) {
		session, err := st.Authenticate("admin@guaraciaba.ce.gov.br", "admin123")
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if session == nil {
			t.Fatal("expected a session for valid credentials")
		}
		if session.MunicipalityID != 1 {
			t.Errorf("municipality id = %d, want 1", session.MunicipalityID)
		}
		if session.State != "CE" {
			t.Errorf("state = %q, want CE", session.State)
		}
		if session.MunicipalityName != "Guaraciaba do Norte" {
			t.Errorf("municipality name = %q, want Guaraciaba do Norte", session.MunicipalityName)
		}
		if session.Latitude == 0 || session.Longitude == 0 {
			t.Error("session is missing the municipal centroid")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		session, err := st.Authenticate("admin@guaraciaba.ce.gov.br", "wrong")
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if session != nil {
			t.Error("expected nil session for a wrong password")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		session, err := st.Authenticate("nobody@example.com", "admin123")
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if session != nil {
			t.Error("expected nil session for an unknown email")
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		if _, err := st.DB().Exec("UPDATE usuarios SET ativo = 0 WHERE municipio_id = 2"); err != nil {
			t.Fatal(err)
		}
		session, err := st.Authenticate("admin@nisiafloresta.rn.gov.br", "admin123")
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if session != nil {
			t.Error("expected nil session for a deactivated account")
		}
	})
}

func TestMunicipality(t *testing.T) {
	st := testutil.SetupSeededStore(t)

	m, err := st.Municipality(1)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("expected municipality 1")
	}
	if m.IBGECode != "230530" {
		t.Errorf("ibge code = %q, want 230530", m.IBGECode)
	}

	missing, err := st.Municipality(999)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("expected nil for an unknown municipality")
	}
}

func TestHealthOrderingAndRange(t *testing.T) {
	st := testutil.SetupSeededStore(t)

	records, err := st.Health(1, 2023, 2025)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 31 {
		t.Fatalf("expected 31 monthly rows, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		if cur.Year < prev.Year || (cur.Year == prev.Year && cur.Month <= prev.Month) {
			t.Fatalf("rows out of chronological order at index %d: %d-%02d after %d-%02d",
				i, cur.Year, cur.Month, prev.Year, prev.Month)
		}
	}

	single, err := st.Health(1, 2024, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if len(single) != 12 {
		t.Errorf("expected 12 rows for 2024, got %d", len(single))
	}
	for _, r := range single {
		if r.Year != 2024 {
			t.Errorf("year filter leaked %d into a 2024-only query", r.Year)
		}
	}
}

func TestHealthFacilitiesSortedByName(t *testing.T) {
	st := testutil.SetupSeededStore(t)

	facilities, err := st.HealthFacilities(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(facilities) != 6 {
		t.Fatalf("expected 6 facilities, got %d", len(facilities))
	}
	names := make([]string, len(facilities))
	for i, f := range facilities {
		names[i] = f.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("facilities not sorted by name: %v", names)
	}
}

func TestEducationYearDescending(t *testing.T) {
	st := testutil.SetupSeededStore(t)

	records, err := st.Education(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 annual rows, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Year >= records[i-1].Year {
			t.Fatalf("rows not year-descending: %d before %d", records[i-1].Year, records[i].Year)
		}
	}
	if records[0].Year != 2024 {
		t.Errorf("latest year = %d, want 2024", records[0].Year)
	}
}

func TestSecurityOrdering(t *testing.T) {
	st := testutil.SetupSeededStore(t)

	records, err := st.Security(1, 2023, 2025)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 31*5 {
		t.Fatalf("expected %d rows, got %d", 31*5, len(records))
	}
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		switch {
		case cur.Year != prev.Year:
			if cur.Year < prev.Year {
				t.Fatalf("years out of order at index %d", i)
			}
		case cur.Month != prev.Month:
			if cur.Month < prev.Month {
				t.Fatalf("months out of order at index %d", i)
			}
		default:
			if cur.Region < prev.Region {
				t.Fatalf("regions out of order within %d-%02d: %q after %q",
					cur.Year, cur.Month, cur.Region, prev.Region)
			}
		}
	}
}

func TestEmptyResultsAreNotErrors(t *testing.T) {
	st := testutil.SetupSeededStore(t)

	health, err := st.Health(999, 2023, 2025)
	if err != nil {
		t.Fatalf("unknown municipality should not error: %v", err)
	}
	if health == nil || len(health) != 0 {
		t.Errorf("expected an empty slice, got %v", health)
	}

	schools, err := st.Schools(999)
	if err != nil {
		t.Fatalf("unknown municipality should not error: %v", err)
	}
	if schools == nil || len(schools) != 0 {
		t.Errorf("expected an empty slice, got %v", schools)
	}
}

func TestChatRoundTrip(t *testing.T) {
	st := testutil.SetupSeededStore(t)

	doc := "relatorio.pdf"
	if err := st.SaveChat(1, "Quantas escolas temos?", "Temos 20 escolas.", &doc); err != nil {
		t.Fatalf("save chat: %v", err)
	}
	if err := st.SaveChat(1, "E a saúde?", "Vai bem.", nil); err != nil {
		t.Fatalf("save chat: %v", err)
	}

	history, err := st.ChatHistory(1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(history))
	}

	// Newest first.
	if history[0].Question != "E a saúde?" {
		t.Errorf("newest exchange = %q, want the second question", history[0].Question)
	}
	if history[1].AttachedDoc == nil || *history[1].AttachedDoc != "relatorio.pdf" {
		t.Errorf("attached document not preserved: %v", history[1].AttachedDoc)
	}
	if history[0].AttachedDoc != nil {
		t.Errorf("expected nil attachment, got %q", *history[0].AttachedDoc)
	}
	for _, e := range history {
		if age := time.Since(e.CreatedAt); age < 0 || age > time.Minute {
			t.Errorf("exchange timestamp %v is not near the insert time", e.CreatedAt)
		}
	}

	limited, err := st.ChatHistory(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limit not applied: got %d exchanges", len(limited))
	}

	other, err := st.ChatHistory(2, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Errorf("exchanges leaked across municipalities: %d", len(other))
	}
}
