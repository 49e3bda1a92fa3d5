package auth

import "testing"

func TestHashPasswordDeterministic(t *testing.T) {
	h1 := HashPassword("admin123")
	h2 := HashPassword("admin123")
	if h1 != h2 {
		t.Errorf("same input produced different hashes: %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("admin123")

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "admin123", true},
		{"wrong password", "admin124", false},
		{"empty password", "", false},
		{"case sensitive", "Admin123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.password, hash); got != tt.want {
				t.Errorf("VerifyPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestSeedPassword(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"admin@guaraciaba.ce.gov.br", "admin123"},
		{"admin@nisiafloresta.rn.gov.br", "admin123"},
		{"gestor@prefeitura.gov.br", "gestor123"},
		{"noatsign", "noatsign123"},
	}

	for _, tt := range tests {
		if got := SeedPassword(tt.email); got != tt.want {
			t.Errorf("SeedPassword(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
