package assistant

import (
	"strings"
	"testing"
)

func sampleContext() Context {
	return Context{
		MunicipalityID:  1,
		Name:            "Guaraciaba do Norte",
		State:           "CE",
		FacilityCount:   6,
		SchoolCount:     18,
		UnitCount:       4,
		TotalAdmissions: 3021,
		TotalCrimes:     1544,
	}
}

func TestLocalAnswerRouting(t *testing.T) {
	c := sampleContext()

	tests := []struct {
		name     string
		question string
		doc      Document
		want     string // fragment the routed answer must contain
	}{
		{
			name:     "health keyword",
			question: "Como está a saúde no município?",
			want:     "**6 estabelecimentos**",
		},
		{
			name:     "education keyword",
			question: "Quantas escolas temos?",
			want:     "**18 escolas**",
		},
		{
			name:     "security keyword",
			question: "Qual a situação da segurança?",
			want:     "**4 unidades**",
		},
		{
			name:     "demographics keyword",
			question: "Como evoluiu a população?",
			want:     "Demografia de Guaraciaba do Norte",
		},
		{
			name:     "health wins over education when both match",
			question: "As escolas ficam perto do hospital?",
			want:     "Saúde em Guaraciaba do Norte",
		},
		{
			name:     "case insensitive",
			question: "EDUCAÇÃO",
			want:     "**18 escolas**",
		},
		{
			name:     "document without topic keywords",
			question: "O que diz este arquivo?",
			doc:      Document{Name: "plano.pdf", Text: "plano diretor de obras municipais"},
			want:     "**5 palavras**",
		},
		{
			name:     "topic keyword beats attached document",
			question: "E a segurança?",
			doc:      Document{Name: "plano.pdf", Text: "algum texto"},
			want:     "Segurança Pública",
		},
		{
			name:     "generic fallback",
			question: "Olá, bom dia",
			want:     "Posso ajudar com informações sobre",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := localAnswer(tt.question, c, tt.doc)
			if !strings.Contains(got, tt.want) {
				t.Errorf("answer for %q missing %q:\n%s", tt.question, tt.want, got)
			}
		})
	}
}

func TestLocalAnswerUsesThousandsSeparator(t *testing.T) {
	c := sampleContext()
	got := localAnswer("Quantas internações tivemos no hospital?", c, Document{})
	if !strings.Contains(got, "3,021") {
		t.Errorf("expected the admission total formatted with separators, got:\n%s", got)
	}
}

func TestSummaryIncludesAllFourDomains(t *testing.T) {
	s := sampleContext().Summary()
	for _, section := range []string{"SAÚDE:", "EDUCAÇÃO:", "SEGURANÇA:", "DEMOGRAFIA:"} {
		if !strings.Contains(s, section) {
			t.Errorf("summary missing %s section:\n%s", section, s)
		}
	}
	if !strings.Contains(s, "Guaraciaba do Norte - CE") {
		t.Error("summary missing the municipality heading")
	}
}
