package assistant

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// topicRoute pairs a match predicate with a response template. Routes
// are evaluated in order and the first match wins, so a question
// mentioning both health and education resolves to health.
type topicRoute struct {
	name    string
	match   func(question string, doc Document) bool
	respond func(c Context, doc Document) string
}

func keywordMatch(keywords ...string) func(string, Document) bool {
	return func(question string, _ Document) bool {
		for _, kw := range keywords {
			if strings.Contains(question, kw) {
				return true
			}
		}
		return false
	}
}

// localRoutes is the fixed, ordered route table of the local
// responder: health, education, security, demographics, document
// fallback, then the generic capability answer.
var localRoutes = []topicRoute{
	{
		name:    "health",
		match:   keywordMatch("saúde", "hospital", "estabelecimento", "internação", "hospitalar"),
		respond: healthAnswer,
	},
	{
		name:    "education",
		match:   keywordMatch("educação", "escola", "matrícula"),
		respond: educationAnswer,
	},
	{
		name:    "security",
		match:   keywordMatch("segurança", "crime", "delegacia"),
		respond: securityAnswer,
	},
	{
		name:    "demographics",
		match:   keywordMatch("população", "populacional", "demográfico", "demografia"),
		respond: demographicsAnswer,
	},
	{
		name:    "document",
		match:   func(_ string, doc Document) bool { return doc.Text != "" },
		respond: documentAnswer,
	},
	{
		name:    "generic",
		match:   func(string, Document) bool { return true },
		respond: genericAnswer,
	},
}

// localAnswer is the deterministic fallback responder: a pure function
// of the lowercased question, the optional document, and the context
// summary.
func localAnswer(question string, c Context, doc Document) string {
	lowered := strings.ToLower(question)
	for _, route := range localRoutes {
		if route.match(lowered, doc) {
			return route.respond(c, doc)
		}
	}
	// unreachable: the generic route always matches
	return genericAnswer(c, doc)
}

func healthAnswer(c Context, _ Document) string {
	return fmt.Sprintf(`**Saúde em %s**

Temos **%d estabelecimentos** de saúde cadastrados no CNES e **%s internações** registradas no período de Janeiro/2023 a Julho/2025 (limitação do TABNET/DATASUS).

Os dados incluem internações, óbitos, altas médicas, atendimentos em UBS, cobertura de ESF e mortalidade infantil, todos consultáveis por mês e ano.`,
		c.Name, c.FacilityCount, humanize.Comma(c.TotalAdmissions))
}

func educationAnswer(c Context, _ Document) string {
	return fmt.Sprintf(`**Educação em %s**

O município possui **%d escolas** distribuídas entre:
- Educação Infantil (Creches e Pré-escolas)
- Ensino Fundamental
- Ensino Médio

As escolas estão divididas entre dependência municipal, estadual e algumas privadas, atendendo tanto a zona urbana quanto rural. Os indicadores do IDEB mostram evolução ao longo dos anos.`,
		c.Name, c.SchoolCount)
}

func securityAnswer(c Context, _ Document) string {
	return fmt.Sprintf(`**Segurança Pública em %s**

O município conta com **%d unidades** de segurança:
- Delegacia de Polícia Civil
- Posto da Polícia Militar
- Corpo de Bombeiros
- Guarda Municipal

Foram registrados **%s crimes** no período. Os dados de criminalidade são monitorados por região, incluindo homicídios, roubos, furtos, violência doméstica e acidentes de trânsito.`,
		c.Name, c.UnitCount, humanize.Comma(c.TotalCrimes))
}

func demographicsAnswer(c Context, _ Document) string {
	return fmt.Sprintf(`**Demografia de %s**

Os dados demográficos são baseados no IBGE e mostram:
- População distribuída entre zona urbana e rural
- Indicadores vitais (nascimentos e óbitos)
- Evolução populacional ao longo dos anos
- Distribuição por gênero equilibrada

Os dados são atualizados anualmente conforme censos e estimativas do IBGE.`, c.Name)
}

func documentAnswer(c Context, doc Document) string {
	words := len(strings.Fields(doc.Text))
	return fmt.Sprintf(`**Análise do Documento**

Analisando o documento fornecido sobre %s, identifiquei informações relevantes.

O documento contém aproximadamente **%d palavras**.

Para uma análise mais específica do conteúdo, por favor reformule sua pergunta indicando que tipo de informação você gostaria que eu extraísse do documento.`,
		c.Name, words)
}

func genericAnswer(c Context, _ Document) string {
	return fmt.Sprintf(`**Assistente PROCESS MIND - %s - %s**

Posso ajudar com informações sobre:

- **Saúde:** %d estabelecimentos, internações, óbitos
- **Educação:** %d escolas, matrículas, IDEB
- **Segurança:** %d unidades, criminalidade por região
- **Demografia:** população, nascimentos, óbitos (dados IBGE)

Você também pode enviar documentos PDF para análise. Faça uma pergunta específica sobre qualquer um desses temas!`,
		c.Name, c.State, c.FacilityCount, c.SchoolCount, c.UnitCount)
}
