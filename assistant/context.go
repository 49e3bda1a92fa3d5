package assistant

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/processmind/process-mind/store"
)

// Context is the fixed-shape aggregate summary assembled before any
// answer, whichever path produces it.
type Context struct {
	MunicipalityID  int64
	Name            string
	State           string
	FacilityCount   int
	SchoolCount     int
	UnitCount       int
	TotalAdmissions int64
	TotalCrimes     int64
}

// Document is an optional attachment to a question. Text is the
// extracted content; Name is what gets logged with the exchange.
type Document struct {
	Name string
	Text string
}

// BuildContext assembles the aggregate counters for a municipality by
// reading through the regular query layer. Admissions and crimes are
// summed over the default reporting window.
func BuildContext(st *store.Store, municipioID int64, name, uf string) (Context, error) {
	c := Context{MunicipalityID: municipioID, Name: name, State: uf}

	facilities, err := st.HealthFacilities(municipioID)
	if err != nil {
		return c, err
	}
	c.FacilityCount = len(facilities)

	schools, err := st.Schools(municipioID)
	if err != nil {
		return c, err
	}
	c.SchoolCount = len(schools)

	units, err := st.SecurityUnits(municipioID)
	if err != nil {
		return c, err
	}
	c.UnitCount = len(units)

	health, err := st.Health(municipioID, defaultYearFrom, defaultYearTo)
	if err != nil {
		return c, err
	}
	for _, h := range health {
		c.TotalAdmissions += h.Admissions
	}

	security, err := st.Security(municipioID, defaultYearFrom, defaultYearTo)
	if err != nil {
		return c, err
	}
	for _, s := range security {
		c.TotalCrimes += s.Homicides + s.Robberies + s.Thefts
	}

	return c, nil
}

// Default reporting window for the context aggregates.
const (
	defaultYearFrom = 2023
	defaultYearTo   = 2025
)

// Summary renders the context block fed to the remote model.
func (c Context) Summary() string {
	return fmt.Sprintf(`Dados do município de %s - %s:

SAÚDE:
- %d estabelecimentos de saúde (dados reais do CNES)
- %s internações registradas

EDUCAÇÃO:
- %d escolas cadastradas
- Distribuídas entre municipal, estadual e privada
- Atende educação infantil, fundamental e médio

SEGURANÇA:
- %d unidades de segurança
- Inclui: Delegacia, Posto PM, Bombeiros, Guarda Municipal
- %s crimes registrados no período

DEMOGRAFIA:
- Dados baseados no IBGE
- População urbana e rural
- Indicadores vitais atualizados`,
		c.Name, c.State,
		c.FacilityCount, humanize.Comma(c.TotalAdmissions),
		c.SchoolCount,
		c.UnitCount, humanize.Comma(c.TotalCrimes))
}
