package seed

import (
	"database/sql"
	"fmt"
	"math/rand"
	"strings"

	"github.com/processmind/process-mind/auth"
	"github.com/processmind/process-mind/models"
	"github.com/processmind/process-mind/store"
)

// Run bootstraps the store with the four municipalities, their
// operator accounts, and population-scaled synthetic datasets for all
// four domains. It is a no-op when the municipality table already has
// rows; that guard is the only idempotency mechanism, so concurrent
// callers must not race it (the entry point runs it once before
// serving). All inserts happen inside one transaction: a crash mid-seed
// leaves the store empty, never half-populated.
//
// All randomness flows through rng, so a fixed seed reproduces the
// exact same dataset.
func Run(st *store.Store, rng *rand.Rand) error {
	n, err := st.CountMunicipalities()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx, err := st.DB().Begin()
	if err != nil {
		return fmt.Errorf("begin bootstrap: %w", err)
	}
	defer tx.Rollback()

	g := &generator{tx: tx, rng: rng}

	ids, err := g.insertMunicipalities()
	if err != nil {
		return err
	}
	if err := g.insertUsers(ids); err != nil {
		return err
	}
	if err := g.insertHealth(ids); err != nil {
		return err
	}
	if err := g.insertHealthFacilities(ids); err != nil {
		return err
	}
	if err := g.insertEducation(ids); err != nil {
		return err
	}
	if err := g.insertSchools(ids); err != nil {
		return err
	}
	if err := g.insertSecurity(ids); err != nil {
		return err
	}
	if err := g.insertSecurityUnits(ids); err != nil {
		return err
	}
	if err := g.insertDemographics(ids); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap: %w", err)
	}
	return nil
}

type generator struct {
	tx  *sql.Tx
	rng *rand.Rand
}

// uniform draws from [lo, hi).
func (g *generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// scaled draws from [lo, hi) and applies the population scaling
// factor, floored to an integer count.
func (g *generator) scaled(lo, hi, factor float64) int64 {
	return int64(g.uniform(lo, hi) * factor)
}

// maxMonth caps the current year's monthly series at the reporting
// lag month; prior years cover all twelve months.
func maxMonth(year int) int {
	if year == currentYear {
		return reportingLagMonth
	}
	return 12
}

func scalingFactor(m models.Municipality) float64 {
	return float64(m.Population) / referencePopulation
}

func (g *generator) insertMunicipalities() ([]int64, error) {
	ids := make([]int64, len(municipalities))
	for i, m := range municipalities {
		res, err := g.tx.Exec(`
			INSERT INTO municipios (nome, codigo_ibge, uf, populacao, area_km2,
			    densidade_demografica, pib_per_capita, idhm, latitude, longitude)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, m.Name, m.IBGECode, m.State, m.Population, m.AreaKm2,
			m.Density, m.GDPPerCap, m.HDI, m.Latitude, m.Longitude)
		if err != nil {
			return nil, fmt.Errorf("insert municipio %s: %w", m.Name, err)
		}
		ids[i], err = res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("municipio id: %w", err)
		}
	}
	return ids, nil
}

func (g *generator) insertUsers(ids []int64) error {
	for i, op := range operators {
		hash := auth.HashPassword(auth.SeedPassword(op.Email))
		_, err := g.tx.Exec(`
			INSERT INTO usuarios (municipio_id, email, senha_hash, nome)
			VALUES (?, ?, ?, ?)
		`, ids[i], op.Email, hash, op.Name)
		if err != nil {
			return fmt.Errorf("insert usuario %s: %w", op.Email, err)
		}
	}
	return nil
}

func (g *generator) insertHealth(ids []int64) error {
	for i, m := range municipalities {
		factor := scalingFactor(m)
		for year := healthStartYear; year <= currentYear; year++ {
			for month := 1; month <= maxMonth(year); month++ {
				admissions := g.scaled(15, 35, factor)
				deaths := g.scaled(1, 4, factor)
				discharges := int64(float64(admissions) * g.uniform(0.85, 0.95))
				if discharges > admissions {
					return fmt.Errorf("generated discharges %d exceed admissions %d", discharges, admissions)
				}
				visits := g.scaled(800, 1500, factor)

				_, err := g.tx.Exec(`
					INSERT INTO dados_saude (municipio_id, ano, mes, internacoes,
					    obitos, altas, atendimentos_ubs, cobertura_esf, mortalidade_infantil)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
				`, ids[i], year, month, admissions, deaths, discharges, visits,
					g.uniform(85, 100), g.uniform(12, 18))
				if err != nil {
					return fmt.Errorf("insert dados_saude: %w", err)
				}
			}
		}
	}
	return nil
}

func (g *generator) insertHealthFacilities(ids []int64) error {
	// Guaraciaba do Norte carries real CNES rows.
	for _, f := range guaraciabaFacilities {
		_, err := g.tx.Exec(`
			INSERT INTO estabelecimentos_saude (municipio_id, cnes, nome_fantasia,
			    tipo_estabelecimento, natureza_juridica, gestao, atende_sus,
			    latitude, longitude, fonte_dados)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, ids[0], f.CNES, f.Name, f.FacilityType, f.LegalNature, f.Management,
			f.ServesSUS, f.Latitude, f.Longitude, models.SourceCNESReal)
		if err != nil {
			return fmt.Errorf("insert estabelecimento real: %w", err)
		}
	}

	// The rest get templated simulated facilities offset around the
	// municipal centroid in a fixed pattern.
	for i := 1; i < len(municipalities); i++ {
		m := municipalities[i]
		upper := strings.ToUpper(m.Name)
		for j, tpl := range facilityTemplates {
			lat := m.Latitude + float64(j)*0.01 - 0.015
			lon := m.Longitude + float64(j)*0.01 - 0.015
			_, err := g.tx.Exec(`
				INSERT INTO estabelecimentos_saude (municipio_id, cnes, nome_fantasia,
				    tipo_estabelecimento, natureza_juridica, gestao, atende_sus,
				    latitude, longitude, fonte_dados)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, ids[i], fmt.Sprintf("%d00000%d", ids[i], j+1),
				fmt.Sprintf(tpl.NameFormat, upper), tpl.FacilityType,
				"ADMINISTRAÇÃO PÚBLICA", "Municipal", true, lat, lon,
				models.SourceSimulated)
			if err != nil {
				return fmt.Errorf("insert estabelecimento simulado: %w", err)
			}
		}
	}
	return nil
}

func (g *generator) insertEducation(ids []int64) error {
	for i, m := range municipalities {
		factor := scalingFactor(m)
		for year := educationStartYear; year <= educationEndYear; year++ {
			total := g.scaled(6000, 8000, factor)
			early := int64(float64(total) * 0.25)
			primary := int64(float64(total) * 0.65)
			secondary := int64(float64(total) * 0.10)

			_, err := g.tx.Exec(`
				INSERT INTO dados_educacao (municipio_id, ano, matriculas_total,
				    matriculas_infantil, matriculas_fundamental, matriculas_medio,
				    escolas_total, docentes_total, ideb_anos_iniciais,
				    ideb_anos_finais, taxa_aprovacao, taxa_abandono)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, ids[i], year, total, early, primary, secondary,
				g.scaled(25, 45, factor), g.scaled(300, 500, factor),
				g.uniform(4.5, 6.2), g.uniform(3.8, 5.5),
				g.uniform(85, 95), g.uniform(2, 8))
			if err != nil {
				return fmt.Errorf("insert dados_educacao: %w", err)
			}
		}
	}
	return nil
}

func (g *generator) insertSchools(ids []int64) error {
	for i, m := range municipalities {
		upper := strings.ToUpper(m.Name)
		count := 15 + g.rng.Intn(11) // 15-25 schools per municipality
		for j := 0; j < count; j++ {
			lat := m.Latitude + g.uniform(-0.05, 0.05)
			lon := m.Longitude + g.uniform(-0.05, 0.05)
			name := fmt.Sprintf("ESCOLA %s %s %d",
				schoolNamePrefixes[g.rng.Intn(len(schoolNamePrefixes))], upper, j+1)

			_, err := g.tx.Exec(`
				INSERT INTO escolas (municipio_id, codigo_inep, nome, tipo_escola,
				    dependencia_administrativa, localizacao, latitude, longitude, fonte_dados)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, ids[i], fmt.Sprintf("%d%04d0000", ids[i], j+1), name,
				schoolTypes[g.rng.Intn(len(schoolTypes))],
				schoolDependencies[g.rng.Intn(len(schoolDependencies))],
				schoolLocations[g.rng.Intn(len(schoolLocations))],
				lat, lon, models.SourceSimulated)
			if err != nil {
				return fmt.Errorf("insert escola: %w", err)
			}
		}
	}
	return nil
}

func (g *generator) insertSecurity(ids []int64) error {
	for i, m := range municipalities {
		factor := scalingFactor(m)
		for year := securityStartYear; year <= currentYear; year++ {
			for month := 1; month <= maxMonth(year); month++ {
				for _, region := range securityRegions {
					lat := m.Latitude + g.uniform(-0.02, 0.02)
					lon := m.Longitude + g.uniform(-0.02, 0.02)

					_, err := g.tx.Exec(`
						INSERT INTO dados_seguranca (municipio_id, ano, mes,
						    homicidios, roubos, furtos, violencia_domestica,
						    acidentes_transito, regiao, latitude, longitude)
						VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
					`, ids[i], year, month,
						max(0, g.scaled(0, 2, factor)),
						max(1, g.scaled(3, 8, factor)),
						max(2, g.scaled(5, 15, factor)),
						max(1, g.scaled(2, 6, factor)),
						max(2, g.scaled(4, 12, factor)),
						region, lat, lon)
					if err != nil {
						return fmt.Errorf("insert dados_seguranca: %w", err)
					}
				}
			}
		}
	}
	return nil
}

func (g *generator) insertSecurityUnits(ids []int64) error {
	for i, m := range municipalities {
		upper := strings.ToUpper(m.Name)
		for j, tpl := range securityUnitTemplates {
			lat := m.Latitude + g.uniform(-0.01, 0.01)
			lon := m.Longitude + g.uniform(-0.01, 0.01)

			_, err := g.tx.Exec(`
				INSERT INTO unidades_seguranca (municipio_id, nome, tipo_unidade,
				    endereco, telefone, latitude, longitude)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, ids[i], fmt.Sprintf(tpl.NameFormat, upper), tpl.UnitType,
				fmt.Sprintf("Rua Principal, %d00, Centro", j+1),
				fmt.Sprintf("(85) 9999-%04d", j+1), lat, lon)
			if err != nil {
				return fmt.Errorf("insert unidade_seguranca: %w", err)
			}
		}
	}
	return nil
}

func (g *generator) insertDemographics(ids []int64) error {
	for i, snapshots := range demographics {
		for _, d := range snapshots {
			_, err := g.tx.Exec(`
				INSERT INTO dados_demograficos (municipio_id, ano, populacao_total,
				    populacao_urbana, populacao_rural, populacao_masculina,
				    populacao_feminina, nascimentos, obitos)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, ids[i], d.Year, d.Total, d.Urban, d.Rural, d.Male, d.Female,
				d.Births, d.Deaths)
			if err != nil {
				return fmt.Errorf("insert dados_demograficos: %w", err)
			}
		}
	}
	return nil
}
