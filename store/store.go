package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/processmind/process-mind/auth"
	"github.com/processmind/process-mind/db"
	"github.com/processmind/process-mind/models"
)

// Store wraps the SQLite database and exposes the read operations the
// dashboard and the assistant consume. Constructed once by the process
// entry point and passed to whoever needs it; there is no package-level
// cached handle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path and ensures the
// schema exists. Foreign key enforcement is enabled through the DSN so
// referential integrity is checked on every connection.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &Store{db: conn}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying sql.DB for the generator and tests.
func (s *Store) DB() *sql.DB { return s.db }

// Authenticate looks up an active user by email and verifies the
// password against the stored hash. A credential mismatch is a normal
// outcome and returns (nil, nil); an error means the store itself
// failed.
func (s *Store) Authenticate(email, password string) (*models.Session, error) {
	row := s.db.QueryRow(`
		SELECT u.id, u.municipio_id, u.nome, u.senha_hash, m.nome, m.uf, m.latitude, m.longitude
		FROM usuarios u
		JOIN municipios m ON u.municipio_id = m.id
		WHERE u.email = ? AND u.ativo = 1
	`, email)

	var sess models.Session
	var storedHash string
	err := row.Scan(&sess.UserID, &sess.MunicipalityID, &sess.Name, &storedHash,
		&sess.MunicipalityName, &sess.State, &sess.Latitude, &sess.Longitude)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !auth.VerifyPassword(password, storedHash) {
		return nil, nil
	}
	return &sess, nil
}

// Municipality returns a municipality by id, or (nil, nil) when absent.
func (s *Store) Municipality(id int64) (*models.Municipality, error) {
	row := s.db.QueryRow(`
		SELECT id, nome, codigo_ibge, uf, populacao, area_km2,
		       densidade_demografica, pib_per_capita, idhm, latitude, longitude
		FROM municipios WHERE id = ?
	`, id)

	var m models.Municipality
	err := row.Scan(&m.ID, &m.Name, &m.IBGECode, &m.State, &m.Population,
		&m.AreaKm2, &m.Density, &m.GDPPerCap, &m.HDI, &m.Latitude, &m.Longitude)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get municipality: %w", err)
	}
	return &m, nil
}

// CountMunicipalities returns the number of municipality rows. The
// generator uses it as the bootstrap guard.
func (s *Store) CountMunicipalities() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM municipios`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count municipios: %w", err)
	}
	return n, nil
}

// Health returns monthly health rows for the municipality within the
// inclusive year range, ordered chronologically (year, month).
func (s *Store) Health(municipioID int64, yearFrom, yearTo int) ([]models.HealthRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, municipio_id, ano, mes, internacoes, obitos, altas,
		       atendimentos_ubs, cobertura_esf, mortalidade_infantil,
		       fonte_dados, tipo_dado
		FROM dados_saude
		WHERE municipio_id = ? AND ano BETWEEN ? AND ?
		ORDER BY ano, mes
	`, municipioID, yearFrom, yearTo)
	if err != nil {
		return nil, fmt.Errorf("query dados_saude: %w", err)
	}
	defer rows.Close()

	records := []models.HealthRecord{}
	for rows.Next() {
		var r models.HealthRecord
		if err := rows.Scan(&r.ID, &r.MunicipalityID, &r.Year, &r.Month,
			&r.Admissions, &r.Deaths, &r.Discharges, &r.PrimaryCareVisits,
			&r.ESFCoverage, &r.InfantMortality, &r.Source, &r.Provenance); err != nil {
			return nil, fmt.Errorf("scan dados_saude: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// HealthFacilities returns the facility registry for the municipality,
// ordered alphabetically by display name.
func (s *Store) HealthFacilities(municipioID int64) ([]models.HealthFacility, error) {
	rows, err := s.db.Query(`
		SELECT id, municipio_id, cnes, nome_fantasia, tipo_estabelecimento,
		       natureza_juridica, gestao, atende_sus,
		       COALESCE(endereco, ''), latitude, longitude, fonte_dados
		FROM estabelecimentos_saude
		WHERE municipio_id = ?
		ORDER BY nome_fantasia
	`, municipioID)
	if err != nil {
		return nil, fmt.Errorf("query estabelecimentos_saude: %w", err)
	}
	defer rows.Close()

	facilities := []models.HealthFacility{}
	for rows.Next() {
		var f models.HealthFacility
		if err := rows.Scan(&f.ID, &f.MunicipalityID, &f.CNES, &f.Name,
			&f.FacilityType, &f.LegalNature, &f.Management, &f.ServesSUS,
			&f.Address, &f.Latitude, &f.Longitude, &f.Source); err != nil {
			return nil, fmt.Errorf("scan estabelecimentos_saude: %w", err)
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}

// Education returns annual education rows for the municipality, most
// recent year first.
func (s *Store) Education(municipioID int64) ([]models.EducationRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, municipio_id, ano, matriculas_total, matriculas_infantil,
		       matriculas_fundamental, matriculas_medio, escolas_total,
		       docentes_total, ideb_anos_iniciais, ideb_anos_finais,
		       taxa_aprovacao, taxa_abandono, fonte_dados, tipo_dado
		FROM dados_educacao
		WHERE municipio_id = ?
		ORDER BY ano DESC
	`, municipioID)
	if err != nil {
		return nil, fmt.Errorf("query dados_educacao: %w", err)
	}
	defer rows.Close()

	records := []models.EducationRecord{}
	for rows.Next() {
		var r models.EducationRecord
		if err := rows.Scan(&r.ID, &r.MunicipalityID, &r.Year, &r.TotalEnrollment,
			&r.EarlyEnrollment, &r.PrimaryEnrollment, &r.SecondaryEnrollment,
			&r.SchoolCount, &r.TeacherCount, &r.IDEBLowerYears, &r.IDEBUpperYears,
			&r.ApprovalRate, &r.DropoutRate, &r.Source, &r.Provenance); err != nil {
			return nil, fmt.Errorf("scan dados_educacao: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Schools returns the school registry for the municipality, ordered
// alphabetically by name.
func (s *Store) Schools(municipioID int64) ([]models.School, error) {
	rows, err := s.db.Query(`
		SELECT id, municipio_id, codigo_inep, nome, tipo_escola,
		       dependencia_administrativa, localizacao,
		       COALESCE(endereco, ''), latitude, longitude, fonte_dados
		FROM escolas
		WHERE municipio_id = ?
		ORDER BY nome
	`, municipioID)
	if err != nil {
		return nil, fmt.Errorf("query escolas: %w", err)
	}
	defer rows.Close()

	schools := []models.School{}
	for rows.Next() {
		var sc models.School
		if err := rows.Scan(&sc.ID, &sc.MunicipalityID, &sc.INEPCode, &sc.Name,
			&sc.SchoolType, &sc.AdminDep, &sc.Location, &sc.Address,
			&sc.Latitude, &sc.Longitude, &sc.Source); err != nil {
			return nil, fmt.Errorf("scan escolas: %w", err)
		}
		schools = append(schools, sc)
	}
	return schools, rows.Err()
}

// Security returns monthly security rows for the municipality within
// the inclusive year range, ordered by (year, month, region).
func (s *Store) Security(municipioID int64, yearFrom, yearTo int) ([]models.SecurityRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, municipio_id, ano, mes, homicidios, roubos, furtos,
		       violencia_domestica, acidentes_transito, regiao,
		       latitude, longitude, fonte_dados, tipo_dado
		FROM dados_seguranca
		WHERE municipio_id = ? AND ano BETWEEN ? AND ?
		ORDER BY ano, mes, regiao
	`, municipioID, yearFrom, yearTo)
	if err != nil {
		return nil, fmt.Errorf("query dados_seguranca: %w", err)
	}
	defer rows.Close()

	records := []models.SecurityRecord{}
	for rows.Next() {
		var r models.SecurityRecord
		if err := rows.Scan(&r.ID, &r.MunicipalityID, &r.Year, &r.Month,
			&r.Homicides, &r.Robberies, &r.Thefts, &r.DomesticViolence,
			&r.TrafficAccidents, &r.Region, &r.Latitude, &r.Longitude,
			&r.Source, &r.Provenance); err != nil {
			return nil, fmt.Errorf("scan dados_seguranca: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SecurityUnits returns the security unit registry for the
// municipality, ordered alphabetically by name.
func (s *Store) SecurityUnits(municipioID int64) ([]models.SecurityUnit, error) {
	rows, err := s.db.Query(`
		SELECT id, municipio_id, nome, tipo_unidade, endereco, telefone,
		       latitude, longitude, fonte_dados
		FROM unidades_seguranca
		WHERE municipio_id = ?
		ORDER BY nome
	`, municipioID)
	if err != nil {
		return nil, fmt.Errorf("query unidades_seguranca: %w", err)
	}
	defer rows.Close()

	units := []models.SecurityUnit{}
	for rows.Next() {
		var u models.SecurityUnit
		if err := rows.Scan(&u.ID, &u.MunicipalityID, &u.Name, &u.UnitType,
			&u.Address, &u.Phone, &u.Latitude, &u.Longitude, &u.Source); err != nil {
			return nil, fmt.Errorf("scan unidades_seguranca: %w", err)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// Demographics returns annual demographic snapshots for the
// municipality, most recent year first.
func (s *Store) Demographics(municipioID int64) ([]models.DemographicRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, municipio_id, ano, populacao_total, populacao_urbana,
		       populacao_rural, populacao_masculina, populacao_feminina,
		       nascimentos, obitos, fonte_dados, tipo_dado
		FROM dados_demograficos
		WHERE municipio_id = ?
		ORDER BY ano DESC
	`, municipioID)
	if err != nil {
		return nil, fmt.Errorf("query dados_demograficos: %w", err)
	}
	defer rows.Close()

	records := []models.DemographicRecord{}
	for rows.Next() {
		var r models.DemographicRecord
		if err := rows.Scan(&r.ID, &r.MunicipalityID, &r.Year, &r.TotalPopulation,
			&r.UrbanPopulation, &r.RuralPopulation, &r.MalePopulation,
			&r.FemalePopulation, &r.Births, &r.Deaths, &r.Source, &r.Provenance); err != nil {
			return nil, fmt.Errorf("scan dados_demograficos: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveChat appends one completed assistant exchange to the
// conversation log. attachedDoc may be nil when no document was sent.
func (s *Store) SaveChat(municipioID int64, question, answer string, attachedDoc *string) error {
	_, err := s.db.Exec(`
		INSERT INTO chat_conversas (municipio_id, usuario_pergunta, bot_resposta, arquivo_pdf)
		VALUES (?, ?, ?, ?)
	`, municipioID, question, answer, attachedDoc)
	if err != nil {
		return fmt.Errorf("insert chat_conversas: %w", err)
	}
	return nil
}

// ChatHistory returns the most recent exchanges for the municipality,
// newest first, capped at limit.
func (s *Store) ChatHistory(municipioID int64, limit int) ([]models.ChatExchange, error) {
	rows, err := s.db.Query(`
		SELECT id, municipio_id, usuario_pergunta, bot_resposta, arquivo_pdf, data_conversa
		FROM chat_conversas
		WHERE municipio_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, municipioID, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat_conversas: %w", err)
	}
	defer rows.Close()

	exchanges := []models.ChatExchange{}
	for rows.Next() {
		var e models.ChatExchange
		var createdAt string
		if err := rows.Scan(&e.ID, &e.MunicipalityID, &e.Question, &e.Answer,
			&e.AttachedDoc, &createdAt); err != nil {
			return nil, fmt.Errorf("scan chat_conversas: %w", err)
		}
		// The driver returns CURRENT_TIMESTAMP defaults in RFC 3339
		// form; rows written by other tools may carry SQLite's
		// space-separated layout.
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			ts, err = time.Parse("2006-01-02 15:04:05", createdAt)
		}
		if err != nil {
			return nil, fmt.Errorf("parse data_conversa %q: %w", createdAt, err)
		}
		e.CreatedAt = ts
		exchanges = append(exchanges, e)
	}
	return exchanges, rows.Err()
}
