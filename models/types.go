package models

import "time"

// Provenance constants (tipo_dado columns)
const (
	ProvenanceReal      = "REAL"
	ProvenanceSimulated = "SIMULADO"
)

// Data source labels (fonte_dados columns)
const (
	SourceDatasus   = "DATASUS"
	SourceCNESReal  = "CNES_REAL"
	SourceINEP      = "INEP"
	SourceINEPReal  = "INEP_REAL"
	SourceSSP       = "SSP"
	SourceIBGE      = "IBGE"
	SourceSimulated = "SIMULADO"
)

// Answer source constants
const (
	AnswerSourceRemote = "remote"
	AnswerSourceLocal  = "local"
)

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChatRequest struct {
	Question string `json:"question"`
	Document string `json:"document,omitempty"`
}

// Response types

type ChatResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source"` // "remote" or "local"
}

// Domain types

type Municipality struct {
	ID         int64   `json:"id"`
	Name       string  `json:"nome"`
	IBGECode   string  `json:"codigo_ibge"`
	State      string  `json:"uf"`
	Population int64   `json:"populacao"`
	AreaKm2    float64 `json:"area_km2"`
	Density    float64 `json:"densidade_demografica"`
	GDPPerCap  float64 `json:"pib_per_capita"`
	HDI        float64 `json:"idhm"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Session is the record returned by a successful authentication.
type Session struct {
	UserID           int64   `json:"user_id"`
	MunicipalityID   int64   `json:"municipio_id"`
	Name             string  `json:"nome"`
	MunicipalityName string  `json:"municipio_nome"`
	State            string  `json:"municipio_uf"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

type HealthRecord struct {
	ID                int64   `json:"id"`
	MunicipalityID    int64   `json:"municipio_id"`
	Year              int     `json:"ano"`
	Month             int     `json:"mes"`
	Admissions        int64   `json:"internacoes"`
	Deaths            int64   `json:"obitos"`
	Discharges        int64   `json:"altas"`
	PrimaryCareVisits int64   `json:"atendimentos_ubs"`
	ESFCoverage       float64 `json:"cobertura_esf"`
	InfantMortality   float64 `json:"mortalidade_infantil"`
	Source            string  `json:"fonte_dados"`
	Provenance        string  `json:"tipo_dado"`
}

type HealthFacility struct {
	ID             int64   `json:"id"`
	MunicipalityID int64   `json:"municipio_id"`
	CNES           string  `json:"cnes"`
	Name           string  `json:"nome_fantasia"`
	FacilityType   string  `json:"tipo_estabelecimento"`
	LegalNature    string  `json:"natureza_juridica"`
	Management     string  `json:"gestao"`
	ServesSUS      bool    `json:"atende_sus"`
	Address        string  `json:"endereco"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Source         string  `json:"fonte_dados"`
}

type EducationRecord struct {
	ID                  int64   `json:"id"`
	MunicipalityID      int64   `json:"municipio_id"`
	Year                int     `json:"ano"`
	TotalEnrollment     int64   `json:"matriculas_total"`
	EarlyEnrollment     int64   `json:"matriculas_infantil"`
	PrimaryEnrollment   int64   `json:"matriculas_fundamental"`
	SecondaryEnrollment int64   `json:"matriculas_medio"`
	SchoolCount         int64   `json:"escolas_total"`
	TeacherCount        int64   `json:"docentes_total"`
	IDEBLowerYears      float64 `json:"ideb_anos_iniciais"`
	IDEBUpperYears      float64 `json:"ideb_anos_finais"`
	ApprovalRate        float64 `json:"taxa_aprovacao"`
	DropoutRate         float64 `json:"taxa_abandono"`
	Source              string  `json:"fonte_dados"`
	Provenance          string  `json:"tipo_dado"`
}

type School struct {
	ID             int64   `json:"id"`
	MunicipalityID int64   `json:"municipio_id"`
	INEPCode       string  `json:"codigo_inep"`
	Name           string  `json:"nome"`
	SchoolType     string  `json:"tipo_escola"`
	AdminDep       string  `json:"dependencia_administrativa"`
	Location       string  `json:"localizacao"`
	Address        string  `json:"endereco"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Source         string  `json:"fonte_dados"`
}

type SecurityRecord struct {
	ID               int64   `json:"id"`
	MunicipalityID   int64   `json:"municipio_id"`
	Year             int     `json:"ano"`
	Month            int     `json:"mes"`
	Homicides        int64   `json:"homicidios"`
	Robberies        int64   `json:"roubos"`
	Thefts           int64   `json:"furtos"`
	DomesticViolence int64   `json:"violencia_domestica"`
	TrafficAccidents int64   `json:"acidentes_transito"`
	Region           string  `json:"regiao"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Source           string  `json:"fonte_dados"`
	Provenance       string  `json:"tipo_dado"`
}

type SecurityUnit struct {
	ID             int64   `json:"id"`
	MunicipalityID int64   `json:"municipio_id"`
	Name           string  `json:"nome"`
	UnitType       string  `json:"tipo_unidade"`
	Address        string  `json:"endereco"`
	Phone          string  `json:"telefone"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Source         string  `json:"fonte_dados"`
}

type DemographicRecord struct {
	ID               int64  `json:"id"`
	MunicipalityID   int64  `json:"municipio_id"`
	Year             int    `json:"ano"`
	TotalPopulation  int64  `json:"populacao_total"`
	UrbanPopulation  int64  `json:"populacao_urbana"`
	RuralPopulation  int64  `json:"populacao_rural"`
	MalePopulation   int64  `json:"populacao_masculina"`
	FemalePopulation int64  `json:"populacao_feminina"`
	Births           int64  `json:"nascimentos"`
	Deaths           int64  `json:"obitos"`
	Source           string `json:"fonte_dados"`
	Provenance       string `json:"tipo_dado"`
}

type ChatExchange struct {
	ID             int64     `json:"id"`
	MunicipalityID int64     `json:"municipio_id"`
	Question       string    `json:"usuario_pergunta"`
	Answer         string    `json:"bot_resposta"`
	AttachedDoc    *string   `json:"arquivo_pdf,omitempty"`
	CreatedAt      time.Time `json:"data_conversa"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
