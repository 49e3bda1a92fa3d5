package seed

import "github.com/processmind/process-mind/models"

// Reference population for the scaling factor: a metric base value is
// multiplied by population/referencePopulation before storage.
const referencePopulation = 40000.0

// Time coverage. Monthly series stop at reportingLagMonth in the
// current year, mirroring the upstream TABNET publication lag.
const (
	healthStartYear    = 2023
	securityStartYear  = 2023
	educationStartYear = 2020
	educationEndYear   = 2024
	currentYear        = 2025
	reportingLagMonth  = 7
)

// municipalities are the four seeded municipalities with their IBGE
// registry values and centroid coordinates.
var municipalities = []models.Municipality{
	{Name: "Guaraciaba do Norte", IBGECode: "230530", State: "CE", Population: 42053, AreaKm2: 637.7, Density: 69.1, GDPPerCap: 16354, HDI: 0.606, Latitude: -4.1667, Longitude: -40.7500},
	{Name: "Nísia Floresta", IBGECode: "240890", State: "RN", Population: 25137, AreaKm2: 307.3, Density: 81.8, GDPPerCap: 18245, HDI: 0.664, Latitude: -6.0833, Longitude: -35.2000},
	{Name: "Santa Quitéria", IBGECode: "211100", State: "MA", Population: 38159, AreaKm2: 2735.8, Density: 13.9, GDPPerCap: 12890, HDI: 0.587, Latitude: -3.5333, Longitude: -43.3500},
	{Name: "São Bernardo", IBGECode: "211150", State: "MA", Population: 26604, AreaKm2: 1049.1, Density: 25.4, GDPPerCap: 11234, HDI: 0.542, Latitude: -3.2833, Longitude: -44.8167},
}

// operators holds the per-municipality admin accounts, indexed in step
// with municipalities. Passwords are derived at insert time.
var operators = []struct {
	Email string
	Name  string
}{
	{"admin@guaraciaba.ce.gov.br", "Administrador Guaraciaba"},
	{"admin@nisiafloresta.rn.gov.br", "Administrador Nísia Floresta"},
	{"admin@santaquiteria.ma.gov.br", "Administrador Santa Quitéria"},
	{"admin@saobernardo.ma.gov.br", "Administrador São Bernardo"},
}

// guaraciabaFacilities is the fixed CNES registry extract for the
// first municipality. These rows are tagged REAL; every other
// municipality gets templated SIMULADO facilities instead.
var guaraciabaFacilities = []models.HealthFacility{
	{CNES: "2940221", Name: "ACADEMIA DA SAUDE DE GUARACIABA DO NORTE", FacilityType: "Academia da Saúde", LegalNature: "ADMINISTRAÇÃO PÚBLICA", Management: "Municipal", ServesSUS: true, Latitude: -4.1667, Longitude: -40.7500},
	{CNES: "9585168", Name: "CAF DE GUARACIABA DO NORTE", FacilityType: "Centro de Atenção Fisioterapêutica", LegalNature: "ADMINISTRAÇÃO PÚBLICA", Management: "Municipal", ServesSUS: true, Latitude: -4.1650, Longitude: -40.7480},
	{CNES: "5743168", Name: "CAPS AD DE GUARACIABA DO NORTE", FacilityType: "Centro de Atenção Psicossocial", LegalNature: "ADMINISTRAÇÃO PÚBLICA", Management: "Municipal", ServesSUS: true, Latitude: -4.1680, Longitude: -40.7520},
	{CNES: "5567955", Name: "CASA ACOLHER DE GUARACIABA DO NORTE", FacilityType: "Casa de Apoio", LegalNature: "ADMINISTRAÇÃO PÚBLICA", Management: "Municipal", ServesSUS: true, Latitude: -4.1640, Longitude: -40.7460},
	{CNES: "6602967", Name: "CENTRAL DE REGULACAO E MARCACAO DE EXAMES", FacilityType: "Central de Regulação", LegalNature: "ADMINISTRAÇÃO PÚBLICA", Management: "Municipal", ServesSUS: true, Latitude: -4.1670, Longitude: -40.7490},
	{CNES: "0470031", Name: "CENTRAL MUNICIPAL DE REDE DE FRIO", FacilityType: "Central de Rede de Frio", LegalNature: "ADMINISTRAÇÃO PÚBLICA", Management: "Municipal", ServesSUS: true, Latitude: -4.1660, Longitude: -40.7510},
}

// facilityTemplates name the simulated facilities of the remaining
// municipalities; %s is the upper-cased municipality name.
var facilityTemplates = []struct {
	NameFormat   string
	FacilityType string
}{
	{"UBS CENTRAL DE %s", "UBS"},
	{"HOSPITAL MUNICIPAL DE %s", "Hospital"},
	{"CAPS DE %s", "CAPS"},
	{"CEO DE %s", "CEO"},
}

var securityUnitTemplates = []struct {
	NameFormat string
	UnitType   string
}{
	{"DELEGACIA DE POLÍCIA CIVIL DE %s", "Delegacia"},
	{"POSTO POLICIAL MILITAR DE %s", "Posto PM"},
	{"CORPO DE BOMBEIROS DE %s", "Bombeiros"},
	{"GUARDA MUNICIPAL DE %s", "Guarda Municipal"},
}

var securityRegions = []string{"Centro", "Norte", "Sul", "Leste", "Oeste"}

var (
	schoolTypes        = []string{"Creche", "Pré-escola", "Ensino Fundamental", "Ensino Médio"}
	schoolDependencies = []string{"Municipal", "Estadual", "Federal", "Privada"}
	schoolLocations    = []string{"Urbana", "Rural"}
	schoolNamePrefixes = []string{"MUNICIPAL", "ESTADUAL"}
)

// demographicSnapshot is one IBGE annual estimate row.
type demographicSnapshot struct {
	Year   int
	Total  int64
	Urban  int64
	Rural  int64
	Male   int64
	Female int64
	Births int64
	Deaths int64
}

// demographics holds the 2020-2024 IBGE estimates per municipality,
// indexed in step with municipalities. These are fixed literals, not
// generated values.
var demographics = [][]demographicSnapshot{
	{ // Guaraciaba do Norte
		{2020, 40123, 28086, 12037, 19562, 20561, 456, 312},
		{2021, 40856, 28600, 12256, 19918, 20938, 478, 298},
		{2022, 42053, 29456, 12597, 20526, 21527, 492, 285},
		{2023, 42845, 30012, 12833, 20923, 21922, 501, 279},
		{2024, 43456, 30456, 13000, 21228, 22228, 515, 267},
	},
	{ // Nísia Floresta
		{2020, 24234, 19387, 4847, 11817, 12417, 287, 198},
		{2021, 24678, 19746, 4932, 12039, 12639, 295, 189},
		{2022, 25137, 20110, 5027, 12269, 12868, 302, 182},
		{2023, 25612, 20490, 5122, 12506, 13106, 310, 175},
		{2024, 26089, 20871, 5218, 12745, 13344, 318, 168},
	},
	{ // Santa Quitéria
		{2020, 36789, 22073, 14716, 17995, 18794, 423, 289},
		{2021, 37345, 22407, 14938, 18263, 19082, 435, 276},
		{2022, 38159, 22895, 15264, 18658, 19501, 448, 264},
		{2023, 38756, 23244, 15512, 18949, 19807, 456, 251},
		{2024, 39367, 23606, 15761, 19246, 20121, 465, 239},
	},
	{ // São Bernardo
		{2020, 25678, 15407, 10271, 12589, 13089, 298, 203},
		{2021, 26089, 15653, 10436, 12784, 13305, 306, 194},
		{2022, 26604, 15962, 10642, 13036, 13568, 315, 186},
		{2023, 27034, 16220, 10814, 13247, 13787, 321, 178},
		{2024, 27478, 16487, 10991, 13464, 14014, 328, 170},
	},
}
