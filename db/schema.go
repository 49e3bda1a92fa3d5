package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Municipalities
CREATE TABLE IF NOT EXISTS municipios (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome TEXT NOT NULL,
    codigo_ibge TEXT UNIQUE NOT NULL,
    uf TEXT NOT NULL,
    populacao INTEGER,
    area_km2 REAL,
    densidade_demografica REAL,
    pib_per_capita REAL,
    idhm REAL,
    latitude REAL,
    longitude REAL,
    data_criacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Users
CREATE TABLE IF NOT EXISTS usuarios (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    email TEXT UNIQUE NOT NULL,
    senha_hash TEXT NOT NULL,
    nome TEXT NOT NULL,
    perfil TEXT DEFAULT 'admin',
    ativo BOOLEAN DEFAULT 1,
    data_criacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_usuarios_email ON usuarios(email);

-- Monthly health indicators
CREATE TABLE IF NOT EXISTS dados_saude (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    ano INTEGER NOT NULL,
    mes INTEGER NOT NULL,
    internacoes INTEGER,
    obitos INTEGER,
    altas INTEGER,
    atendimentos_ubs INTEGER,
    cobertura_esf REAL,
    mortalidade_infantil REAL,
    fonte_dados TEXT DEFAULT 'DATASUS',
    tipo_dado TEXT DEFAULT 'SIMULADO' CHECK (tipo_dado IN ('REAL', 'SIMULADO')),
    data_atualizacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (municipio_id, ano, mes)
);

CREATE INDEX IF NOT EXISTS idx_dados_saude_municipio ON dados_saude(municipio_id, ano, mes);

-- Health facilities (CNES registry)
CREATE TABLE IF NOT EXISTS estabelecimentos_saude (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    cnes TEXT,
    nome_fantasia TEXT NOT NULL,
    tipo_estabelecimento TEXT,
    natureza_juridica TEXT,
    gestao TEXT,
    atende_sus BOOLEAN,
    endereco TEXT,
    latitude REAL,
    longitude REAL,
    fonte_dados TEXT DEFAULT 'CNES_REAL',
    data_atualizacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_estabelecimentos_municipio ON estabelecimentos_saude(municipio_id);

-- Annual education indicators
CREATE TABLE IF NOT EXISTS dados_educacao (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    ano INTEGER NOT NULL,
    matriculas_total INTEGER,
    matriculas_infantil INTEGER,
    matriculas_fundamental INTEGER,
    matriculas_medio INTEGER,
    escolas_total INTEGER,
    docentes_total INTEGER,
    ideb_anos_iniciais REAL,
    ideb_anos_finais REAL,
    taxa_aprovacao REAL,
    taxa_abandono REAL,
    fonte_dados TEXT DEFAULT 'INEP',
    tipo_dado TEXT DEFAULT 'SIMULADO' CHECK (tipo_dado IN ('REAL', 'SIMULADO')),
    data_atualizacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (municipio_id, ano)
);

-- Schools (INEP registry)
CREATE TABLE IF NOT EXISTS escolas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    codigo_inep TEXT,
    nome TEXT NOT NULL,
    tipo_escola TEXT,
    dependencia_administrativa TEXT,
    localizacao TEXT,
    endereco TEXT,
    latitude REAL,
    longitude REAL,
    fonte_dados TEXT DEFAULT 'INEP_REAL',
    data_atualizacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_escolas_municipio ON escolas(municipio_id);

-- Monthly security occurrences per region
CREATE TABLE IF NOT EXISTS dados_seguranca (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    ano INTEGER NOT NULL,
    mes INTEGER NOT NULL,
    homicidios INTEGER,
    roubos INTEGER,
    furtos INTEGER,
    violencia_domestica INTEGER,
    acidentes_transito INTEGER,
    regiao TEXT NOT NULL,
    latitude REAL,
    longitude REAL,
    fonte_dados TEXT DEFAULT 'SSP',
    tipo_dado TEXT DEFAULT 'SIMULADO' CHECK (tipo_dado IN ('REAL', 'SIMULADO')),
    data_atualizacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (municipio_id, ano, mes, regiao)
);

CREATE INDEX IF NOT EXISTS idx_dados_seguranca_municipio ON dados_seguranca(municipio_id, ano, mes);

-- Security units
CREATE TABLE IF NOT EXISTS unidades_seguranca (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    nome TEXT NOT NULL,
    tipo_unidade TEXT,
    endereco TEXT,
    telefone TEXT,
    latitude REAL,
    longitude REAL,
    fonte_dados TEXT DEFAULT 'SIMULADO',
    data_atualizacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_unidades_seguranca_municipio ON unidades_seguranca(municipio_id);

-- Annual demographic snapshots
CREATE TABLE IF NOT EXISTS dados_demograficos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    ano INTEGER NOT NULL,
    populacao_total INTEGER,
    populacao_urbana INTEGER,
    populacao_rural INTEGER,
    populacao_masculina INTEGER,
    populacao_feminina INTEGER,
    nascimentos INTEGER,
    obitos INTEGER,
    fonte_dados TEXT DEFAULT 'IBGE',
    tipo_dado TEXT DEFAULT 'REAL' CHECK (tipo_dado IN ('REAL', 'SIMULADO')),
    data_atualizacao TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (municipio_id, ano)
);

-- Assistant conversation log (append-only)
CREATE TABLE IF NOT EXISTS chat_conversas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    municipio_id INTEGER NOT NULL REFERENCES municipios(id),
    usuario_pergunta TEXT NOT NULL,
    bot_resposta TEXT NOT NULL,
    arquivo_pdf TEXT,
    data_conversa TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_chat_conversas_municipio ON chat_conversas(municipio_id);
`
