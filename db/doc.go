/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - municipios: Municipality registry with coordinates and indicators
  - usuarios: Per-municipality operators used for authentication
  - dados_saude: Monthly health fact rows (admissions, deaths, discharges, ...)
  - estabelecimentos_saude: Health facility registry (CNES)
  - dados_educacao: Annual education fact rows
  - escolas: School registry (INEP)
  - dados_seguranca: Monthly security fact rows per region
  - unidades_seguranca: Security unit registry
  - dados_demograficos: Annual demographic snapshots
  - chat_conversas: Append-only assistant conversation log

# Relationships

	municipios 1──* usuarios
	municipios 1──* dados_saude
	municipios 1──* estabelecimentos_saude
	municipios 1──* dados_educacao
	municipios 1──* escolas
	municipios 1──* dados_seguranca
	municipios 1──* unidades_seguranca
	municipios 1──* dados_demograficos
	municipios 1──* chat_conversas

Every fact and registry row references an existing municipality. Foreign
key enforcement is switched on per connection through the DSN pragma, so
the store owns referential integrity.

# Uniqueness

Time-series rows are unique per period: (municipio_id, ano, mes) for
dados_saude, (municipio_id, ano, mes, regiao) for dados_seguranca, and
(municipio_id, ano) for dados_educacao and dados_demograficos. This makes
"most recent year" queries well-defined.
*/
package db
