/*
Package store owns the SQLite database handle and the read operations
consumed by the HTTP handlers and the assistant.

# Lifecycle

The store is constructed by the process entry point and injected into
every component that needs it:

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

Open creates the schema when absent and enables foreign key
enforcement, so a fresh file is ready for the generator.

# Read Operations

Each read takes a municipality id and, for time-series domains, an
inclusive year range. Ordering is part of the contract:

  - Health, Security: chronological (ano, mes) - security also by regiao
  - HealthFacilities, Schools, SecurityUnits: alphabetical by name
  - Education, Demographics: ano descending (latest snapshot first)

Empty result sets come back as empty slices with a nil error; an error
always means the store itself failed. Authenticate and Municipality
return (nil, nil) for the not-found outcome for the same reason.

# Writes

The store exposes exactly one write for normal operation: SaveChat,
the append-only conversation log. Fact rows are written in bulk by the
seed package at bootstrap and never updated in place.
*/
package store
