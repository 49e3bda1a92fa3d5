/*
Package main provides the entry point for the Process Mind API server.

Process Mind is a municipal-statistics backend: it authenticates
per-municipality operators and serves health, education, security and
demographic indicators over a single-file SQLite store, plus a
conversational assistant over those indicators.

# Starting the Server

The server reads configuration from a .env file, environment
variables, or CLI flags:

	go run . -p 8080 -d process_mind.db

On first start against an empty database the server seeds four
municipalities, their operator accounts, and population-scaled
synthetic datasets for all four domains. Re-running against a
populated store changes nothing.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_PATH (-d): SQLite file (default: process_mind.db)
  - OPENAI_API_KEY: Remote assistant credential; absent = local-only
  - OPENAI_API_BASE: Alternative model endpoint
  - OPENAI_MODEL (-model): Remote model (default: gpt-3.5-turbo)
  - REMOTE_TIMEOUT_SECONDS (-remote-timeout): Remote call deadline
  - RANDOM_SEED (-seed): Generator seed for reproducible datasets

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: SQLite handle, authentication, the read operations
  - seed: one-time synthetic data bootstrap
  - assistant: remote/local answer paths and context assembly
  - docparse: PDF text extraction for chat uploads
  - handlers: HTTP request handlers (auth, data, chat)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers
  - models: domain and wire types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
