/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabasePath: SQLite database file (default: process_mind.db)
  - OpenAIKey: Remote assistant credential (env only; empty = local-only)
  - OpenAIBaseURL: Alternative model endpoint (env only)
  - OpenAIModel: Remote model name (default: gpt-3.5-turbo)
  - RemoteTimeout: Remote call deadline (default: 30s)
  - RandomSeed: Generator seed, 0 means time-derived

# CLI Flags

	-p              Server port
	-d              SQLite database path
	-model          Remote assistant model
	-remote-timeout Remote timeout in seconds
	-seed           Generator seed

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p
	DATABASE_PATH          → -d
	OPENAI_MODEL           → -model
	REMOTE_TIMEOUT_SECONDS → -remote-timeout
	RANDOM_SEED            → -seed
	OPENAI_API_KEY         (env only, never argv)
	OPENAI_API_BASE        (env only)

CLI flags take precedence over environment variables. The presence of
OPENAI_API_KEY is the single switch between the remote-capable and the
local-only assistant mode.
*/
package cliparse
