// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3414)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
    (default: elections.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - ImportFile: xlsx workbook to import; when set the server imports
    and exits instead of listening
  - MaxCoalitionSize: default maximum parties per coalition (default: 3)

# CLI Flags

	-p             Server port
	-d             Database path or URL
	-t             Database type
	-import        Import an xlsx results workbook and exit
	-max-coalition Default maximum parties per coalition

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	MAX_COALITION_SIZE → -max-coalition

CLI flags take precedence over environment variables. main loads a .env
file first, so either source can live there.

# Validation

ParseFlags returns an error if DatabaseType is not sqlite or postgres, or
if a numeric environment variable does not parse.
*/
package cliparse
