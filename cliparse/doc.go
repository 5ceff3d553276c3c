// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: DSN (default for sqlite: file:databiz.db, required for postgres)
  - Seed: Populate initial content at startup
  - AllowedOrigins: CORS origins (default: *)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-seed     Seed initial content
	-origins  Comma-separated CORS origins

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SEED            → -seed
	ALLOWED_ORIGINS → -origins

CLI flags take precedence over environment variables. main loads a .env
file before parsing, so these can also live there.
*/
package cliparse
