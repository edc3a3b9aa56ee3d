// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// DriverName returns the database/sql driver registered for a dialect.
func DriverName(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database dialect %q", dialect)
	}
}

// CreateSchema creates the doubts table for the given dialect.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var ddl string
	switch dialect {
	case DialectPostgres:
		ddl = postgresSchema
	case DialectSQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("unsupported database dialect %q", dialect)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The postgres defaults let the table double as the hosted data API's
// table, where rows are inserted without id or created_at.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS doubts (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID,
    subject TEXT NOT NULL DEFAULT 'General',
    question TEXT NOT NULL CHECK (question <> ''),
    explanation TEXT NOT NULL CHECK (explanation <> ''),
    example TEXT NOT NULL DEFAULT '',
    input_method TEXT NOT NULL DEFAULT 'text' CHECK (input_method IN ('text', 'voice')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_doubts_created_at ON doubts(created_at DESC);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS doubts (
    id TEXT PRIMARY KEY,
    user_id TEXT,
    subject TEXT NOT NULL DEFAULT 'General',
    question TEXT NOT NULL CHECK (question <> ''),
    explanation TEXT NOT NULL CHECK (explanation <> ''),
    example TEXT NOT NULL DEFAULT '',
    input_method TEXT NOT NULL DEFAULT 'text' CHECK (input_method IN ('text', 'voice')),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_doubts_created_at ON doubts(created_at DESC);
`
