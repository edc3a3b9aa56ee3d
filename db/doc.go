// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the doubts table for a dialect:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Dialects

  - postgres: lib/pq; id and created_at have server defaults so the same
    table serves the hosted data API
  - sqlite: modernc.org/sqlite; id and created_at are always written by the
    record store

# Tables

  - doubts: one row per answered question

Rows are never updated or deleted by this application.

# Indexes

  - doubts.created_at (descending, for the history query)
*/
package db
