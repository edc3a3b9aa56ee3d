// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists answered questions behind the Gateway interface.

# Implementations

  - SQLStore: database/sql over postgres (lib/pq) or sqlite
    (modernc.org/sqlite). Queries use ? placeholders, rewritten to $n for
    postgres. The store generates the uuid and created_at.
  - RESTStore: a hosted PostgREST data API. The database generates id and
    created_at and the inserted row is returned with
    Prefer: return=representation.

# Rules

Insert rejects a blank question, a blank explanation or an unknown input
method with ErrInvalidRecord, and stores a blank subject as "General".
ListRecent returns at most limit records, newest first, and an empty slice
when there are none. Backend failures wrap ErrStore.

There is no update or delete.
*/
package store
