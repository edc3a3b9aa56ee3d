// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/doubt-solver/db"
	"github.com/danielhkuo/doubt-solver/models"
)

// SQLStore keeps records in a postgres or sqlite database.
type SQLStore struct {
	db      *sql.DB
	dialect string
}

// NewSQLStore wraps an open connection. The schema must already exist.
func NewSQLStore(conn *sql.DB, dialect string) (*SQLStore, error) {
	if _, err := db.DriverName(dialect); err != nil {
		return nil, err
	}
	return &SQLStore{db: conn, dialect: dialect}, nil
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != db.DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (s *SQLStore) Insert(ctx context.Context, in models.NewRecord) (models.Record, error) {
	in, err := normalize(in)
	if err != nil {
		return models.Record{}, err
	}

	rec := models.Record{
		ID:          uuid.New().String(),
		Subject:     in.Subject,
		Question:    in.Question,
		Explanation: in.Explanation,
		Example:     in.Example,
		InputMethod: in.InputMethod,
		// postgres stores microsecond precision
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO doubts (id, subject, question, explanation, example, input_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), rec.ID, rec.Subject, rec.Question, rec.Explanation, rec.Example, string(rec.InputMethod), rec.CreatedAt)
	if err != nil {
		slog.Error("failed to insert doubt", "error", err)
		return models.Record{}, fmt.Errorf("%w: insert: %w", ErrStore, err)
	}

	slog.Info("doubt saved", "id", rec.ID, "subject", rec.Subject, "input_method", rec.InputMethod)
	return rec, nil
}

func (s *SQLStore) ListRecent(ctx context.Context, limit int) ([]models.Record, error) {
	records := []models.Record{}
	if limit <= 0 {
		return records, nil
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, user_id, subject, question, explanation, example, input_method, created_at
		FROM doubts
		ORDER BY created_at DESC
		LIMIT ?
	`), limit)
	if err != nil {
		slog.Error("failed to list doubts", "error", err)
		return nil, fmt.Errorf("%w: query: %w", ErrStore, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.Record
		var userID sql.NullString
		var method string

		if err := rows.Scan(&rec.ID, &userID, &rec.Subject, &rec.Question,
			&rec.Explanation, &rec.Example, &method, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan: %w", ErrStore, err)
		}
		if userID.Valid {
			rec.UserID = &userID.String
		}
		rec.InputMethod = models.InputMethod(method)
		rec.CreatedAt = rec.CreatedAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %w", ErrStore, err)
	}

	return records, nil
}
