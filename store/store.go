// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/doubt-solver/models"
)

var (
	// ErrStore wraps every backend failure.
	ErrStore = errors.New("record store failure")
	// ErrInvalidRecord is returned for inserts that break the record rules.
	ErrInvalidRecord = errors.New("invalid record")
)

// Gateway persists answered questions. Records are append-only.
type Gateway interface {
	// Insert stores rec and returns it with id and created_at assigned.
	Insert(ctx context.Context, rec models.NewRecord) (models.Record, error)
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.Record, error)
}

// normalize validates an insert and fills the default subject.
func normalize(rec models.NewRecord) (models.NewRecord, error) {
	if strings.TrimSpace(rec.Question) == "" {
		return rec, fmt.Errorf("%w: question is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(rec.Explanation) == "" {
		return rec, fmt.Errorf("%w: explanation is required", ErrInvalidRecord)
	}
	if !rec.InputMethod.Valid() {
		return rec, fmt.Errorf("%w: input_method must be text or voice, got %q", ErrInvalidRecord, rec.InputMethod)
	}
	rec.Subject = models.SubjectOrDefault(rec.Subject)
	return rec, nil
}
