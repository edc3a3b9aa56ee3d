// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/doubt-solver/models"
)

// RESTStore keeps records in a hosted database behind a PostgREST data API.
// The database assigns id and created_at.
type RESTStore struct {
	endpoint   string
	anonKey    string
	httpClient *http.Client
}

// NewRESTStore creates a store for the project URL, e.g.
// "https://<project>.supabase.co".
func NewRESTStore(projectURL, anonKey string, httpClient *http.Client) *RESTStore {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTStore{
		endpoint:   strings.TrimRight(projectURL, "/") + "/rest/v1/doubts",
		anonKey:    anonKey,
		httpClient: httpClient,
	}
}

func (s *RESTStore) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req and decodes a JSON array of records.
func (s *RESTStore) do(req *http.Request) ([]models.Record, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrStore, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s returned %d: %s", ErrStore, req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	records := []models.Record{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrStore, err)
	}
	return records, nil
}

func (s *RESTStore) Insert(ctx context.Context, in models.NewRecord) (models.Record, error) {
	in, err := normalize(in)
	if err != nil {
		return models.Record{}, err
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: encoding record: %w", ErrStore, err)
	}

	req, err := s.newRequest(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	records, err := s.do(req)
	if err != nil {
		slog.Error("failed to insert doubt", "error", err)
		return models.Record{}, err
	}
	if len(records) != 1 {
		return models.Record{}, fmt.Errorf("%w: expected 1 inserted row, got %d", ErrStore, len(records))
	}

	rec := records[0]
	if !rec.Saved() {
		return models.Record{}, fmt.Errorf("%w: inserted row has no id or created_at", ErrStore)
	}

	slog.Info("doubt saved", "id", rec.ID, "subject", rec.Subject, "input_method", rec.InputMethod)
	return rec, nil
}

func (s *RESTStore) ListRecent(ctx context.Context, limit int) ([]models.Record, error) {
	if limit <= 0 {
		return []models.Record{}, nil
	}

	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	q.Set("limit", strconv.Itoa(limit))

	req, err := s.newRequest(ctx, http.MethodGet, s.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	records, err := s.do(req)
	if err != nil {
		slog.Error("failed to list doubts", "error", err)
		return nil, err
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
