// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/danielhkuo/doubt-solver/models"
)

// ErrRequestFailed covers every way a Solve call can fail.
var ErrRequestFailed = errors.New("explanation request failed")

// Client calls the explanation function over HTTP.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// New creates a Client for the function base URL, e.g.
// "https://<project>.supabase.co/functions/v1". A nil httpClient uses
// http.DefaultClient, which has no timeout.
func New(baseURL, anonKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: httpClient,
	}
}

// Solve asks the function to explain question. A blank subject is sent as
// "General".
func (c *Client) Solve(ctx context.Context, question, subject string) (models.Explanation, error) {
	body, err := json.Marshal(models.SolveDoubtRequest{
		Question: question,
		Subject:  models.SubjectOrDefault(subject),
	})
	if err != nil {
		return models.Explanation{}, fmt.Errorf("%w: encoding request: %w", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/solve-doubt", bytes.NewReader(body))
	if err != nil {
		return models.Explanation{}, fmt.Errorf("%w: creating request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Explanation{}, fmt.Errorf("%w: sending request: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Explanation{}, fmt.Errorf("%w: reading response: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return models.Explanation{}, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, errResp.Error)
		}
		return models.Explanation{}, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var out models.Explanation
	if err := json.Unmarshal(respBody, &out); err != nil {
		return models.Explanation{}, fmt.Errorf("%w: decoding response: %w", ErrRequestFailed, err)
	}
	if out.Explanation == "" {
		return models.Explanation{}, fmt.Errorf("%w: response has no explanation", ErrRequestFailed)
	}

	return out, nil
}
