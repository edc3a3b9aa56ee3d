// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/doubt-solver/models"
)

func TestSolve_Success(t *testing.T) {
	var got models.SolveDoubtRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1/solve-doubt", r.URL.Path)
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"explanation":"Mass attracts mass.","example":"An apple falls."}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/functions/v1/", "anon-key", srv.Client())
	out, err := c.Solve(context.Background(), "What is gravity?", "Physics")
	require.NoError(t, err)

	assert.Equal(t, "Mass attracts mass.", out.Explanation)
	assert.Equal(t, "An apple falls.", out.Example)
	assert.Equal(t, "What is gravity?", got.Question)
	assert.Equal(t, "Physics", got.Subject)
}

func TestSolve_BlankSubjectSentAsGeneral(t *testing.T) {
	var got models.SolveDoubtRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"explanation":"ok","example":""}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", nil).Solve(context.Background(), "Why?", "  ")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSubject, got.Subject)
}

func TestSolve_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"Question is required"}`, wantMsg: "Question is required"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"Failed to process doubt","details":"HTTP 503"}`, wantMsg: "status 500"},
		{name: "non json error", status: http.StatusBadGateway, body: `upstream gone`, wantMsg: "status 502"},
		{name: "ok without explanation", status: http.StatusOK, body: `{"example":"x"}`, wantMsg: "no explanation"},
		{name: "ok with garbage", status: http.StatusOK, body: `<html>`, wantMsg: "decoding response"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, "anon", nil).Solve(context.Background(), "What is gravity?", "")
			require.ErrorIs(t, err, ErrRequestFailed)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestSolve_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, "anon", nil).Solve(context.Background(), "What is gravity?", "")
	assert.ErrorIs(t, err, ErrRequestFailed)
}
