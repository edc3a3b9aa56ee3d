// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"time"
)

// DefaultSubject is stored when a question is submitted without a subject.
const DefaultSubject = "General"

// HistoryLimit is the number of records shown in the history list.
const HistoryLimit = 10

// InputMethod records how a question was captured.
type InputMethod string

const (
	InputText  InputMethod = "text"
	InputVoice InputMethod = "voice"
)

// Valid reports whether m is one of the known input methods.
func (m InputMethod) Valid() bool {
	return m == InputText || m == InputVoice
}

// SubjectOrDefault returns subject, or DefaultSubject when it is blank.
func SubjectOrDefault(subject string) string {
	if strings.TrimSpace(subject) == "" {
		return DefaultSubject
	}
	return subject
}

// Request types

type SolveDoubtRequest struct {
	Question string `json:"question"`
	Subject  string `json:"subject,omitempty"`
}

// Response types

// Explanation is the two-field answer produced by the explanation service.
type Explanation struct {
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// Domain types

// Record is one persisted question/answer. ID and CreatedAt are assigned by
// the store on insert and never change afterwards.
type Record struct {
	ID          string      `json:"id"`
	UserID      *string     `json:"user_id"`
	Subject     string      `json:"subject"`
	Question    string      `json:"question"`
	Explanation string      `json:"explanation"`
	Example     string      `json:"example"`
	InputMethod InputMethod `json:"input_method"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Saved reports whether the record came back from the store.
func (r Record) Saved() bool {
	return r.ID != "" && !r.CreatedAt.IsZero()
}

// NewRecord is the insert payload for the record store.
type NewRecord struct {
	Question    string      `json:"question"`
	Subject     string      `json:"subject"`
	Explanation string      `json:"explanation"`
	Example     string      `json:"example"`
	InputMethod InputMethod `json:"input_method"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
