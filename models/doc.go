// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
explanation service, its client, the record store and the pages.

# Request Types

  - SolveDoubtRequest: question, subject

# Response Types

  - Explanation: explanation, example
  - ErrorResponse: error, details

# Domain Types

  - Record: one stored question/answer (id, user_id, subject, question,
    explanation, example, input_method, created_at)
  - NewRecord: insert payload without the store-assigned fields

# Constants

Input methods:

	InputText  = "text"
	InputVoice = "voice"

Defaults:

	DefaultSubject = "General"
	HistoryLimit   = 10
*/
package models
