// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrorType classifies upstream failures.
type ErrorType string

const (
	ErrorTypeAuth      ErrorType = "auth"
	ErrorTypeModel     ErrorType = "model"
	ErrorTypeEndpoint  ErrorType = "endpoint"
	ErrorTypeRateLimit ErrorType = "rate_limit"
	ErrorTypeResponse  ErrorType = "response"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// Error is a classified upstream failure. Nothing in this module retries,
// Retryable only informs the logs.
type Error struct {
	Type       ErrorType
	Message    string
	Retryable  bool
	Cause      error
	StatusCode int
	Model      string
}

func (e *Error) Error() string {
	parts := []string{string(e.Type)}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", e.StatusCode))
	}
	if e.Model != "" {
		parts = append(parts, "model="+e.Model)
	}
	parts = append(parts, e.Message)

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Cause)
	}
	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a classified error.
func NewError(errType ErrorType, message string, retryable bool, cause error) *Error {
	return &Error{
		Type:      errType,
		Message:   message,
		Retryable: retryable,
		Cause:     cause,
	}
}

// ClassifyError turns a go-openai or transport error into an *Error.
func ClassifyError(err error) *Error {
	if err == nil {
		return nil
	}

	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	var classified *Error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		classified = NewError(ErrorTypeAuth, "authentication failed", false, err)
	case status == http.StatusNotFound:
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "model") {
			classified = NewError(ErrorTypeModel, "model not found", false, err)
		} else {
			classified = NewError(ErrorTypeEndpoint, "endpoint not found", false, err)
		}
	case status == http.StatusTooManyRequests:
		classified = NewError(ErrorTypeRateLimit, "rate limited", true, err)
	case status >= 500:
		classified = NewError(ErrorTypeEndpoint, "server error", true, err)
	case status >= 400:
		classified = NewError(ErrorTypeUnknown, "request rejected", false, err)
	default:
		lower := strings.ToLower(err.Error())
		switch {
		case strings.Contains(lower, "connection refused") || strings.Contains(lower, "no such host"):
			classified = NewError(ErrorTypeEndpoint, "connection failed", true, err)
		case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded") ||
			strings.Contains(lower, "context canceled"):
			classified = NewError(ErrorTypeEndpoint, "request timeout", true, err)
		default:
			classified = NewError(ErrorTypeUnknown, "llm error", false, err)
		}
	}
	classified.StatusCode = status
	return classified
}

// IsRetryable returns true if the error is a retryable *Error.
func IsRetryable(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Retryable
	}
	return false
}
