// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/doubt-solver/models"
)

var (
	// ErrMissingField is returned when the question is blank.
	ErrMissingField = errors.New("question is required")
	// ErrUpstream wraps every completion failure.
	ErrUpstream = errors.New("upstream completion failed")
)

// SystemInstruction is sent ahead of every prompt.
const SystemInstruction = "You are a helpful tutor. Always respond with valid JSON containing 'explanation' and 'example' fields."

// Completer produces an explanation and example for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (models.Explanation, error)
}

// Service turns questions into explanations. A nil Completer means no
// upstream credential is configured and every answer is the demo answer.
type Service struct {
	completer Completer
}

func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// Degraded reports whether the service answers without an upstream.
func (s *Service) Degraded() bool {
	return s.completer == nil
}

// Explain answers one question. The pair returned by the upstream is passed
// through verbatim.
func (s *Service) Explain(ctx context.Context, question, subject string) (models.Explanation, error) {
	if strings.TrimSpace(question) == "" {
		return models.Explanation{}, ErrMissingField
	}

	if s.Degraded() {
		slog.Debug("no completer configured, returning demo explanation")
		return DemoExplanation(question), nil
	}

	out, err := s.completer.Complete(ctx, BuildPrompt(subject, question))
	if err != nil {
		return models.Explanation{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return out, nil
}

// BuildPrompt renders the tutor prompt. A blank subject becomes "General".
func BuildPrompt(subject, question string) string {
	return "You are a helpful tutor who explains concepts in the simplest way possible. \n\n" +
		"Subject: " + models.SubjectOrDefault(subject) + "\n" +
		"Question: " + question + "\n\n" +
		"Provide:\n" +
		"1. A simple, clear explanation (2-3 paragraphs max) that anyone can understand\n" +
		"2. A practical example that illustrates the concept\n\n" +
		`Format your response as JSON with two fields: "explanation" and "example".`
}

// DemoExplanation is the canned answer used without an upstream. The
// question appears verbatim in the explanation.
func DemoExplanation(question string) models.Explanation {
	return models.Explanation{
		Explanation: "I understand you're asking about: " + question + ". Let me break this down in simple terms.\n\n" +
			"This is a demo response. To get real AI-powered explanations, please configure your OpenAI API key in the Supabase Edge Function environment variables.",
		Example: "Example: Once the API key is configured, I'll provide relevant, practical examples based on your question.",
	}
}
