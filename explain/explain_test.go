// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package explain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/doubt-solver/models"
)

// fakeCompleter records the prompt and returns a fixed answer.
type fakeCompleter struct {
	prompt string
	calls  int
	out    models.Explanation
	err    error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (models.Explanation, error) {
	f.calls++
	f.prompt = prompt
	return f.out, f.err
}

func TestExplain_MissingQuestion(t *testing.T) {
	fake := &fakeCompleter{}
	svc := NewService(fake)

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := svc.Explain(context.Background(), q, "Physics")
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("Expected ErrMissingField for %q, got %v", q, err)
		}
	}

	if fake.calls != 0 {
		t.Errorf("Expected no upstream calls, got %d", fake.calls)
	}
}

func TestExplain_DemoMode(t *testing.T) {
	svc := NewService(nil)

	if !svc.Degraded() {
		t.Fatal("Expected service without completer to be degraded")
	}

	out, err := svc.Explain(context.Background(), "What is gravity?", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(out.Explanation, "What is gravity?") {
		t.Errorf("Expected explanation to contain the question, got %q", out.Explanation)
	}
	if out.Example == "" {
		t.Error("Expected a demo example")
	}

	again, _ := svc.Explain(context.Background(), "What is gravity?", "Physics")
	if again != out {
		t.Error("Expected demo answer to be deterministic")
	}
}

func TestExplain_Upstream(t *testing.T) {
	fake := &fakeCompleter{out: models.Explanation{Explanation: "Mass attracts mass.", Example: "An apple falls."}}
	svc := NewService(fake)

	out, err := svc.Explain(context.Background(), "What is gravity?", "Physics")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if out != fake.out {
		t.Errorf("Expected upstream pair verbatim, got %+v", out)
	}
	if !strings.Contains(fake.prompt, "Subject: Physics\n") {
		t.Errorf("Expected subject in prompt, got %q", fake.prompt)
	}
	if !strings.Contains(fake.prompt, "Question: What is gravity?\n") {
		t.Errorf("Expected question in prompt, got %q", fake.prompt)
	}
}

func TestExplain_UpstreamFailure(t *testing.T) {
	cause := errors.New("HTTP 503")
	svc := NewService(&fakeCompleter{err: cause})

	_, err := svc.Explain(context.Background(), "What is gravity?", "")
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Expected ErrUpstream, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected cause to be preserved, got %v", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	expected := "You are a helpful tutor who explains concepts in the simplest way possible. \n\n" +
		"Subject: General\n" +
		"Question: Why is the sky blue?\n\n" +
		"Provide:\n" +
		"1. A simple, clear explanation (2-3 paragraphs max) that anyone can understand\n" +
		"2. A practical example that illustrates the concept\n\n" +
		"Format your response as JSON with two fields: \"explanation\" and \"example\"."

	if got := BuildPrompt("", "Why is the sky blue?"); got != expected {
		t.Errorf("Expected prompt:\n%s\ngot:\n%s", expected, got)
	}
}
