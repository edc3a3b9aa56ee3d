// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/doubt-solver/models"
	"github.com/danielhkuo/doubt-solver/speech"
	"github.com/danielhkuo/doubt-solver/store"
)

// AlertSolveFailed is shown when the explanation request fails.
const AlertSolveFailed = "Failed to solve doubt. Please try again."

var (
	// ErrEmptyQuestion is returned for a blank submit. Nothing is sent.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrBusy is returned while another request is in flight.
	ErrBusy = errors.New("a question is already being solved")
)

// Solver asks the explanation service for an answer.
type Solver interface {
	Solve(ctx context.Context, question, subject string) (models.Explanation, error)
}

// Voice is the speech control exposed to the page.
type Voice interface {
	Supported() bool
	Listening() bool
	Start() error
	Toggle() error
}

// App holds the state of one question-asking session.
type App struct {
	solver Solver
	store  store.Gateway

	mu             sync.Mutex
	voice          Voice
	question       string
	subject        string
	loading        bool
	showHistory    bool
	current        *models.Record
	history        []models.Record
	alert          string
	lastTranscript string
}

// View is a snapshot of the session for rendering.
type View struct {
	Question       string
	Subject        string
	Loading        bool
	ShowHistory    bool
	Current        *models.Record
	History        []models.Record
	Alert          string
	VoiceSupported bool
	Listening      bool
}

func New(solver Solver, gateway store.Gateway) *App {
	return &App{
		solver:  solver,
		store:   gateway,
		history: []models.Record{},
	}
}

// SetVoice attaches the speech control. A nil voice means voice input is
// not supported.
func (a *App) SetVoice(v Voice) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.voice = v
}

// Load replaces the history with the most recent records. On failure the
// current list is kept.
func (a *App) Load(ctx context.Context) {
	records, err := a.store.ListRecent(ctx, models.HistoryLimit)
	if err != nil {
		slog.Error("failed to load history", "error", err)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = records
}

// Submit solves a question, saves the answer and prepends it to history.
func (a *App) Submit(ctx context.Context, question, subject string) error {
	a.mu.Lock()
	if a.loading {
		a.mu.Unlock()
		return ErrBusy
	}
	a.question = question
	a.subject = subject
	if strings.TrimSpace(question) == "" {
		a.mu.Unlock()
		return ErrEmptyQuestion
	}
	a.loading = true
	a.alert = ""
	method := models.InputText
	if a.lastTranscript != "" && question == a.lastTranscript {
		method = models.InputVoice
	}
	a.mu.Unlock()

	answer, err := a.solver.Solve(ctx, question, subject)
	if err != nil {
		a.mu.Lock()
		a.loading = false
		a.alert = AlertSolveFailed
		a.mu.Unlock()
		return fmt.Errorf("solve: %w", err)
	}

	rec, err := a.store.Insert(ctx, models.NewRecord{
		Question:    question,
		Subject:     models.SubjectOrDefault(subject),
		Explanation: answer.Explanation,
		Example:     answer.Example,
		InputMethod: method,
	})

	a.mu.Lock()
	defer a.mu.Unlock()

	a.loading = false
	if err != nil {
		// the answer is still shown, it just never reaches history
		slog.Error("failed to save doubt", "error", err)
		rec = models.Record{
			Subject:     models.SubjectOrDefault(subject),
			Question:    question,
			Explanation: answer.Explanation,
			Example:     answer.Example,
			InputMethod: method,
		}
		a.current = &rec
	} else {
		a.current = &rec
		a.history = append([]models.Record{rec}, a.history...)
		if len(a.history) > models.HistoryLimit {
			a.history = a.history[:models.HistoryLimit]
		}
	}

	a.question = ""
	a.subject = ""
	a.lastTranscript = ""
	return nil
}

// SetTranscript fills the question field with recognized speech.
func (a *App) SetTranscript(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.question = text
	a.lastTranscript = text
}

func (a *App) ToggleHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showHistory = !a.showHistory
}

// ToggleVoice starts or stops listening.
func (a *App) ToggleVoice() error {
	a.mu.Lock()
	v := a.voice
	a.mu.Unlock()

	if v == nil || !v.Supported() {
		return speech.ErrUnsupported
	}
	return v.Toggle()
}

// StartVoice starts listening unless a session is already running.
func (a *App) StartVoice() error {
	a.mu.Lock()
	v := a.voice
	a.mu.Unlock()

	if v == nil || !v.Supported() {
		return speech.ErrUnsupported
	}
	return v.Start()
}

// DismissAlert clears the failure alert once it has been shown.
func (a *App) DismissAlert() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.alert = ""
}

func (a *App) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := View{
		Question:    a.question,
		Subject:     a.subject,
		Loading:     a.loading,
		ShowHistory: a.showHistory,
		History:     append([]models.Record(nil), a.history...),
		Alert:       a.alert,
	}
	if a.current != nil {
		current := *a.current
		v.Current = &current
	}
	if a.voice != nil && a.voice.Supported() {
		v.VoiceSupported = true
		v.Listening = a.voice.Listening()
	}
	return v
}

// History returns a copy of the loaded history, newest first.
func (a *App) History() []models.Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Record{}, a.history...)
}
