// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package speech

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
)

// ErrUnsupported is returned by Start when speech capture is not available.
var ErrUnsupported = errors.New("voice input not supported")

// Listener captures one utterance of audio.
type Listener interface {
	Listen(ctx context.Context) ([]byte, error)
	Name() string
}

// Transcriber converts captured audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// availability is implemented by listeners that can be compiled out.
type availability interface {
	Available() bool
}

// Recognizer runs at most one listening session at a time and delivers one
// transcript per successful session.
type Recognizer struct {
	listener     Listener
	transcriber  Transcriber
	onTranscript func(string)

	mu        sync.Mutex
	listening bool
	session   uint64
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a Recognizer. With a nil listener or transcriber it reports
// Supported() == false.
func New(listener Listener, transcriber Transcriber, onTranscript func(string)) *Recognizer {
	return &Recognizer{
		listener:     listener,
		transcriber:  transcriber,
		onTranscript: onTranscript,
	}
}

func (r *Recognizer) Supported() bool {
	if r == nil || r.listener == nil || r.transcriber == nil {
		return false
	}
	if a, ok := r.listener.(availability); ok {
		return a.Available()
	}
	return true
}

func (r *Recognizer) Listening() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listening
}

// Start begins a session in the background. It is a no-op while a session
// is already running.
func (r *Recognizer) Start() error {
	if !r.Supported() {
		return ErrUnsupported
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listening {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.session++
	r.listening = true
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(ctx, r.session)

	slog.Info("voice capture started", "source", r.listener.Name())
	return nil
}

// Stop ends the running session. Its transcript, if any, is dropped.
func (r *Recognizer) Stop() {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.listening {
		return
	}
	r.session++
	r.listening = false
	r.cancel()
	slog.Info("voice capture stopped")
}

// Toggle starts when idle and stops when listening.
func (r *Recognizer) Toggle() error {
	if r.Listening() {
		r.Stop()
		return nil
	}
	return r.Start()
}

// Close stops any session and waits for background work to finish.
func (r *Recognizer) Close() {
	if r == nil {
		return
	}
	r.Stop()
	r.wg.Wait()
}

func (r *Recognizer) run(ctx context.Context, session uint64) {
	defer r.wg.Done()

	text, err := r.capture(ctx)
	if err != nil {
		slog.Warn("voice capture failed", "source", r.listener.Name(), "error", err)
	}

	r.mu.Lock()
	current := r.session == session
	if current {
		r.listening = false
		r.cancel()
	}
	r.mu.Unlock()

	if !current || err != nil || text == "" {
		return
	}

	slog.Debug("transcript delivered", "chars", len(text))
	if r.onTranscript != nil {
		r.onTranscript(text)
	}
}

func (r *Recognizer) capture(ctx context.Context) (string, error) {
	audio, err := r.listener.Listen(ctx)
	if err != nil {
		return "", err
	}

	text, err := r.transcriber.Transcribe(ctx, audio)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
