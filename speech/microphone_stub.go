// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build !portaudio

package speech

import (
	"context"
	"fmt"
)

// MicrophoneListener stub when portaudio is not available
type MicrophoneListener struct{}

func NewMicrophoneListener(sampleRate int) *MicrophoneListener {
	return &MicrophoneListener{}
}

func (m *MicrophoneListener) Name() string {
	return "microphone"
}

// Available is false, so a Recognizer built on the stub is unsupported.
func (m *MicrophoneListener) Available() bool {
	return false
}

func (m *MicrophoneListener) Listen(_ context.Context) ([]byte, error) {
	return nil, fmt.Errorf("%w: rebuild with -tags portaudio", ErrUnsupported)
}
