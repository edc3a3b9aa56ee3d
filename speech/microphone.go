// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build portaudio

package speech

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gordonklaus/portaudio"
)

const (
	framesPerBuffer  = 1024
	silenceThreshold = int16(500)
)

// MicrophoneListener records one utterance from the default input device.
// Recording ends after one second of silence or ten seconds in total.
type MicrophoneListener struct {
	sampleRate int
}

func NewMicrophoneListener(sampleRate int) *MicrophoneListener {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &MicrophoneListener{sampleRate: sampleRate}
}

func (m *MicrophoneListener) Name() string {
	return "microphone"
}

func (m *MicrophoneListener) Available() bool {
	return true
}

func (m *MicrophoneListener) Listen(ctx context.Context) ([]byte, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}
	defer portaudio.Terminate()

	buffer := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(m.sampleRate), len(buffer), buffer)
	if err != nil {
		return nil, fmt.Errorf("opening stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Stop()

	slog.Debug("microphone recording", "sample_rate", m.sampleRate)

	samples := make([]int16, 0, m.sampleRate*5)
	silenceFrames := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := stream.Read(); err != nil {
			return nil, fmt.Errorf("reading from stream: %w", err)
		}
		samples = append(samples, buffer...)

		if silent(buffer, silenceThreshold) {
			silenceFrames += len(buffer)
		} else {
			silenceFrames = 0
		}

		if silenceFrames > m.sampleRate && len(samples) > m.sampleRate {
			break
		}
		if len(samples) > m.sampleRate*10 {
			break
		}
	}

	return EncodeWAV(samples, m.sampleRate), nil
}
