// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package speech

import (
	"context"
	"errors"
	"log/slog"
)

var (
	// ErrQueueFull is returned by Push when no clip slot is free.
	ErrQueueFull = errors.New("clip queue full")
	// ErrEmptyClip is returned by Push for a zero-length clip.
	ErrEmptyClip = errors.New("empty clip")
)

// QueueListener hands out uploaded clips, one per utterance.
type QueueListener struct {
	clips chan []byte
}

func NewQueueListener(size int) *QueueListener {
	if size < 1 {
		size = 1
	}
	return &QueueListener{clips: make(chan []byte, size)}
}

func (q *QueueListener) Name() string {
	return "upload"
}

// Push queues a clip without blocking.
func (q *QueueListener) Push(clip []byte) error {
	if len(clip) == 0 {
		return ErrEmptyClip
	}

	select {
	case q.clips <- clip:
		return nil
	default:
		return ErrQueueFull
	}
}

// Listen waits for the next clip. A clip taken by a cancelled listener is
// put back for the next one.
func (q *QueueListener) Listen(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case clip := <-q.clips:
		if err := ctx.Err(); err != nil {
			q.requeue(clip)
			return nil, err
		}
		return clip, nil
	}
}

// requeue puts back a clip taken by a cancelled listener. It is dropped
// when newer uploads filled the queue in the meantime.
func (q *QueueListener) requeue(clip []byte) {
	if err := q.Push(clip); err != nil {
		slog.Warn("dropped audio clip", "bytes", len(clip), "error", err)
	}
}
