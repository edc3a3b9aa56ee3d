// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package speech captures a spoken question and turns it into text.

A Recognizer combines a Listener, which records one utterance, with a
Transcriber, which converts it to text:

	rec := speech.New(speech.NewQueueListener(4), llmClient, app.SetTranscript)
	if rec.Supported() {
		rec.Toggle()
	}

Only one session runs at a time. A successful session delivers exactly one
transcript and returns to idle. Stop drops whatever the running session
would have produced. Capture and transcription failures are logged and
reset the recognizer to idle without a callback.

# Listeners

  - QueueListener: clips uploaded over HTTP, one per utterance
  - MicrophoneListener: the default input device via portaudio. Build with
    -tags portaudio; without the tag it is unavailable and the Recognizer
    reports Supported() == false.
*/
package speech
