// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package app holds the state behind the question page.

One App is one session: the question and subject fields, the loading flag,
the latest answer, up to ten history records, the failure alert and the
voice control.

	a := app.New(solverClient, gateway)
	a.Load(ctx)
	err := a.Submit(ctx, "What is gravity?", "Physics")
	view := a.View()

Submit is inert for a blank question (ErrEmptyQuestion) and rejects a
second request while one is in flight (ErrBusy). A failed request sets the
alert and leaves history and the fields alone. A failed save still shows the
answer, unsaved, and leaves history alone.

A question equal to the last transcript from the speech adapter is stored
with input method voice, anything else as text.
*/
package app
