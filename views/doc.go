// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the question page from an app.View with the
// embedded html/template files. Card timestamps use DateLayout plus a
// relative age from go-humanize; unsaved records show no timestamp.
package views
