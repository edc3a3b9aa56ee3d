// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/doubt-solver/app"
)

// DateLayout is how card timestamps are shown, e.g. "Mar 1, 2025, 02:30 PM".
const DateLayout = "Jan 2, 2006, 03:04 PM"

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html").Funcs(template.FuncMap{
		"formatDate": formatDate,
		"isoTime":    func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
		"ago":        func(t time.Time) string { return humanize.Time(t) },
	}).ParseFS(templateFS, "templates/*.html"),
)

// Page is everything the question page renders.
type Page struct {
	app.View
	// ClipUpload shows the recording upload form.
	ClipUpload bool
}

// Render writes the question page.
func Render(w io.Writer, p Page) error {
	return pageTemplate.ExecuteTemplate(w, "page.html", p)
}

func formatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}
