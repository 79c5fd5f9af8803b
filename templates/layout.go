// Package templates renders the server-side pages. Components are built with
// templ so handlers can compose and stream them; all user-entered text goes
// through templ's escaper.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// esc escapes user-entered text for safe HTML interpolation.
func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps page content with the shared document shell. HTMX powers the
// inline edits; the toast listener picks up HX-Trigger events.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · SolarQuote</title>
<script src="/static/htmx.min.js"></script>
<script src="/static/app.js" defer></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="topbar"><a href="/quotations" class="brand">SolarQuote</a></header>
<main class="page">
`, esc(title)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<div id="toast-container"></div>
</body>
</html>
`)
		return err
	})
}

// fieldError renders the inline validation message for a form field, if any.
func fieldError(w io.Writer, errors map[string]string, field string) error {
	msg, ok := errors[field]
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, esc(msg))
	return err
}
