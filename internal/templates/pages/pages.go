// Package pages holds the full-page templ components shared by every plugin:
// the base layout, the landing page and the error page.
package pages

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/teamcal/internal/templates/layouts"
)

// navLinks are the top navigation entries.
var navLinks = []struct{ Path, Label string }{
	{"/home", "Home"},
	{"/calendar", "Calendar"},
}

// Base wraps body in the site layout. The CSRF token is exposed through a
// meta tag so the form scripts can send it as X-CSRF-Token.
func Base(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<meta name="csrf-token" content="%s">`+
				`<title>%s</title>`+
				`<link rel="stylesheet" href="/static/css/app.css">`+
				`</head><body>`,
			templ.EscapeString(layouts.GetCSRFToken(ctx)),
			templ.EscapeString(title),
		); err != nil {
			return err
		}

		if err := nav(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main><script src="/static/js/forms.js"></script></body></html>`)
		return err
	})
}

func nav(ctx context.Context, w io.Writer) error {
	active := layouts.GetActivePath(ctx)
	if _, err := io.WriteString(w, `<nav class="container"><ul>`); err != nil {
		return err
	}
	for _, l := range navLinks {
		current := ""
		if l.Path == active {
			current = ` aria-current="page"`
		}
		if _, err := fmt.Fprintf(w, `<li><a href="%s"%s>%s</a></li>`,
			templ.EscapeString(l.Path), current, templ.EscapeString(l.Label)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</ul><ul>`); err != nil {
		return err
	}
	if layouts.IsSignedIn(ctx) {
		_, err := io.WriteString(w, `<li><a href="#" id="logout">Log out</a></li>`)
		if err != nil {
			return err
		}
	} else {
		_, err := io.WriteString(w, `<li><a href="/login">Log in</a></li>`)
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul></nav>`)
	return err
}

// Landing is the public start page.
func Landing() templ.Component {
	return Base("teamcal", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<h1>teamcal</h1><p>Plan availability with your teams.</p>`+
				`<p><a href="/calendar" role="button">Open calendar</a></p>`)
		return err
	}))
}

// ErrorPage renders a full error page for browser requests.
func ErrorPage(code int, message string) templ.Component {
	title := fmt.Sprintf("%d %s", code, http.StatusText(code))
	return Base(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<article class="error"><h1>%s</h1><p>%s</p><a href="/">Back to start</a></article>`,
			templ.EscapeString(title), templ.EscapeString(message))
		return err
	}))
}
