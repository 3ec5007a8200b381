package calendar

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/teamcal/internal/templates/layouts"
	"github.com/keyxmakerx/teamcal/internal/templates/pages"
)

// toolbarID is the element id the toolbar swaps itself into.
const toolbarID = "event-priority-controls"

// ToolbarData is everything the priority toolbar needs.
type ToolbarData struct {
	Priorities []Priority
	Selected   Selection
}

// PriorityToolbar renders one submit button per priority inside a form
// that posts to /calendar/priority. The selected button is marked pressed.
// calendar.js sends the post with HX-Request and swaps the returned toolbar
// in place; without scripts the post redirects back to the calendar.
func PriorityToolbar(data ToolbarData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<form id="%s" class="event-priority-controls" method="post" action="/calendar/priority" role="toolbar" aria-label="Event priority">`+
				`<input type="hidden" name="csrf_token" value="%s">`,
			toolbarID, templ.EscapeString(layouts.GetCSRFToken(ctx))); err != nil {
			return err
		}
		for _, p := range data.Priorities {
			pressed := p.ID == data.Selected.PriorityID
			classes := templ.EscapeString(p.ID) + " event-priority-button outline"
			ariaPressed := "false"
			if pressed {
				classes += " pressed"
				ariaPressed = "true"
			}
			if _, err := fmt.Fprintf(w,
				`<button type="submit" name="priority" value="%s" class="%s" aria-pressed="%s" title="%s"`+
					` style="background-color:%s;color:%s">`+
					`<img src="%s" alt="" class="event-priority-button-icon">`+
					`<span>%s</span></button>`,
				templ.EscapeString(p.ID),
				classes, ariaPressed, templ.EscapeString(p.Name),
				templ.EscapeString(p.Color), templ.EscapeString(p.TextColor),
				templ.EscapeString(p.IconURL),
				templ.EscapeString(p.Name),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</form>`); err != nil {
			return err
		}
		return priorityLegend(data.Priorities).Render(ctx, w)
	})
}

// priorityLegend lists each priority with its description. Details were
// sanitized by the service and are written unescaped.
func priorityLegend(priorities []Priority) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<dl class="event-priority-legend">`); err != nil {
			return err
		}
		for _, p := range priorities {
			if _, err := fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`,
				templ.EscapeString(p.Name), p.Detail); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</dl>`)
		return err
	})
}

// CalendarPage is the full calendar page. The calendar itself is drawn in
// the browser; the page supplies the toolbar right after the calendar
// header and the current selection as data attributes.
func CalendarPage(data ToolbarData) templ.Component {
	return pages.Base("Calendar", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section id="calendar-shell" data-priority="%s" data-priority-color="%s" data-priority-text-color="%s">`+
				`<div class="fc-header-toolbar fc-toolbar fc-toolbar-ltr"></div>`,
			templ.EscapeString(data.Selected.PriorityID),
			templ.EscapeString(data.Selected.Color),
			templ.EscapeString(data.Selected.TextColor),
		); err != nil {
			return err
		}
		if err := PriorityToolbar(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<div id="calendar"></div></section>`+
			`<script src="/static/js/calendar.js"></script>`)
		return err
	}))
}
