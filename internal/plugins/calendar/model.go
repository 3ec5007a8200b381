// Package calendar serves the calendar page extensions: the event priority
// palette, the per-session priority selection, the priority toolbar, and the
// colors the calendar renderer paints events with.
package calendar

import (
	"time"

	"github.com/keyxmakerx/teamcal/internal/contrast"
)

// Built-in priority IDs.
const (
	PriorityStandard  = "standard"
	PriorityNoTime    = "notime"
	PriorityUncertain = "uncertain"
	PriorityCertain   = "certain"
)

// Priority is an event priority the user can paint calendar events with.
type Priority struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Detail    string    `json:"detail"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Derived fields, filled by the service.
	TextColor string `json:"text_color"`
	IconURL   string `json:"icon_url"`
}

// defaultPriorities is the palette used when the event_priorities table is
// empty. It matches the seed migration.
var defaultPriorities = []Priority{
	{ID: PriorityStandard, Name: "Standard", Detail: "A regular appointment.", Color: "#edf0f3", SortOrder: 0},
	{ID: PriorityNoTime, Name: "No Time", Detail: "You are unavailable during this time.", Color: "#cc343e", SortOrder: 1},
	{ID: PriorityUncertain, Name: "Uncertain", Detail: "You might be available, but it is not fixed.", Color: "#efb700", SortOrder: 2},
	{ID: PriorityCertain, Name: "Certain", Detail: "You are definitely available.", Color: "#008450", SortOrder: 3},
}

// DefaultPriorities returns a copy of the built-in palette with derived
// fields filled in.
func DefaultPriorities() []Priority {
	out := make([]Priority, len(defaultPriorities))
	for i, p := range defaultPriorities {
		out[i] = decorate(p)
	}
	return out
}

// StandardColor is the color of the standard priority. Unknown priorities
// fall back to it.
const StandardColor = "#edf0f3"

// ColorFor returns the built-in color for a priority ID, or StandardColor
// for anything unknown.
func ColorFor(id string) string {
	for _, p := range defaultPriorities {
		if p.ID == id {
			return p.Color
		}
	}
	return StandardColor
}

// iconURL returns the toolbar icon path for a priority.
func iconURL(id string) string {
	return "/static/icons/priority-" + id + ".svg"
}

// decorate fills the derived fields of p. A color that fails to parse falls
// back to the standard color so one bad row can't break the toolbar.
func decorate(p Priority) Priority {
	bg, err := contrast.ParseHex(p.Color)
	if err != nil {
		bg = contrast.MustParseHex(StandardColor)
		p.Color = StandardColor
	}
	p.TextColor = contrast.Resolve(bg).Hex()
	p.IconURL = iconURL(p.ID)
	return p
}

// Selection is the priority currently chosen in the toolbar. New events are
// created with it. Selections are values: choosing another priority produces
// a new Selection rather than changing an existing one.
type Selection struct {
	PriorityID string `json:"priority_id"`
	Color      string `json:"color"`
	TextColor  string `json:"text_color"`
}

// Select returns the selection for p.
func Select(p Priority) Selection {
	p = decorate(p)
	return Selection{
		PriorityID: p.ID,
		Color:      p.Color,
		TextColor:  p.TextColor,
	}
}

// DefaultSelection is what a session starts with: the standard priority.
func DefaultSelection() Selection {
	return Select(defaultPriorities[0])
}

// EventColors is what the calendar renderer needs to draw one event.
type EventColors struct {
	Background string `json:"background_color"`
	Border     string `json:"border_color"`
	Text       string `json:"text_color"`
}

// ColorsFor returns the event colors for a priority.
func ColorsFor(p Priority) EventColors {
	p = decorate(p)
	return EventColors{
		Background: p.Color,
		Border:     p.Color,
		Text:       p.TextColor,
	}
}

// EventStyle is EventColors plus the event's start date in display form.
type EventStyle struct {
	EventColors
	Date string `json:"date,omitempty"`
}

// --- Request DTOs ---

// SelectRequest is the body of a selection change.
type SelectRequest struct {
	PriorityID string `json:"priority" form:"priority"`
}

// ContrastResponse is returned by the contrast lookup endpoint.
type ContrastResponse struct {
	Background string `json:"background"`
	Color      string `json:"color"`
}
