package calendar

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/keyxmakerx/teamcal/internal/templates/layouts"
)

func renderToolbar(t *testing.T, data ToolbarData) string {
	t.Helper()
	ctx := layouts.SetCSRFToken(context.Background(), "csrf-abc")
	var buf bytes.Buffer
	if err := PriorityToolbar(data).Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestPriorityToolbar_MarksSelectedButton(t *testing.T) {
	html := renderToolbar(t, ToolbarData{
		Priorities: DefaultPriorities(),
		Selected:   Select(defaultPriorities[2]),
	})

	if !strings.Contains(html, `class="uncertain event-priority-button outline pressed" aria-pressed="true"`) {
		t.Errorf("selected button not marked pressed:\n%s", html)
	}
	if strings.Count(html, `aria-pressed="true"`) != 1 {
		t.Errorf("expected exactly one pressed button")
	}
	if !strings.Contains(html, `class="standard event-priority-button outline" aria-pressed="false"`) {
		t.Errorf("unselected button should not be pressed")
	}
}

func TestPriorityToolbar_ButtonsCarryResolvedColors(t *testing.T) {
	html := renderToolbar(t, ToolbarData{
		Priorities: DefaultPriorities(),
		Selected:   DefaultSelection(),
	})

	for _, want := range []string{
		`background-color:#cc343e;color:#e8e9e9`,
		`background-color:#efb700;color:#171616`,
		`src="/static/icons/priority-certain.svg"`,
		`name="csrf_token" value="csrf-abc"`,
		`name="priority" value="notime"`,
		`id="event-priority-controls"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("toolbar missing %q", want)
		}
	}
}

func TestPriorityToolbar_EscapesNames(t *testing.T) {
	html := renderToolbar(t, ToolbarData{
		Priorities: []Priority{decorate(Priority{ID: "x", Name: `<img onerror=1>`, Color: "#000000"})},
	})
	if strings.Contains(html, "<img onerror") {
		t.Errorf("priority name was not escaped:\n%s", html)
	}
}

func TestCalendarPage_IncludesSelection(t *testing.T) {
	var buf bytes.Buffer
	data := ToolbarData{Priorities: DefaultPriorities(), Selected: Select(defaultPriorities[3])}
	if err := CalendarPage(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `data-priority="certain"`) {
		t.Errorf("page missing selection data attribute")
	}
	if strings.Index(html, "fc-header-toolbar") > strings.Index(html, toolbarID) {
		t.Errorf("toolbar should follow the calendar header")
	}
}
