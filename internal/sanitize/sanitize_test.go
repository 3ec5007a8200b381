package sanitize

import (
	"strings"
	"testing"
)

func TestHTML_StripsScript(t *testing.T) {
	got := HTML(`You are <b>definitely</b> available.<script>alert(1)</script>`)
	if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
		t.Errorf("script survived sanitizing: %q", got)
	}
	if !strings.Contains(got, "<b>definitely</b>") {
		t.Errorf("expected <b> to be kept, got %q", got)
	}
}

func TestHTML_StripsEventHandlers(t *testing.T) {
	got := HTML(`<span class="hint" onclick="steal()">x</span>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler survived: %q", got)
	}
	if !strings.Contains(got, `class="hint"`) {
		t.Errorf("expected class to be kept, got %q", got)
	}
}

func TestHTML_Empty(t *testing.T) {
	if got := HTML(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestText_RemovesAllMarkup(t *testing.T) {
	got := Text("  <em>No</em> Time &amp; more ")
	if got != "No Time & more" {
		t.Errorf("expected plain text, got %q", got)
	}
}
