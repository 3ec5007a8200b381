package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolvePlain(t *testing.T) {
	out, err := run(t, "resolve", "--plain", "#000000", "#edf0f3", "#CC343E")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "#e8e9e9\n#171616\n#e8e9e9\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestResolveRejectsMalformed(t *testing.T) {
	if _, err := run(t, "resolve", "#12345"); err == nil {
		t.Fatal("expected error for malformed color")
	}
}

func TestPaletteListsPriorities(t *testing.T) {
	out, err := run(t, "palette")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"standard", "notime", "uncertain", "certain"} {
		if !strings.Contains(out, id) {
			t.Errorf("palette missing %s:\n%s", id, out)
		}
	}
}
