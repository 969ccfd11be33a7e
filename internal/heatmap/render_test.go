package heatmap

import (
	"strings"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	now := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	g := BuildYearGrid(nil, 2025, now)

	opts := DefaultOptions()
	out := Render(g, opts)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want month row + 7 day rows", len(lines))
	}
	if !strings.Contains(lines[0], "ม.ค.") {
		t.Errorf("month row = %q", lines[0])
	}
	if got := strings.Count(out, dayGlyph); got != 365 {
		t.Errorf("rendered %d day glyphs, want 365", got)
	}

	opts.ShowMonths = false
	if n := len(strings.Split(Render(g, opts), "\n")); n != 7 {
		t.Errorf("without months got %d lines", n)
	}
}

func TestRenderFuture(t *testing.T) {
	now := time.Date(2025, time.December, 30, 12, 0, 0, 0, time.UTC)
	out := Render(BuildYearGrid(nil, 2025, now), DefaultOptions())
	if got := strings.Count(out, futureGlyph); got != 1 {
		t.Errorf("rendered %d future glyphs, want 1", got)
	}
}
