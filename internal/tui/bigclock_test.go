package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderBigClockRows(t *testing.T) {
	rows := renderBigClock("12:34", 0)
	if len(rows) != glyphHeight {
		t.Fatalf("expected %d rows, got %d", glyphHeight, len(rows))
	}
	width := ansi.StringWidth(rows[0])
	for i, r := range rows {
		if ansi.StringWidth(r) != width {
			t.Fatalf("row %d width %d, want %d", i, ansi.StringWidth(r), width)
		}
	}
}

func TestRenderBigClockTruncates(t *testing.T) {
	for _, r := range renderBigClock("100:00", 12) {
		if ansi.StringWidth(r) > 12 {
			t.Fatalf("row exceeds width: %q", r)
		}
	}
}

func TestBigClockSkipsUnknownRunes(t *testing.T) {
	if got, want := bigClock("1x", 0), bigClock("1", 0); got != want {
		t.Fatalf("unknown rune should be skipped")
	}
	if !strings.Contains(bigClock("8", 0), "█") {
		t.Fatalf("expected block glyphs")
	}
}
