package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/focusring/internal/models"
)

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		45 * time.Second:             "45s",
		25 * time.Minute:             "25m",
		2 * time.Hour:                "2h",
		2*time.Hour + 15*time.Minute: "2h 15m",
	}
	for d, want := range cases {
		if got := FormatDuration(d); got != want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestFormatRecord(t *testing.T) {
	rec := models.SessionRecord{
		Kind:            models.KindWork,
		DurationSeconds: 1500,
		CompletedAt:     time.Now(),
	}
	got := FormatRecord(rec)
	if !strings.Contains(got, "work") || !strings.HasSuffix(got, "25m") {
		t.Fatalf("unexpected record line %q", got)
	}
}
