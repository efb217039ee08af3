package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultFocusMinutes != 25 {
		t.Fatalf("DefaultFocusMinutes = %d", DefaultFocusMinutes)
	}
	if DefaultBreakMinutes != 5 {
		t.Fatalf("DefaultBreakMinutes = %d", DefaultBreakMinutes)
	}
	if DefaultTheme != "light" {
		t.Fatalf("DefaultTheme = %q", DefaultTheme)
	}
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if MinRingWidth <= 0 || TargetRingWidth < MinRingWidth {
		t.Fatalf("unexpected ring width constants")
	}
}

func TestIsKnownTheme(t *testing.T) {
	for _, name := range Themes {
		if !IsKnownTheme(name) {
			t.Fatalf("expected %q to be known", name)
		}
	}
	if IsKnownTheme("solarized") {
		t.Fatalf("unexpected theme accepted")
	}
	if !IsKnownTheme(DefaultTheme) {
		t.Fatalf("default theme must be selectable")
	}
}
