package ui

import (
	"strings"
	"testing"
)

func TestProgressSegmentsLightsThroughCurrent(t *testing.T) {
	styles := testStyles()

	out := ProgressSegments(styles, 4, 2, false)
	if got := strings.Count(out, "━━━━━"); got != 4 {
		t.Fatalf("expected 4 segments, got %d", got)
	}

	allOn := ProgressSegments(styles, 4, 0, true)
	if got := strings.Count(allOn, "━━━━━"); got != 4 {
		t.Fatalf("expected 4 segments when all on, got %d", got)
	}
}

func TestBarFillProportions(t *testing.T) {
	styles := testStyles()

	half := Bar(styles, 50, 10)
	if got := strings.Count(half, "█"); got != 5 {
		t.Fatalf("expected 5 filled cells at 50%%, got %d", got)
	}
	if got := strings.Count(half, "░"); got != 5 {
		t.Fatalf("expected 5 empty cells at 50%%, got %d", got)
	}

	over := Bar(styles, 250, 10)
	if got := strings.Count(over, "█"); got != 10 {
		t.Fatalf("expected fill clamped to width, got %d", got)
	}

	under := Bar(styles, -20, 10)
	if got := strings.Count(under, "█"); got != 0 {
		t.Fatalf("expected no fill below zero, got %d", got)
	}
}

func TestCenterBoxPassthroughWithoutSize(t *testing.T) {
	if got := CenterBox(0, 0, "hello"); got != "hello" {
		t.Fatalf("expected content unchanged without a size, got %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").IsDark {
		t.Fatalf("expected dark theme")
	}
	if ThemeByName("light").IsDark {
		t.Fatalf("expected light theme")
	}
	if !ThemeByName("").IsDark {
		t.Fatalf("expected dark default")
	}
}
