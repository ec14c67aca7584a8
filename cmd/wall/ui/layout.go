package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressSegments renders the wizard's four-segment progress bar: filled
// through the current step, dim beyond it. allOn lights every segment (the
// submitted/approved screens).
func ProgressSegments(styles Styles, total, current int, allOn bool) string {
	segments := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		seg := "━━━━━"
		if allOn || i <= current {
			segments = append(segments, styles.ProgressOn.Render(seg))
		} else {
			segments = append(segments, styles.ProgressOff.Render(seg))
		}
	}
	return strings.Join(segments, " ")
}

// CenterBox centers content inside the given width/height.
func CenterBox(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Bar renders a fixed-width percentage bar for the dashboard legend.
func Bar(styles Styles, percentage float64, width int) string {
	if width < 2 {
		width = 10
	}
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return styles.ProgressOn.Render(strings.Repeat("█", filled)) +
		styles.ProgressOff.Render(strings.Repeat("░", width-filled))
}
