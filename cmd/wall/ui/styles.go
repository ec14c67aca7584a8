// Package ui provides the bubbletea page models and visual styling for the
// Wall Is Well partners terminal client.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Brand palette from the Wall Is Well partner app.
var (
	Teal      = lipgloss.Color("#165A54")
	TealLight = lipgloss.Color("#1E7A71")
	Black     = lipgloss.Color("#000000")
	NearBlack = lipgloss.Color("#111111")
	White     = lipgloss.Color("#FFFFFF")
	Grey      = lipgloss.Color("#666666")
	GreyDark  = lipgloss.Color("#333333")
	OffWhite  = lipgloss.Color("#F4F5F6")

	// Semantic colors, same in both modes.
	Destructive = lipgloss.Color("#E53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
)

// Theme holds the active color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// DarkTheme is the app's native look: black body, teal header.
func DarkTheme() Theme {
	return Theme{
		Background: Black,
		Foreground: White,
		Primary:    Teal,
		Muted:      Grey,
		Border:     GreyDark,
		Card:       NearBlack,
		IsDark:     true,
	}
}

// LightTheme flips the body to light for pale terminals.
func LightTheme() Theme {
	return Theme{
		Background: OffWhite,
		Foreground: Black,
		Primary:    Teal,
		Muted:      Grey,
		Border:     lipgloss.Color("#DCE0E5"),
		Card:       White,
		IsDark:     false,
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	if name == "" && os.Getenv("WALL_LIGHT_MODE") == "1" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds all styled components shared by the pages.
type Styles struct {
	Theme Theme

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Footer      lipgloss.Style
	Content     lipgloss.Style

	Title    lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	ProgressOn  lipgloss.Style
	ProgressOff lipgloss.Style
	Card        lipgloss.Style
	Badge       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(White).
			Padding(1, 2),

		HeaderTitle: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(White).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Value: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Card).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(White).
			Background(theme.Primary).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(White).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 3),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Card).
			Padding(0, 3),

		Success: lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(Warning),

		ProgressOn:  lipgloss.NewStyle().Foreground(White),
		ProgressOff: lipgloss.NewStyle().Foreground(theme.Muted),

		Card: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Badge: lipgloss.NewStyle().
			Foreground(White).
			Background(TealLight).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(White).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 2),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),
	}
}
