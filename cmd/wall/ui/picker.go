package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"wallpartners/internal/onboarding"
)

// PickerOverlay is the ephemeral dropdown for one enum-backed form field.
// It exists for the duration of a single interaction: opened with a field
// and its option list, it reports the chosen value (or dismissal) from
// Update and is then discarded by its owner.
type PickerOverlay struct {
	field   onboarding.Field
	options []string
	cursor  int
	styles  Styles
}

// NewPickerOverlay opens a picker for the given field.
func NewPickerOverlay(styles Styles, field onboarding.Field, options []string) PickerOverlay {
	return PickerOverlay{
		field:   field,
		options: options,
		styles:  styles,
	}
}

// Field returns the form field this picker writes to.
func (p PickerOverlay) Field() onboarding.Field {
	return p.field
}

// Update handles navigation keys. selected is non-nil when the user chose
// an option; closed is true when the interaction is over either way.
func (p PickerOverlay) Update(msg tea.Msg) (next PickerOverlay, selected *string, closed bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil, false
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.options)-1 {
			p.cursor++
		}
	case "enter":
		if p.cursor < len(p.options) {
			value := p.options[p.cursor]
			return p, &value, true
		}
	case "esc":
		return p, nil, true
	}
	return p, nil, false
}

// View renders the option list with the cursor row highlighted.
func (p PickerOverlay) View() string {
	var sb strings.Builder
	sb.WriteString(p.styles.Label.Render(onboarding.Label(p.field)))
	sb.WriteString("\n\n")
	for i, opt := range p.options {
		if i == p.cursor {
			sb.WriteString(p.styles.Selected.Render("> " + opt))
		} else {
			sb.WriteString(p.styles.Body.Render("  " + opt))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(p.styles.Muted.Render("enter select · esc close"))
	return p.styles.Card.Render(sb.String())
}
