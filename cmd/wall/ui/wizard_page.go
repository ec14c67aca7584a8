package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wallpartners/internal/api"
	"wallpartners/internal/onboarding"
)

// Messages produced by the wizard's network commands.
type (
	submitResultMsg   struct{ err error }
	approvalResultMsg struct{ err error }
)

// WizardPage drives the onboarding machine: it renders the current step's
// fields, opens the picker overlay for enum fields, and turns the footer
// action into Advance/Submit/CheckApproval/Restart depending on where the
// machine is. Network calls run as tea commands; the footer is disabled
// while one is outstanding.
type WizardPage struct {
	machine *onboarding.Machine
	styles  Styles

	inputs  map[onboarding.Field]textinput.Model
	focus   int
	picker  *PickerOverlay
	spinner spinner.Model

	loading bool
	errMsg  string
	navDone bool
	width   int
	height  int
}

// NewWizardPage builds the wizard around an existing machine. The machine
// may already hold a rehydrated draft; the inputs pick its values up.
func NewWizardPage(machine *onboarding.Machine, styles Styles) WizardPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Success

	p := WizardPage{
		machine: machine,
		styles:  styles,
		inputs:  make(map[onboarding.Field]textinput.Model),
		spinner: sp,
	}
	p.rebuildInputs()
	return p
}

// rebuildInputs syncs the textinput models with the machine's form and
// focuses the first field of the current step.
func (p *WizardPage) rebuildInputs() {
	form := p.machine.FormSnapshot()
	step, ok := p.machine.Step()
	if !ok {
		return
	}

	for _, field := range onboarding.StepFields(step) {
		if onboarding.Options(field) != nil {
			continue // enum fields use the picker, not a textinput
		}
		ti, exists := p.inputs[field]
		if !exists {
			ti = textinput.New()
			ti.Placeholder = "Write here..."
			ti.CharLimit = 256
			ti.Width = 48
		}
		ti.SetValue(form.Get(field))
		ti.Blur()
		p.inputs[field] = ti
	}
	p.focus = 0
	p.focusCurrent()
}

func (p *WizardPage) currentFields() []onboarding.Field {
	step, ok := p.machine.Step()
	if !ok {
		return nil
	}
	return onboarding.StepFields(step)
}

func (p *WizardPage) focusCurrent() {
	fields := p.currentFields()
	for i, field := range fields {
		ti, ok := p.inputs[field]
		if !ok {
			continue
		}
		if i == p.focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
		p.inputs[field] = ti
	}
}

// SetSize records the window size.
func (p *WizardPage) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// Init starts the cursor blink.
func (p WizardPage) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys, picker routing, and network results.
func (p WizardPage) Update(msg tea.Msg) (WizardPage, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, nil

	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case submitResultMsg:
		p.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, onboarding.ErrInFlight) {
				return p, nil
			}
			p.errMsg = api.UserMessage(msg.err)
			return p, nil
		}
		p.errMsg = ""
		return p, nil

	case approvalResultMsg:
		p.loading = false
		if msg.err != nil && !errors.Is(msg.err, onboarding.ErrInFlight) {
			p.errMsg = api.UserMessage(msg.err)
			return p, nil
		}
		p.errMsg = ""
		return p, nil

	case tea.KeyMsg:
		return p.updateKey(msg)
	}

	return p, nil
}

func (p WizardPage) updateKey(key tea.KeyMsg) (WizardPage, tea.Cmd) {
	if p.picker != nil {
		picker, selected, closed := p.picker.Update(key)
		p.picker = &picker
		if closed {
			p.picker = nil
		}
		if selected != nil {
			p.machine.SelectOption(picker.Field(), *selected)
			// Move on to the next field so enter on the last field can
			// reach the Next/Submit action instead of reopening the picker.
			if fields := p.currentFields(); p.focus < len(fields)-1 {
				p.focus++
				p.focusCurrent()
			}
		}
		return p, nil
	}

	switch key.String() {
	case "ctrl+c":
		return p, tea.Quit

	case "esc":
		if p.machine.Status() != onboarding.StatusFilling {
			return p, tea.Quit
		}
		if !p.machine.Retreat() {
			// Step 1: going back leaves the wizard entirely.
			return p, tea.Quit
		}
		p.errMsg = ""
		p.rebuildInputs()
		return p, nil

	case "tab", "down":
		if p.machine.Status() == onboarding.StatusFilling {
			fields := p.currentFields()
			if p.focus < len(fields)-1 {
				p.focus++
				p.focusCurrent()
			}
			return p, nil
		}

	case "shift+tab", "up":
		if p.machine.Status() == onboarding.StatusFilling && p.focus > 0 {
			p.focus--
			p.focusCurrent()
			return p, nil
		}

	case " ":
		// Space reopens the picker on an already-chosen enum field. On a
		// text field it is just a character.
		if p.machine.Status() == onboarding.StatusFilling {
			fields := p.currentFields()
			if p.focus < len(fields) {
				if opts := onboarding.Options(fields[p.focus]); opts != nil {
					picker := NewPickerOverlay(p.styles, fields[p.focus], opts)
					p.picker = &picker
					return p, nil
				}
			}
		}

	case "enter":
		return p.activate()
	}

	// Everything else goes to the focused text input.
	if p.machine.Status() == onboarding.StatusFilling {
		fields := p.currentFields()
		if p.focus < len(fields) {
			field := fields[p.focus]
			if ti, ok := p.inputs[field]; ok {
				var cmd tea.Cmd
				ti, cmd = ti.Update(key)
				p.inputs[field] = ti
				p.machine.SetField(field, ti.Value())
				return p, cmd
			}
		}
	}
	return p, nil
}

// activate performs the footer action for the current machine state, or
// opens the picker when an enum field is focused.
func (p WizardPage) activate() (WizardPage, tea.Cmd) {
	switch p.machine.Status() {
	case onboarding.StatusApproved:
		if !p.navDone {
			p.navDone = true
			_ = p.machine.Restart()
		}
		return p, tea.Quit

	case onboarding.StatusSubmitted:
		if p.loading {
			return p, nil
		}
		p.loading = true
		p.errMsg = ""
		m := p.machine
		return p, tea.Batch(p.spinner.Tick, func() tea.Msg {
			return approvalResultMsg{err: m.CheckApproval(context.Background())}
		})
	}

	// Filling phase. An unset enum field opens its picker; anything else
	// moves focus forward until the last field, where enter means Next or
	// Submit.
	fields := p.currentFields()
	if p.focus < len(fields) {
		field := fields[p.focus]
		snap := p.machine.FormSnapshot()
		if opts := onboarding.Options(field); opts != nil && snap.Get(field) == "" {
			picker := NewPickerOverlay(p.styles, field, opts)
			p.picker = &picker
			return p, nil
		}
		if p.focus < len(fields)-1 {
			p.focus++
			p.focusCurrent()
			return p, nil
		}
	}

	// Last field: advance, or submit from the final step.
	step, _ := p.machine.Step()
	if step < onboarding.StepCount {
		if err := p.machine.Advance(); err != nil {
			p.errMsg = err.Error()
			return p, nil
		}
		p.errMsg = ""
		p.rebuildInputs()
		return p, nil
	}

	if p.loading {
		return p, nil
	}
	snap := p.machine.FormSnapshot()
	if err := snap.Validate(onboarding.StepCount); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	p.loading = true
	p.errMsg = ""
	m := p.machine
	return p, tea.Batch(p.spinner.Tick, func() tea.Msg {
		return submitResultMsg{err: m.Submit(context.Background())}
	})
}

// View renders the header, the state-appropriate body, and the footer.
func (p WizardPage) View() string {
	if p.picker != nil {
		return p.picker.View()
	}

	switch p.machine.Status() {
	case onboarding.StatusSubmitted:
		return p.statusView(
			"Approval pending\nfor onboarding",
			"Your profile has been submitted and waiting for approval.",
			"enter check status · esc close",
		)
	case onboarding.StatusApproved:
		return p.statusView(
			"You're in!",
			"Your profile has been approved.",
			"enter go to dashboard",
		)
	}

	return p.fillingView()
}

func (p WizardPage) statusView(title, body, hint string) string {
	var sb strings.Builder
	sb.WriteString(p.styles.Header.Render(
		ProgressSegments(p.styles, onboarding.StepCount, 0, true) + "\n\n" +
			p.styles.HeaderTitle.Render(title)))
	sb.WriteString("\n\n")
	sb.WriteString(p.styles.Content.Render(p.styles.Body.Render(body)))
	sb.WriteString("\n")
	if p.errMsg != "" {
		sb.WriteString(p.styles.Content.Render(p.styles.Error.Render(p.errMsg)))
		sb.WriteString("\n")
	}
	if p.loading {
		sb.WriteString(p.styles.Content.Render(p.spinner.View() + " Checking..."))
		sb.WriteString("\n")
	}
	sb.WriteString(p.styles.Footer.Render(hint))
	return sb.String()
}

func (p WizardPage) fillingView() string {
	step, _ := p.machine.Step()
	form := p.machine.FormSnapshot()
	fields := onboarding.StepFields(step)

	var sb strings.Builder
	sb.WriteString(p.styles.Header.Render(
		ProgressSegments(p.styles, onboarding.StepCount, step, false) + "\n\n" +
			p.styles.HeaderTitle.Render(onboarding.StepTitle(step))))
	sb.WriteString("\n\n")

	var body strings.Builder
	for i, field := range fields {
		body.WriteString(p.styles.Label.Render(onboarding.Label(field)))
		body.WriteString("\n")
		if onboarding.Options(field) != nil {
			value := form.Get(field)
			display := value
			if display == "" {
				display = "Select from below"
			}
			if i == p.focus {
				body.WriteString(p.styles.Selected.Render("▾ " + display))
			} else if value == "" {
				body.WriteString(p.styles.Muted.Render("▾ " + display))
			} else {
				body.WriteString(p.styles.Value.Render("▾ " + display))
			}
		} else if ti, ok := p.inputs[field]; ok {
			body.WriteString(ti.View())
		}
		body.WriteString("\n\n")
	}
	sb.WriteString(p.styles.Content.Render(body.String()))

	if p.errMsg != "" {
		sb.WriteString(p.styles.Content.Render(p.styles.Error.Render(p.errMsg)))
		sb.WriteString("\n")
	}

	action := "Next"
	if step == onboarding.StepCount {
		action = "Submit"
	}
	if p.loading {
		sb.WriteString(p.styles.Content.Render(p.spinner.View() + " Submitting..."))
		sb.WriteString("\n")
		sb.WriteString(p.styles.Footer.Render(p.styles.ButtonDisabled.Render(action)))
	} else {
		sb.WriteString(p.styles.Footer.Render(
			p.styles.Button.Render(action) + "   " +
				p.styles.Muted.Render("enter next · space pick · tab fields · esc back")))
	}
	return sb.String()
}
