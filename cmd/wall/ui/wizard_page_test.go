package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wallpartners/internal/onboarding"
)

// okService approves everything. Pages never reach the network in these
// tests; commands returned by Update are not executed.
type okService struct{}

func (okService) SubmitOnboarding(ctx context.Context, form onboarding.Form) error {
	return nil
}

func (okService) ApprovalStatus(ctx context.Context) (onboarding.Decision, error) {
	return onboarding.DecisionApproved, nil
}

func testStyles() Styles {
	return NewStyles(DarkTheme())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(t *testing.T, p WizardPage, text string) WizardPage {
	t.Helper()
	for _, r := range text {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestWizardRendersStepOne(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	p := NewWizardPage(machine, testStyles())

	view := p.View()
	if !strings.Contains(view, "Let's get to know") {
		t.Fatalf("expected step 1 title in view")
	}
	if !strings.Contains(view, "May we know your full name?") {
		t.Fatalf("expected full name prompt in view")
	}
	if !strings.Contains(view, "Select from below") {
		t.Fatalf("expected unset picker placeholder in view")
	}
	if !strings.Contains(view, "Next") {
		t.Fatalf("expected Next action before the final step")
	}
}

func TestWizardTypingUpdatesMachine(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	p := NewWizardPage(machine, testStyles())

	p = typeInto(t, p, "Asha Rao")

	if got := machine.FormSnapshot().FullName; got != "Asha Rao" {
		t.Fatalf("expected typed name in form, got %q", got)
	}
}

func TestWizardTabMovesFocus(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	p := NewWizardPage(machine, testStyles())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if p.focus != 1 {
		t.Fatalf("expected focus 1 after tab, got %d", p.focus)
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if p.focus != 0 {
		t.Fatalf("expected focus 0 after shift+tab, got %d", p.focus)
	}
}

func TestWizardEnterOpensPickerForEnumField(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	p := NewWizardPage(machine, testStyles())

	// Step 1's last field is the role picker.
	for i := 0; i < 3; i++ {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if p.picker == nil {
		t.Fatalf("expected picker to open on the role field")
	}
	if !strings.Contains(p.View(), "Photographer") {
		t.Fatalf("expected role options in picker view")
	}

	// Choose the second option.
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if p.picker != nil {
		t.Fatalf("expected picker to close after selection")
	}
	if got := machine.FormSnapshot().Role; got != onboarding.RoleVisualArtist {
		t.Fatalf("expected Visual Artist, got %q", got)
	}
}

func TestWizardEnterOnFilledEnumFieldAdvancesStep(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	p := NewWizardPage(machine, testStyles())

	p = typeInto(t, p, "Asha Rao")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = typeInto(t, p, "asha@example.com")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = typeInto(t, p, "Bengaluru")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Enter on the empty role field opens the picker; the selection closes
	// it with the last field now filled.
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.picker == nil {
		t.Fatalf("expected picker for the role field")
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// A second enter now reaches the Next action.
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if step, _ := machine.Step(); step != 2 {
		t.Fatalf("expected step 2 after completing step 1, got %d", step)
	}
	if !strings.Contains(p.View(), "Tell us about your") {
		t.Fatalf("expected step 2 title after advancing")
	}
}

func TestWizardSpaceReopensPicker(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	machine.SelectOption(onboarding.FieldRole, string(onboarding.RolePhotographer))
	p := NewWizardPage(machine, testStyles())

	for i := 0; i < 3; i++ {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	p, _ = p.Update(keyRunes(" "))

	if p.picker == nil {
		t.Fatalf("expected space to reopen the picker on a filled enum field")
	}
}

func TestWizardValidationErrorShownAndStepHeld(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	machine.SelectOption(onboarding.FieldRole, string(onboarding.RolePhotographer))
	p := NewWizardPage(machine, testStyles())

	// Jump to the filled role field and hit Next with the text fields empty.
	for i := 0; i < 3; i++ {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if step, _ := machine.Step(); step != 1 {
		t.Fatalf("expected to stay on step 1, got %d", step)
	}
	if p.errMsg == "" {
		t.Fatalf("expected a validation message")
	}
	if !strings.Contains(p.View(), "May we know your full name?") {
		t.Fatalf("expected the missing field named in the view")
	}
}

func TestWizardEscRetreats(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	for _, set := range []struct {
		field onboarding.Field
		value string
	}{
		{onboarding.FieldFullName, "Asha"},
		{onboarding.FieldContact, "asha@example.com"},
		{onboarding.FieldLocation, "Bengaluru"},
		{onboarding.FieldRole, string(onboarding.RolePhotographer)},
	} {
		machine.SetField(set.field, set.value)
	}
	if err := machine.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	p := NewWizardPage(machine, testStyles())

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatalf("expected no quit command when retreating from step 2")
	}
	if step, _ := machine.Step(); step != 1 {
		t.Fatalf("expected step 1 after esc, got %d", step)
	}

	// Esc on step 1 leaves the wizard.
	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command on esc from step 1")
	}
}

func TestWizardSubmittedView(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	form := onboarding.Form{}
	for step := 1; step <= onboarding.StepCount; step++ {
		for _, field := range onboarding.StepFields(step) {
			if opts := onboarding.Options(field); opts != nil {
				form.Set(field, opts[0])
			} else {
				form.Set(field, "value")
			}
			machine.SetField(field, form.Get(field))
		}
		if step < onboarding.StepCount {
			if err := machine.Advance(); err != nil {
				t.Fatalf("advance step %d: %v", step, err)
			}
		}
	}
	if err := machine.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	p := NewWizardPage(machine, testStyles())
	view := p.View()
	if !strings.Contains(view, "Approval pending") {
		t.Fatalf("expected pending approval view, got:\n%s", view)
	}

	if err := machine.CheckApproval(context.Background()); err != nil {
		t.Fatalf("check approval: %v", err)
	}
	view = p.View()
	if !strings.Contains(view, "You're in!") {
		t.Fatalf("expected approved view, got:\n%s", view)
	}
}

func TestWizardSubmitErrorMessageDisplayed(t *testing.T) {
	machine := onboarding.NewMachine(okService{}, nil)
	p := NewWizardPage(machine, testStyles())
	p.loading = true

	p, _ = p.Update(submitResultMsg{err: &stubError{"Bank account could not be verified"}})

	if p.loading {
		t.Fatalf("expected loading cleared after result")
	}
	if !strings.Contains(p.View(), "Something went wrong") {
		t.Fatalf("expected fallback error message in view")
	}
}

type stubError struct{ msg string }

func (e *stubError) Error() string { return e.msg }
