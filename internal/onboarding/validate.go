package onboarding

import (
	"fmt"
	"strings"
)

// StepCount is the number of filling steps in the wizard.
const StepCount = 4

// stepFields lists the fields collected on each step, in render order.
var stepFields = [StepCount + 1][]Field{
	1: {FieldFullName, FieldContact, FieldLocation, FieldRole},
	2: {FieldPhotographerType, FieldPortfolio, FieldGenres, FieldOpenToCommissions},
	3: {FieldHearAboutUs, FieldGoals, FieldUpdatesConsent},
	4: {FieldPANNumber, FieldBankAccountNumber, FieldIFSCCode},
}

// fieldLabels are the prompts shown next to each field. They double as the
// names reported in validation errors.
var fieldLabels = map[Field]string{
	FieldFullName:          "May we know your full name?",
	FieldContact:           "What is the best way for us to connect?",
	FieldLocation:          "Where are you from?",
	FieldRole:              "Who are you?",
	FieldPhotographerType:  "Which of these best describes you?",
	FieldPortfolio:         "Link to your portfolio?",
	FieldGenres:            "Which genres do you work in?",
	FieldOpenToCommissions: "Open to commissions?",
	FieldHearAboutUs:       "How did you hear about us?",
	FieldGoals:             "Anything about your work/goals?",
	FieldUpdatesConsent:    "Receive updates?",
	FieldPANNumber:         "PAN number",
	FieldBankAccountNumber: "Bank account number",
	FieldIFSCCode:          "IFSC code",
}

// StepFields returns the fields rendered on the given step.
func StepFields(step int) []Field {
	if step < 1 || step > StepCount {
		return nil
	}
	return stepFields[step]
}

// Label returns the prompt text for a field.
func Label(f Field) string {
	return fieldLabels[f]
}

// StepTitle is the header shown while filling the given step.
func StepTitle(step int) string {
	switch step {
	case 1:
		return "Let's get to know\nabout you"
	case 2:
		return "Tell us about your\nwork"
	case 3:
		return "Almost there...\nJust a few details"
	case 4:
		return "Verify your\npayout details"
	}
	return ""
}

// ValidationError reports the fields still empty on a step. It blocks the
// transition; no network call is involved and no state changes.
type ValidationError struct {
	Step    int
	Missing []Field
}

func (e *ValidationError) Error() string {
	labels := make([]string, 0, len(e.Missing))
	for _, f := range e.Missing {
		labels = append(labels, fieldLabels[f])
	}
	return fmt.Sprintf("step %d incomplete: %s", e.Step, strings.Join(labels, "; "))
}

// Validate checks presence of every field on the given step. All fields
// are required; format checking is the backend's concern.
func (f *Form) Validate(step int) error {
	var missing []Field
	for _, field := range StepFields(step) {
		if strings.TrimSpace(f.Get(field)) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Step: step, Missing: missing}
	}
	return nil
}
