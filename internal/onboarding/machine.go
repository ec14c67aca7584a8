package onboarding

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Status is the wizard's lifecycle phase. The machine is a strict forward
// chain: Filling(1..4) -> Submitted -> Approved. There is no edge back
// from Submitted or Approved into Filling.
type Status int

const (
	StatusFilling Status = iota
	StatusSubmitted
	StatusApproved
)

func (s Status) String() string {
	switch s {
	case StatusFilling:
		return "filling"
	case StatusSubmitted:
		return "submitted"
	case StatusApproved:
		return "approved"
	}
	return "unknown"
}

// Decision is the backend's approval verdict for a submitted profile.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionApproved
)

// ParseDecision maps the backend's status string to a Decision. Unknown
// values are treated as pending, which keeps the check retryable.
func ParseDecision(s string) Decision {
	if s == "approved" {
		return DecisionApproved
	}
	return DecisionPending
}

// Service is the collaborator boundary the machine submits through.
// api.Client satisfies it; tests inject fakes.
type Service interface {
	SubmitOnboarding(ctx context.Context, form Form) error
	ApprovalStatus(ctx context.Context) (Decision, error)
}

// DraftStore persists the in-progress form between sessions.
type DraftStore interface {
	SaveDraft(form Form, step int) error
	LoadDraft() (form Form, step int, ok bool, err error)
	ClearDraft() error
}

var (
	// ErrInFlight is returned when a submit or approval check is invoked
	// while another one is still outstanding. At most one network
	// operation runs per machine at any time.
	ErrInFlight = errors.New("onboarding: request already in flight")

	// ErrNotFilling is returned by form-phase operations once the wizard
	// has been submitted.
	ErrNotFilling = errors.New("onboarding: wizard is no longer in the filling phase")

	// ErrNotSubmitted is returned by CheckApproval outside the submitted
	// phase.
	ErrNotSubmitted = errors.New("onboarding: profile has not been submitted")

	// ErrNotApproved is returned by Restart before approval.
	ErrNotApproved = errors.New("onboarding: profile is not approved")
)

// Machine owns the wizard state: the form, the current step, and the
// lifecycle status. All mutation goes through its methods. Network results
// are applied only if the machine's generation is unchanged since the call
// started, so a response that arrives after Reset is dropped instead of
// resurrecting abandoned state.
type Machine struct {
	mu  sync.Mutex
	svc Service
	log *zap.Logger

	drafts DraftStore
	nav    func()

	form      Form
	status    Status
	step      int
	inFlight  bool
	gen       uint64
	restarted bool
}

// NewMachine creates a wizard at Filling step 1 with an empty form.
func NewMachine(svc Service, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		svc:    svc,
		log:    log,
		status: StatusFilling,
		step:   1,
	}
}

// AttachDrafts wires a draft store and rehydrates the form from any saved
// draft. Draft errors are logged, never fatal; a broken draft just means
// starting over.
func (m *Machine) AttachDrafts(d DraftStore) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.drafts = d
	form, step, ok, err := d.LoadDraft()
	if err != nil {
		m.log.Warn("failed to load onboarding draft", zap.Error(err))
		return
	}
	if ok && m.status == StatusFilling {
		if step < 1 || step > StepCount {
			step = 1
		}
		m.form = form
		m.step = step
		m.log.Info("restored onboarding draft", zap.Int("step", step))
	}
}

// SetNavigator installs the external navigation hook Restart fires.
func (m *Machine) SetNavigator(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nav = fn
}

// Status returns the current lifecycle phase.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Step returns the current step. ok is false outside the filling phase,
// where the step is not meaningful.
func (m *Machine) Step() (step int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step, m.status == StatusFilling
}

// FormSnapshot returns a copy of the form as collected so far.
func (m *Machine) FormSnapshot() Form {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

// InFlight reports whether a submit or approval check is outstanding. The
// UI disables its action button while this is true.
func (m *Machine) InFlight() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}

// SetField writes a free-text field.
func (m *Machine) SetField(field Field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != StatusFilling {
		return
	}
	m.form.Set(field, value)
}

// SelectOption writes a picker-backed field and ends the picker
// interaction. Total operation: values outside the field's closed option
// set are ignored rather than stored.
func (m *Machine) SelectOption(field Field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != StatusFilling || !ValidOption(field, value) {
		return
	}
	m.form.Set(field, value)
	m.saveDraftLocked()
}

// Advance moves to the next step after validating the current one. It is
// purely local; at step 4 the caller invokes Submit instead.
func (m *Machine) Advance() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusFilling {
		return ErrNotFilling
	}
	if err := m.form.Validate(m.step); err != nil {
		return err
	}
	if m.step >= StepCount {
		return nil
	}
	m.step++
	m.saveDraftLocked()
	return nil
}

// Retreat steps back one step. It returns false at step 1, where going
// back is the caller's navigation concern, not a state change.
func (m *Machine) Retreat() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusFilling || m.step <= 1 {
		return false
	}
	m.step--
	m.saveDraftLocked()
	return true
}

// Submit validates the final step and sends the full form to the backend.
// On success the wizard transitions to Submitted and the draft is cleared.
// On any failure the state is unchanged: still Filling, still step 4, and
// the error (carrying the collaborator's message where present) is
// returned for display. There is no automatic retry.
func (m *Machine) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.status != StatusFilling {
		m.mu.Unlock()
		return ErrNotFilling
	}
	if m.step != StepCount {
		m.mu.Unlock()
		return ErrNotFilling
	}
	if err := m.form.Validate(StepCount); err != nil {
		m.mu.Unlock()
		return err
	}
	if m.inFlight {
		m.mu.Unlock()
		return ErrInFlight
	}
	m.inFlight = true
	gen := m.gen
	form := m.form
	m.mu.Unlock()

	err := m.svc.SubmitOnboarding(ctx, form)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false

	if gen != m.gen {
		// The wizard was reset while the call was outstanding; the
		// response no longer applies to anything.
		m.log.Debug("dropping stale submission result")
		return err
	}
	if err != nil {
		m.log.Warn("onboarding submission failed", zap.Error(err))
		return err
	}

	m.status = StatusSubmitted
	m.clearDraftLocked()
	m.log.Info("onboarding profile submitted")
	return nil
}

// CheckApproval asks the backend whether the submitted profile has been
// approved. A pending verdict or any error leaves the wizard Submitted;
// the user may check again indefinitely.
func (m *Machine) CheckApproval(ctx context.Context) error {
	m.mu.Lock()
	if m.status != StatusSubmitted {
		m.mu.Unlock()
		return ErrNotSubmitted
	}
	if m.inFlight {
		m.mu.Unlock()
		return ErrInFlight
	}
	m.inFlight = true
	gen := m.gen
	m.mu.Unlock()

	decision, err := m.svc.ApprovalStatus(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false

	if gen != m.gen {
		m.log.Debug("dropping stale approval result")
		return err
	}
	if err != nil {
		m.log.Warn("approval check failed", zap.Error(err))
		return err
	}
	if decision == DecisionApproved {
		m.status = StatusApproved
		m.log.Info("onboarding profile approved")
	}
	return nil
}

// Restart exits the approved wizard into the dashboard. It is a terminal
// action, not a state reset; the navigation hook fires exactly once no
// matter how often Restart is called.
func (m *Machine) Restart() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusApproved {
		return ErrNotApproved
	}
	if m.restarted {
		return nil
	}
	m.restarted = true
	if m.nav != nil {
		m.nav()
	}
	return nil
}

// Reset discards the wizard back to an empty Filling step 1. Any response
// from a call started before the reset is dropped when it lands.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.form = Form{}
	m.status = StatusFilling
	m.step = 1
	m.restarted = false
	m.gen++
	m.clearDraftLocked()
}

func (m *Machine) saveDraftLocked() {
	if m.drafts == nil {
		return
	}
	if err := m.drafts.SaveDraft(m.form, m.step); err != nil {
		m.log.Warn("failed to save onboarding draft", zap.Error(err))
	}
}

func (m *Machine) clearDraftLocked() {
	if m.drafts == nil {
		return
	}
	if err := m.drafts.ClearDraft(); err != nil {
		m.log.Warn("failed to clear onboarding draft", zap.Error(err))
	}
}
