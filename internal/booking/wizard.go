package booking

import (
	"strings"
	"sync"
	"time"

	"github.com/homeprohq/homepro-platform/internal/timing"
)

// DefaultSubmitLatency simulates the reservation round-trip.
const DefaultSubmitLatency = 1600 * time.Millisecond

// Status is the banner shown above the wizard form.
type Status struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Status banner types.
const (
	StatusInfo    = "info"
	StatusError   = "error"
	StatusLoading = "loading"
	StatusSuccess = "success"
)

var (
	statusStepOne      = Status{Type: StatusInfo, Message: "Step 1 of 2: Choose your service preferences."}
	statusStepTwo      = Status{Type: StatusInfo, Message: "Step 2 of 2: Share how our concierge team can reach you."}
	statusBackToOne    = Status{Type: StatusInfo, Message: "Step 1 of 2: Update your service preferences."}
	statusStepOneError = Status{Type: StatusError, Message: "Please complete the highlighted details to continue."}
	statusStepTwoError = Status{Type: StatusError, Message: "Please complete your contact details before submitting."}
	statusProcessing   = Status{Type: StatusLoading, Message: "Processing your reservation with our concierge team..."}
	statusConfirmed    = Status{Type: StatusSuccess, Message: "Booking confirmed! Our concierge team will reach out shortly."}
)

// State is a point-in-time snapshot of a wizard.
type State struct {
	Step       int               `json:"step"`
	Draft      Draft             `json:"draft"`
	Errors     map[string]string `json:"errors"`
	Status     Status            `json:"status"`
	Submitting bool              `json:"submitting"`
	Submitted  bool              `json:"submitted"`
}

// Wizard is the two-step booking form machine. Step 1 collects service
// preferences, step 2 contact details. Step 2 fields are never validated
// while the wizard sits on step 1.
type Wizard struct {
	delay       timing.Delay
	latency     time.Duration
	onConfirmed func(Draft)
	onFailure   func(step int)

	mu         sync.Mutex
	draft      Draft
	step       int
	errors     map[string]string
	status     Status
	submitting bool
	submitted  bool
	cancel     func()
	closed     bool
}

// WizardOption configures a Wizard.
type WizardOption func(*Wizard)

// WithDelay substitutes the timer primitive, used by tests.
func WithDelay(d timing.Delay) WizardOption {
	return func(w *Wizard) { w.delay = d }
}

// WithSubmitLatency overrides the simulated submit latency.
func WithSubmitLatency(d time.Duration) WizardOption {
	return func(w *Wizard) {
		if d > 0 {
			w.latency = d
		}
	}
}

// WithConfirmedCallback registers fn to run with the final draft once the
// simulated submit resolves.
func WithConfirmedCallback(fn func(Draft)) WizardOption {
	return func(w *Wizard) { w.onConfirmed = fn }
}

// WithFailureCallback registers fn to run with the step number whenever
// validation blocks an advance or submit.
func WithFailureCallback(fn func(step int)) WizardOption {
	return func(w *Wizard) { w.onFailure = fn }
}

// NewWizard creates a wizard on step 1 with an empty draft.
func NewWizard(opts ...WizardOption) *Wizard {
	w := &Wizard{
		delay:   timing.Real,
		latency: DefaultSubmitLatency,
		step:    1,
		errors:  make(map[string]string),
		status:  statusStepOne,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetField updates one draft field and clears any error held against it.
func (w *Wizard) SetField(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.submitting || w.submitted {
		return ErrBusy
	}

	switch field {
	case FieldService:
		w.draft.Service = value
	case FieldDate:
		w.draft.Date = value
	case FieldTime:
		w.draft.Time = value
	case FieldAddress:
		w.draft.Address = value
	case FieldFirstName:
		w.draft.FirstName = value
	case FieldLastName:
		w.draft.LastName = value
	case FieldPhone:
		w.draft.Phone = value
	case FieldEmail:
		w.draft.Email = value
	case FieldNotes:
		w.draft.Notes = value
	default:
		return ErrUnknownField
	}
	delete(w.errors, field)
	return nil
}

func (w *Wizard) validateStepOneLocked() map[string]string {
	errs := make(map[string]string)
	if w.draft.Service == "" {
		errs[FieldService] = "Select the service you wish to transform."
	}
	if w.draft.Date == "" {
		errs[FieldDate] = "Choose a preferred date to continue."
	}
	if w.draft.Time == "" {
		errs[FieldTime] = "Select the ideal arrival window."
	}
	if strings.TrimSpace(w.draft.Address) == "" {
		errs[FieldAddress] = "Share the service address so our team can prepare."
	}
	return errs
}

func (w *Wizard) validateStepTwoLocked() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(w.draft.FirstName) == "" {
		errs[FieldFirstName] = "Enter the first name we should greet you by."
	}
	if strings.TrimSpace(w.draft.LastName) == "" {
		errs[FieldLastName] = "Add your family name for reservation records."
	}
	if strings.TrimSpace(w.draft.Phone) == "" {
		errs[FieldPhone] = "Provide a phone number for concierge updates."
	}
	if strings.TrimSpace(w.draft.Email) == "" {
		errs[FieldEmail] = "We need an email to send your confirmation."
	}
	return errs
}

// Next advances from step 1 to step 2 once the service preferences are
// complete. It reports whether the advance happened.
func (w *Wizard) Next() (bool, error) {
	w.mu.Lock()
	if w.closed || w.submitting || w.submitted {
		w.mu.Unlock()
		return false, ErrBusy
	}
	if w.step != 1 {
		w.mu.Unlock()
		return false, ErrWrongStep
	}

	errs := w.validateStepOneLocked()
	if len(errs) > 0 {
		for field, msg := range errs {
			w.errors[field] = msg
		}
		w.status = statusStepOneError
		onFailure := w.onFailure
		w.mu.Unlock()
		if onFailure != nil {
			onFailure(1)
		}
		return false, nil
	}

	for _, field := range []string{FieldService, FieldDate, FieldTime, FieldAddress} {
		delete(w.errors, field)
	}
	w.step = 2
	w.status = statusStepTwo
	w.mu.Unlock()
	return true, nil
}

// Back returns to step 1 without validating anything.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.submitting || w.submitted {
		return ErrBusy
	}
	w.step = 1
	w.status = statusBackToOne
	return nil
}

// Submit validates the contact details and starts the simulated
// reservation. The wizard stays in the submitting state for the configured
// latency, then flips to submitted and runs the confirmed callback. It
// reports whether submission started.
func (w *Wizard) Submit() (bool, error) {
	w.mu.Lock()
	if w.closed || w.submitting || w.submitted {
		w.mu.Unlock()
		return false, ErrBusy
	}
	if w.step != 2 {
		w.mu.Unlock()
		return false, ErrWrongStep
	}

	errs := w.validateStepTwoLocked()
	if len(errs) > 0 {
		for field, msg := range errs {
			w.errors[field] = msg
		}
		w.status = statusStepTwoError
		onFailure := w.onFailure
		w.mu.Unlock()
		if onFailure != nil {
			onFailure(2)
		}
		return false, nil
	}

	for _, field := range []string{FieldFirstName, FieldLastName, FieldPhone, FieldEmail} {
		delete(w.errors, field)
	}
	w.submitting = true
	w.status = statusProcessing
	w.cancel = w.delay(w.latency, w.confirm)
	w.mu.Unlock()
	return true, nil
}

func (w *Wizard) confirm() {
	w.mu.Lock()
	if w.closed || !w.submitting {
		w.mu.Unlock()
		return
	}
	w.submitting = false
	w.submitted = true
	w.status = statusConfirmed
	w.cancel = nil
	draft := w.draft
	onConfirmed := w.onConfirmed
	w.mu.Unlock()

	if onConfirmed != nil {
		onConfirmed(draft)
	}
}

// Reset returns the wizard to a blank step 1, cancelling any in-flight
// submit.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.draft = Draft{}
	w.step = 1
	w.errors = make(map[string]string)
	w.status = statusStepOne
	w.submitting = false
	w.submitted = false
}

// State returns a snapshot of the wizard.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	errs := make(map[string]string, len(w.errors))
	for k, v := range w.errors {
		errs[k] = v
	}
	return State{
		Step:       w.step,
		Draft:      w.draft,
		Errors:     errs,
		Status:     w.status,
		Submitting: w.submitting,
		Submitted:  w.submitted,
	}
}

// Close cancels any pending submit timer. Further operations return ErrBusy.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}
