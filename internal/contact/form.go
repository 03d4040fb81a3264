package contact

import (
	"sync"
	"time"

	"github.com/homeprohq/homepro-platform/internal/timing"
)

// Status is the lifecycle phase of a contact form.
type Status int

const (
	StatusEditing Status = iota
	StatusSubmitting
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	default:
		return "editing"
	}
}

const (
	// DefaultSubmitLatency simulates the send round-trip.
	DefaultSubmitLatency = 1500 * time.Millisecond
	// DefaultSuccessDisplay is how long the thank-you message stays up
	// before the form resets blank.
	DefaultSuccessDisplay = 5 * time.Second
)

// SuccessMessage is shown while the form is in the succeeded state.
const SuccessMessage = "Your message has been sent successfully. Our team will get back to you soon."

// Form tracks one visitor's contact form: field values, which fields have
// been touched, per-field errors, and the submit lifecycle.
type Form struct {
	delay   timing.Delay
	latency time.Duration
	display time.Duration
	onSent  func(Message)

	mu      sync.Mutex
	values  map[string]string
	touched map[string]bool
	errors  map[string]string
	status  Status
	cancel  func()
	closed  bool
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithDelay substitutes the timer primitive, used by tests.
func WithDelay(d timing.Delay) FormOption {
	return func(f *Form) { f.delay = d }
}

// WithLatencies overrides the simulated submit latency and the success
// display duration.
func WithLatencies(submit, display time.Duration) FormOption {
	return func(f *Form) {
		if submit > 0 {
			f.latency = submit
		}
		if display > 0 {
			f.display = display
		}
	}
}

// WithSentCallback registers fn to run with the message once the simulated
// send completes.
func WithSentCallback(fn func(Message)) FormOption {
	return func(f *Form) { f.onSent = fn }
}

// NewForm creates a blank, untouched form.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		delay:   timing.Real,
		latency: DefaultSubmitLatency,
		display: DefaultSuccessDisplay,
		values:  make(map[string]string),
		touched: make(map[string]bool),
		errors:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Change updates a field value. Fields already touched revalidate on every
// change so the error clears as soon as the input becomes valid.
func (f *Form) Change(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != StatusEditing {
		return
	}
	f.values[field] = value
	if f.touched[field] {
		f.setErrorLocked(field, ValidateField(field, value))
	}
}

// Blur marks the field touched and validates it.
func (f *Form) Blur(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != StatusEditing {
		return
	}
	f.touched[field] = true
	f.setErrorLocked(field, ValidateField(field, f.values[field]))
}

func (f *Form) setErrorLocked(field, msg string) {
	if msg == "" {
		delete(f.errors, field)
	} else {
		f.errors[field] = msg
	}
}

// Submit validates every required field regardless of touched state. When
// valid it enters the submitting state, resolves after the simulated
// latency, shows the success message for the display duration, then resets
// the form blank and untouched. It reports whether submission started.
func (f *Form) Submit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.status != StatusEditing {
		return false
	}

	msg := f.messageLocked()
	errs := Validate(msg)
	for field := range errs {
		f.touched[field] = true
	}
	f.errors = errs
	if len(errs) > 0 {
		return false
	}

	f.status = StatusSubmitting
	f.cancel = f.delay(f.latency, func() { f.succeed(msg) })
	return true
}

func (f *Form) succeed(msg Message) {
	f.mu.Lock()
	if f.closed || f.status != StatusSubmitting {
		f.mu.Unlock()
		return
	}
	f.status = StatusSucceeded
	f.cancel = f.delay(f.display, f.reset)
	onSent := f.onSent
	f.mu.Unlock()

	if onSent != nil {
		onSent(msg)
	}
}

func (f *Form) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.values = make(map[string]string)
	f.touched = make(map[string]bool)
	f.errors = make(map[string]string)
	f.status = StatusEditing
	f.cancel = nil
}

func (f *Form) messageLocked() Message {
	return Message{
		Name:    f.values[FieldName],
		Email:   f.values[FieldEmail],
		Phone:   f.values[FieldPhone],
		Subject: f.values[FieldSubject],
		Message: f.values[FieldMessage],
	}
}

// Status reports the current lifecycle phase.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Value returns the current value of a field.
func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// Error returns the current error for a field, empty when valid or
// untouched.
func (f *Form) Error(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[field]
}

// Errors returns a copy of all current field errors.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Close cancels any pending submit or reset timer. The form keeps its
// current values but ignores further events.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}
