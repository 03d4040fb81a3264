package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a wizard session ID is unknown
	// or has expired.
	ErrSessionNotFound = errors.New("booking: session not found")
	// ErrUnknownField is returned when SetField receives a field name
	// outside the draft.
	ErrUnknownField = errors.New("booking: unknown field")
	// ErrWrongStep is returned when an operation is invalid for the
	// wizard's current step.
	ErrWrongStep = errors.New("booking: wrong step")
	// ErrBusy is returned when the wizard is mid-submit or already
	// submitted and cannot accept the operation.
	ErrBusy = errors.New("booking: submission in progress or complete")
)
