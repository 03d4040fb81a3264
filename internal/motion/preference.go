package motion

import "sync/atomic"

// Preference reports whether the reduced-motion accessibility setting is
// active. Implementations must be safe to read per decision; the signal may
// change at runtime, so callers never cache the result.
type Preference interface {
	Reduced() bool
}

// RuntimePreference is a mutable Preference. The reveal feed updates it from
// the client's prefers-reduced-motion media query.
type RuntimePreference struct {
	reduced atomic.Bool
}

// NewRuntimePreference creates a preference with an initial value.
func NewRuntimePreference(reduced bool) *RuntimePreference {
	p := &RuntimePreference{}
	p.reduced.Store(reduced)
	return p
}

// Reduced reports the current preference.
func (p *RuntimePreference) Reduced() bool { return p.reduced.Load() }

// Set updates the preference.
func (p *RuntimePreference) Set(reduced bool) { p.reduced.Store(reduced) }

// StaticPreference is a fixed Preference, mainly for tests and wiring.
type StaticPreference bool

// Reduced reports the fixed value.
func (p StaticPreference) Reduced() bool { return bool(p) }
