package reveal

import (
	"errors"
	"sync"
	"time"

	"github.com/homeprohq/homepro-platform/internal/motion"
	"github.com/homeprohq/homepro-platform/internal/timing"
)

var (
	// ErrAlreadyAttached is returned when an element ID is attached twice.
	ErrAlreadyAttached = errors.New("reveal: element already attached")

	// ErrClosed is returned when attaching to a closed scheduler.
	ErrClosed = errors.New("reveal: scheduler closed")
)

// Options configure a reveal subscription.
type Options struct {
	// Threshold is the visible fraction at which the element reveals.
	Threshold float64
	// RootMargin expands or shrinks the viewport used for the visibility
	// check. It is carried through to the observing client untouched.
	RootMargin string
	// TriggerOnce stops observation permanently after the first reveal;
	// the revealed state never reverts.
	TriggerOnce bool
	// Group names a stagger group. Members reveal with a delay
	// proportional to their position within the group.
	Group string
	// StaggerDelay is the per-ordinal delay for grouped reveals.
	StaggerDelay time.Duration
}

// DefaultOptions mirror the site-wide reveal defaults.
func DefaultOptions() Options {
	return Options{
		Threshold:   0.1,
		RootMargin:  "0px 0px -50px 0px",
		TriggerOnce: true,
	}
}

// Event reports a revealed-state change for one element.
type Event struct {
	ElementID string        `json:"element_id"`
	Group     string        `json:"group,omitempty"`
	Revealed  bool          `json:"revealed"`
	Delay     time.Duration `json:"-"`
}

// Scheduler tracks visibility subscriptions and flips per-element revealed
// state as visibility reports arrive. It owns every timer it starts; Close
// cancels all of them, so no events are delivered after teardown.
type Scheduler struct {
	pref     motion.Preference
	delay    timing.Delay
	sink     func(Event)
	observer bool

	mu     sync.Mutex
	closed bool
	subs   map[string]*subscription
	groups map[string][]string // attach order per group
}

type subscription struct {
	opts     Options
	revealed bool
	// observing is false once TriggerOnce has fired or the element was
	// detached; further visibility reports are ignored.
	observing bool
	cancel    func() // pending stagger timer, nil when none
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDelay substitutes the timer primitive, used by tests.
func WithDelay(d timing.Delay) Option {
	return func(s *Scheduler) { s.delay = d }
}

// WithSink registers a callback receiving every revealed-state change.
func WithSink(fn func(Event)) Option {
	return func(s *Scheduler) { s.sink = fn }
}

// WithoutObserver marks the visibility primitive unavailable. Every
// attached element is immediately and permanently revealed, with no
// animation delays.
func WithoutObserver() Option {
	return func(s *Scheduler) { s.observer = false }
}

// New creates a scheduler. A nil preference behaves as full motion.
func New(pref motion.Preference, opts ...Option) *Scheduler {
	if pref == nil {
		pref = motion.StaticPreference(false)
	}
	s := &Scheduler{
		pref:     pref,
		delay:    timing.Real,
		sink:     func(Event) {},
		observer: true,
		subs:     make(map[string]*subscription),
		groups:   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach registers an element for reveal tracking.
func (s *Scheduler) Attach(elementID string, opts Options) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if _, exists := s.subs[elementID]; exists {
		s.mu.Unlock()
		return ErrAlreadyAttached
	}

	sub := &subscription{opts: opts, observing: true}
	s.subs[elementID] = sub
	if opts.Group != "" {
		s.groups[opts.Group] = append(s.groups[opts.Group], elementID)
	}

	if !s.observer {
		// Headless fallback: no visibility reports will ever arrive.
		sub.revealed = true
		sub.observing = false
		s.mu.Unlock()
		s.sink(Event{ElementID: elementID, Group: opts.Group, Revealed: true})
		return nil
	}
	s.mu.Unlock()
	return nil
}

// Report delivers a visibility callback for an element. Unknown or detached
// elements are ignored.
func (s *Scheduler) Report(elementID string, fraction float64) {
	s.mu.Lock()
	sub, ok := s.subs[elementID]
	if !ok || !sub.observing || s.closed {
		s.mu.Unlock()
		return
	}

	if fraction >= sub.opts.Threshold {
		if sub.revealed || sub.cancel != nil {
			s.mu.Unlock()
			return
		}
		delay := s.staggerDelayLocked(elementID, sub)
		if sub.opts.TriggerOnce {
			// Observation stops now; a pending stagger timer still fires.
			sub.observing = false
		}
		if delay <= 0 {
			sub.revealed = true
			group := sub.opts.Group
			s.mu.Unlock()
			s.sink(Event{ElementID: elementID, Group: group, Revealed: true})
			return
		}
		sub.cancel = s.delay(delay, func() {
			s.finishStaggered(elementID, delay)
		})
		s.mu.Unlock()
		return
	}

	// Below threshold: repeatable subscriptions oscillate back to hidden.
	if sub.opts.TriggerOnce {
		s.mu.Unlock()
		return
	}
	if sub.cancel != nil {
		sub.cancel()
		sub.cancel = nil
	}
	if !sub.revealed {
		s.mu.Unlock()
		return
	}
	sub.revealed = false
	group := sub.opts.Group
	s.mu.Unlock()
	s.sink(Event{ElementID: elementID, Group: group, Revealed: false})
}

func (s *Scheduler) finishStaggered(elementID string, delay time.Duration) {
	s.mu.Lock()
	sub, ok := s.subs[elementID]
	if !ok || s.closed {
		s.mu.Unlock()
		return
	}
	sub.cancel = nil
	sub.revealed = true
	group := sub.opts.Group
	s.mu.Unlock()
	s.sink(Event{ElementID: elementID, Group: group, Revealed: true, Delay: delay})
}

// staggerDelayLocked computes ordinal × staggerDelay for grouped members,
// skipped entirely under reduced motion. The ordinal is the element's stable
// position among the currently registered members of its group.
func (s *Scheduler) staggerDelayLocked(elementID string, sub *subscription) time.Duration {
	if sub.opts.Group == "" || sub.opts.StaggerDelay <= 0 {
		return 0
	}
	if s.pref.Reduced() {
		return 0
	}
	ordinal := 0
	for i, id := range s.groups[sub.opts.Group] {
		if id == elementID {
			ordinal = i
			break
		}
	}
	return time.Duration(ordinal) * sub.opts.StaggerDelay
}

// Detach stops tracking an element and cancels any pending stagger timer.
// It is idempotent and safe for IDs that were never attached.
func (s *Scheduler) Detach(elementID string) {
	s.mu.Lock()
	sub, ok := s.subs[elementID]
	if !ok {
		s.mu.Unlock()
		return
	}
	if sub.cancel != nil {
		sub.cancel()
		sub.cancel = nil
	}
	delete(s.subs, elementID)
	if g := sub.opts.Group; g != "" {
		members := s.groups[g]
		for i, id := range members {
			if id == elementID {
				s.groups[g] = append(members[:i], members[i+1:]...)
				break
			}
		}
		if len(s.groups[g]) == 0 {
			delete(s.groups, g)
		}
	}
	s.mu.Unlock()
}

// Revealed reports the current revealed state for an element.
func (s *Scheduler) Revealed(elementID string) (revealed, attached bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[elementID]
	if !ok {
		return false, false
	}
	return sub.revealed, true
}

// States snapshots the revealed flag of every attached element.
func (s *Scheduler) States() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.subs))
	for id, sub := range s.subs {
		out[id] = sub.revealed
	}
	return out
}

// Close detaches everything and rejects further attaches.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, sub := range s.subs {
		if sub.cancel != nil {
			sub.cancel()
			sub.cancel = nil
		}
		sub.observing = false
	}
	s.subs = make(map[string]*subscription)
	s.groups = make(map[string][]string)
	s.mu.Unlock()
}
