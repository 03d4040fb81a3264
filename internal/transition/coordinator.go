package transition

import (
	"sync"
	"time"

	"github.com/homeprohq/homepro-platform/internal/motion"
	"github.com/homeprohq/homepro-platform/internal/timing"
)

// State is a phase of the page transition machine.
type State int

const (
	StateIdle State = iota
	StateLeaving
	StateEntering
)

func (s State) String() string {
	switch s {
	case StateLeaving:
		return "leaving"
	case StateEntering:
		return "entering"
	default:
		return "idle"
	}
}

const (
	// DefaultLeaveDuration is how long the outgoing page holds its leave class.
	DefaultLeaveDuration = 150 * time.Millisecond
	// DefaultEnterDuration is how long the incoming page holds its enter class.
	DefaultEnterDuration = 300 * time.Millisecond
)

// Coordinator sequences page transitions: Idle → Leaving → Entering → Idle.
// At most one transition chain is in flight; starting a new one restarts the
// chain from Leaving rather than queueing.
type Coordinator struct {
	pref  motion.Preference
	delay timing.Delay
	leave time.Duration
	enter time.Duration
	sink  func(State, string)

	mu     sync.Mutex
	state  State
	class  string
	cancel func()
	closed bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDelay substitutes the timer primitive, used by tests.
func WithDelay(d timing.Delay) Option {
	return func(c *Coordinator) { c.delay = d }
}

// WithSink registers fn to observe every phase change with its class. It is
// called outside the coordinator lock.
func WithSink(fn func(state State, class string)) Option {
	return func(c *Coordinator) { c.sink = fn }
}

// WithDurations overrides the leave/enter phase durations.
func WithDurations(leave, enter time.Duration) Option {
	return func(c *Coordinator) {
		if leave > 0 {
			c.leave = leave
		}
		if enter > 0 {
			c.enter = enter
		}
	}
}

// New creates a coordinator. A nil preference behaves as full motion.
func New(pref motion.Preference, opts ...Option) *Coordinator {
	if pref == nil {
		pref = motion.StaticPreference(false)
	}
	c := &Coordinator{
		pref:  pref,
		delay: timing.Real,
		leave: DefaultLeaveDuration,
		enter: DefaultEnterDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a transition in the given direction ("forward" when empty).
// Under reduced motion the chain collapses: the coordinator lands directly
// on the terminal Idle state with no intermediate class.
func (c *Coordinator) Start(direction string) {
	if direction == "" {
		direction = "forward"
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if c.pref.Reduced() {
		c.state = StateIdle
		c.class = ""
		c.mu.Unlock()
		c.emit(StateIdle, "")
		return
	}

	c.state = StateLeaving
	c.class = "transition-" + direction + "-out"
	c.cancel = c.delay(c.leave, func() {
		c.enterPhase(direction)
	})
	c.mu.Unlock()
	c.emit(StateLeaving, "transition-"+direction+"-out")
}

func (c *Coordinator) emit(state State, class string) {
	if c.sink != nil {
		c.sink(state, class)
	}
}

func (c *Coordinator) enterPhase(direction string) {
	c.mu.Lock()
	if c.closed || c.state != StateLeaving {
		c.mu.Unlock()
		return
	}
	c.state = StateEntering
	c.class = "transition-" + direction + "-in"
	c.cancel = c.delay(c.enter, c.settle)
	c.mu.Unlock()
	c.emit(StateEntering, "transition-"+direction+"-in")
}

func (c *Coordinator) settle() {
	c.mu.Lock()
	if c.closed || c.state != StateEntering {
		c.mu.Unlock()
		return
	}
	c.state = StateIdle
	c.class = ""
	c.cancel = nil
	c.mu.Unlock()
	c.emit(StateIdle, "")
}

// State reports the current phase.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Class reports the CSS class for the current phase, empty when idle.
func (c *Coordinator) Class() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.class
}

// InFlight reports whether a transition chain is running.
func (c *Coordinator) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != StateIdle
}

// Close cancels any pending phase change. Further Start calls are no-ops.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = StateIdle
	c.class = ""
}
