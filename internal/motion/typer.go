package motion

import (
	"sync"
	"time"

	"github.com/homeprohq/homepro-platform/internal/timing"
)

// DefaultTypingSpeed is the pause between typed characters.
const DefaultTypingSpeed = 50 * time.Millisecond

// Typer reveals text one character at a time, the hero headline effect.
// Under a reduced preference the full text appears immediately.
type Typer struct {
	delay timing.Delay
	speed time.Duration
	start time.Duration
	pref  Preference
	sink  func(displayed string, complete bool)

	mu       sync.Mutex
	text     []rune
	shown    int
	complete bool
	started  bool
	closed   bool
	cancel   func()
}

// TyperOption configures a Typer.
type TyperOption func(*Typer)

// WithTyperDelay substitutes the timer primitive, used by tests.
func WithTyperDelay(d timing.Delay) TyperOption {
	return func(t *Typer) { t.delay = d }
}

// WithTypingSpeed overrides the per-character pause.
func WithTypingSpeed(speed time.Duration) TyperOption {
	return func(t *Typer) {
		if speed > 0 {
			t.speed = speed
		}
	}
}

// WithStartDelay holds the sequence back before the first character.
func WithStartDelay(d time.Duration) TyperOption {
	return func(t *Typer) {
		if d > 0 {
			t.start = d
		}
	}
}

// WithTypingSink registers fn to observe each frame. It is called outside
// the typer lock.
func WithTypingSink(fn func(displayed string, complete bool)) TyperOption {
	return func(t *Typer) { t.sink = fn }
}

// NewTyper creates a typer for text. A nil preference behaves as full motion.
func NewTyper(text string, pref Preference, opts ...TyperOption) *Typer {
	if pref == nil {
		pref = StaticPreference(false)
	}
	t := &Typer{
		delay: timing.Real,
		speed: DefaultTypingSpeed,
		pref:  pref,
		text:  []rune(text),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins the sequence. Repeat calls are no-ops. The preference is read
// once at start; a reduced preference shows the full text in a single frame.
func (t *Typer) Start() {
	t.mu.Lock()
	if t.started || t.closed {
		t.mu.Unlock()
		return
	}
	t.started = true

	if t.pref.Reduced() || len(t.text) == 0 {
		t.shown = len(t.text)
		t.complete = true
		displayed := string(t.text)
		t.mu.Unlock()
		t.emit(displayed, true)
		return
	}

	t.cancel = t.delay(t.start+t.speed, t.tick)
	t.mu.Unlock()
}

func (t *Typer) tick() {
	t.mu.Lock()
	if t.closed || t.complete {
		t.mu.Unlock()
		return
	}
	t.shown++
	if t.shown >= len(t.text) {
		t.shown = len(t.text)
		t.complete = true
		t.cancel = nil
	} else {
		t.cancel = t.delay(t.speed, t.tick)
	}
	displayed := string(t.text[:t.shown])
	complete := t.complete
	t.mu.Unlock()

	t.emit(displayed, complete)
}

func (t *Typer) emit(displayed string, complete bool) {
	if t.sink != nil {
		t.sink(displayed, complete)
	}
}

// Displayed returns the characters typed so far.
func (t *Typer) Displayed() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.text[:t.shown])
}

// Complete reports whether the full text is showing.
func (t *Typer) Complete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.complete
}

// Close cancels any pending character. The typer keeps what it has shown.
func (t *Typer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
