package reveal

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeprohq/homepro-platform/internal/motion"
	"github.com/homeprohq/homepro-platform/internal/timing"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) record(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *eventRecorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func newTestScheduler(t *testing.T, pref motion.Preference, opts ...Option) (*Scheduler, *timing.Manual, *eventRecorder) {
	t.Helper()
	clock := timing.NewManual()
	rec := &eventRecorder{}
	all := append([]Option{WithDelay(clock.Delay), WithSink(rec.record)}, opts...)
	s := New(pref, all...)
	t.Cleanup(s.Close)
	return s, clock, rec
}

func TestRevealAtThreshold(t *testing.T) {
	s, _, rec := newTestScheduler(t, nil)
	require.NoError(t, s.Attach("hero", DefaultOptions()))

	s.Report("hero", 0.05)
	revealed, attached := s.Revealed("hero")
	assert.True(t, attached)
	assert.False(t, revealed)

	s.Report("hero", 0.1)
	revealed, _ = s.Revealed("hero")
	assert.True(t, revealed)
	require.Len(t, rec.all(), 1)
	assert.Equal(t, Event{ElementID: "hero", Revealed: true}, rec.all()[0])
}

func TestTriggerOnceNeverReverts(t *testing.T) {
	s, _, rec := newTestScheduler(t, nil)
	require.NoError(t, s.Attach("card", DefaultOptions()))

	s.Report("card", 0.5)
	s.Report("card", 0.0) // scrolled away
	s.Report("card", 0.5) // back again

	revealed, _ := s.Revealed("card")
	assert.True(t, revealed)
	assert.Len(t, rec.all(), 1, "reveal must fire exactly once")
}

func TestRepeatableOscillates(t *testing.T) {
	s, _, rec := newTestScheduler(t, nil)
	opts := DefaultOptions()
	opts.TriggerOnce = false
	require.NoError(t, s.Attach("banner", opts))

	s.Report("banner", 0.2)
	s.Report("banner", 0.0)
	s.Report("banner", 0.3)

	events := rec.all()
	require.Len(t, events, 3)
	assert.True(t, events[0].Revealed)
	assert.False(t, events[1].Revealed)
	assert.True(t, events[2].Revealed)
}

func TestDuplicateAttach(t *testing.T) {
	s, _, _ := newTestScheduler(t, nil)
	require.NoError(t, s.Attach("x", DefaultOptions()))
	assert.ErrorIs(t, s.Attach("x", DefaultOptions()), ErrAlreadyAttached)
}

func TestDetachIdempotent(t *testing.T) {
	s, _, rec := newTestScheduler(t, nil)
	require.NoError(t, s.Attach("x", DefaultOptions()))

	s.Detach("x")
	s.Detach("x")        // second detach is a no-op
	s.Detach("unknown")  // never attached
	s.Report("x", 1.0)   // reports after detach are ignored

	assert.Empty(t, rec.all())
}

func TestGroupStagger(t *testing.T) {
	s, clock, rec := newTestScheduler(t, nil)
	opts := DefaultOptions()
	opts.Group = "features"
	opts.StaggerDelay = 100 * time.Millisecond

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Attach(id, opts))
	}

	// The whole group becomes visible in one scroll.
	s.Report("a", 0.5)
	s.Report("b", 0.5)
	s.Report("c", 0.5)

	// Ordinal 0 reveals immediately, the rest wait their turn.
	require.Len(t, rec.all(), 1)
	assert.Equal(t, "a", rec.all()[0].ElementID)

	clock.Advance(100 * time.Millisecond)
	require.Len(t, rec.all(), 2)
	assert.Equal(t, "b", rec.all()[1].ElementID)
	assert.Equal(t, 100*time.Millisecond, rec.all()[1].Delay)

	clock.Advance(100 * time.Millisecond)
	require.Len(t, rec.all(), 3)
	assert.Equal(t, "c", rec.all()[2].ElementID)
	assert.Equal(t, 200*time.Millisecond, rec.all()[2].Delay)
}

func TestGroupStaggerSkippedWhenReduced(t *testing.T) {
	s, clock, rec := newTestScheduler(t, motion.StaticPreference(true))
	opts := DefaultOptions()
	opts.Group = "features"
	opts.StaggerDelay = 100 * time.Millisecond

	require.NoError(t, s.Attach("a", opts))
	require.NoError(t, s.Attach("b", opts))

	s.Report("a", 0.5)
	s.Report("b", 0.5)

	assert.Len(t, rec.all(), 2, "reduced motion reveals without delay")
	assert.Equal(t, 0, clock.Pending())
}

func TestGroupOrdinalAfterDetach(t *testing.T) {
	s, clock, rec := newTestScheduler(t, nil)
	opts := DefaultOptions()
	opts.Group = "cards"
	opts.StaggerDelay = 50 * time.Millisecond

	require.NoError(t, s.Attach("a", opts))
	require.NoError(t, s.Attach("b", opts))
	require.NoError(t, s.Attach("c", opts))
	s.Detach("a")

	// b is now ordinal 0, c ordinal 1.
	s.Report("b", 0.5)
	s.Report("c", 0.5)

	require.Len(t, rec.all(), 1)
	assert.Equal(t, "b", rec.all()[0].ElementID)

	clock.Advance(50 * time.Millisecond)
	require.Len(t, rec.all(), 2)
	assert.Equal(t, "c", rec.all()[1].ElementID)
}

func TestDetachCancelsPendingStagger(t *testing.T) {
	s, clock, rec := newTestScheduler(t, nil)
	opts := DefaultOptions()
	opts.Group = "cards"
	opts.StaggerDelay = 100 * time.Millisecond

	require.NoError(t, s.Attach("a", opts))
	require.NoError(t, s.Attach("b", opts))

	s.Report("b", 0.5) // ordinal 1, pending timer
	s.Detach("b")
	clock.Advance(time.Second)

	assert.Empty(t, rec.all())
}

func TestObserverUnavailableFallback(t *testing.T) {
	s, _, rec := newTestScheduler(t, nil, WithoutObserver())

	require.NoError(t, s.Attach("hero", DefaultOptions()))
	revealed, _ := s.Revealed("hero")
	assert.True(t, revealed, "fallback reveals immediately")
	require.Len(t, rec.all(), 1)
	assert.Equal(t, time.Duration(0), rec.all()[0].Delay)
}

func TestCloseCancelsEverything(t *testing.T) {
	s, clock, rec := newTestScheduler(t, nil)
	opts := DefaultOptions()
	opts.Group = "g"
	opts.StaggerDelay = 100 * time.Millisecond

	require.NoError(t, s.Attach("a", opts))
	require.NoError(t, s.Attach("b", opts))
	s.Report("b", 0.9)

	s.Close()
	clock.Advance(time.Second)
	assert.Empty(t, rec.all(), "no events after Close")

	assert.ErrorIs(t, s.Attach("c", DefaultOptions()), ErrClosed)
}
