package timing

import (
	"sort"
	"sync"
	"time"
)

// Delay schedules fn to run once after d and returns a cancel function.
// Cancel is safe to call more than once and after the callback has fired.
// Components that schedule delays must cancel them on teardown so no state
// changes happen after disposal.
type Delay func(d time.Duration, fn func()) (cancel func())

// Real schedules with time.AfterFunc.
func Real(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Manual is a deterministic Delay for tests. Scheduled callbacks fire only
// when Advance moves the clock past their deadline, in deadline order.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	pending map[int]*manualEntry
}

type manualEntry struct {
	at time.Duration
	fn func()
}

// NewManual creates a manual clock starting at zero.
func NewManual() *Manual {
	return &Manual{pending: make(map[int]*manualEntry)}
}

// Delay implements the Delay signature.
func (m *Manual) Delay(d time.Duration, fn func()) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.pending[id] = &manualEntry{at: m.now + d, fn: fn}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.pending, id)
		m.mu.Unlock()
	}
}

// Advance moves the clock forward and fires due callbacks outside the lock,
// so callbacks may schedule or cancel further delays.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []*manualEntry
	for id, e := range m.pending {
		if e.at <= m.now {
			due = append(due, e)
			delete(m.pending, id)
		}
	}
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, e := range due {
		e.fn()
	}
}

// Pending reports how many callbacks are still scheduled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
