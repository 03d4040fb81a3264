package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.Delay(200*time.Millisecond, func() { order = append(order, "second") })
	m.Delay(100*time.Millisecond, func() { order = append(order, "first") })

	m.Advance(50 * time.Millisecond)
	assert.Empty(t, order)

	m.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 0, m.Pending())
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	fired := false

	cancel := m.Delay(100*time.Millisecond, func() { fired = true })
	cancel()
	cancel() // safe to call twice

	m.Advance(time.Second)
	assert.False(t, fired)
}

func TestManualCallbackMaySchedule(t *testing.T) {
	m := NewManual()
	var hits int

	m.Delay(100*time.Millisecond, func() {
		hits++
		m.Delay(100*time.Millisecond, func() { hits++ })
	})

	m.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, hits)
	m.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, hits)
}

func TestRealFiresAndCancels(t *testing.T) {
	done := make(chan struct{})
	Real(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected callback to fire")
	}

	fired := make(chan struct{})
	cancel := Real(50*time.Millisecond, func() { close(fired) })
	cancel()

	select {
	case <-fired:
		t.Fatal("expected cancelled callback not to fire")
	case <-time.After(100 * time.Millisecond):
	}
}
