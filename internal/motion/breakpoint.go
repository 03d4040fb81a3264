package motion

import "sync"

// DefaultDesktopMinWidth is the viewport width at which the navigation
// switches from the mobile menu to the desktop layout.
const DefaultDesktopMinWidth = 960

// Breakpoint classifies viewport widths.
type Breakpoint struct {
	DesktopMinWidth int
}

// NewBreakpoint creates a breakpoint; minWidth <= 0 uses the default.
func NewBreakpoint(minWidth int) Breakpoint {
	if minWidth <= 0 {
		minWidth = DefaultDesktopMinWidth
	}
	return Breakpoint{DesktopMinWidth: minWidth}
}

// IsDesktop reports whether width is at or above the desktop breakpoint.
func (b Breakpoint) IsDesktop(width int) bool {
	return width >= b.DesktopMinWidth
}

// MenuState tracks the mobile navigation menu. Crossing into the desktop
// breakpoint collapses an open menu; the signal may change at runtime, so
// the breakpoint is evaluated on every resize, never cached.
type MenuState struct {
	mu         sync.Mutex
	breakpoint Breakpoint
	open       bool
}

// NewMenuState creates a closed menu for the given breakpoint.
func NewMenuState(b Breakpoint) *MenuState {
	return &MenuState{breakpoint: b}
}

// Toggle flips the menu and returns the new open state.
func (m *MenuState) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
	return m.open
}

// Close collapses the menu.
func (m *MenuState) Close() {
	m.mu.Lock()
	m.open = false
	m.mu.Unlock()
}

// Resize handles a viewport width change.
func (m *MenuState) Resize(width int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.breakpoint.IsDesktop(width) {
		m.open = false
	}
}

// Open reports whether the menu is open.
func (m *MenuState) Open() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}
