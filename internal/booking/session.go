package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session pairs a wizard with its ID and creation time.
type Session struct {
	ID        string
	Wizard    *Wizard
	CreatedAt time.Time
}

// Manager owns the live wizard sessions, keyed by ID. Sessions older than
// the TTL are dropped lazily on access and by Sweep.
type Manager struct {
	ttl       time.Duration
	newWizard func(sessionID string) *Wizard
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager. newWizard builds each session's
// wizard and receives the session ID so callbacks can reference it; a ttl
// of zero means sessions never expire.
func NewManager(ttl time.Duration, newWizard func(sessionID string) *Wizard) *Manager {
	if newWizard == nil {
		newWizard = func(string) *Wizard { return NewWizard() }
	}
	return &Manager{
		ttl:       ttl,
		newWizard: newWizard,
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
}

// Create starts a fresh wizard session and returns it.
func (m *Manager) Create() *Session {
	id := uuid.New().String()
	s := &Session{
		ID:        id,
		Wizard:    m.newWizard(id),
		CreatedAt: m.now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session or ErrSessionNotFound when unknown or expired.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.expiredLocked(s) {
		s.Wizard.Close()
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) expiredLocked(s *Session) bool {
	return m.ttl > 0 && m.now().Sub(s.CreatedAt) > m.ttl
}

// Sweep drops every expired session and reports how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if m.expiredLocked(s) {
			s.Wizard.Close()
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the live session count.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close closes every session's wizard.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.Wizard.Close()
		delete(m.sessions, id)
	}
}
