package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Confirmation is a completed reservation.
type Confirmation struct {
	ID          string    `json:"id"`
	Draft       Draft     `json:"draft"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// ConfirmationRepository stores completed reservations.
type ConfirmationRepository interface {
	Create(ctx context.Context, draft Draft) (Confirmation, error)
	List(ctx context.Context) ([]Confirmation, error)
}

// InMemoryConfirmations is a thread-safe in-memory ConfirmationRepository.
type InMemoryConfirmations struct {
	mu            sync.RWMutex
	confirmations []Confirmation
	now           func() time.Time
}

func NewInMemoryConfirmations() *InMemoryConfirmations {
	return &InMemoryConfirmations{now: time.Now}
}

// Create stores a confirmed reservation with a fresh ID.
func (r *InMemoryConfirmations) Create(ctx context.Context, draft Draft) (Confirmation, error) {
	c := Confirmation{
		ID:          uuid.New().String(),
		Draft:       draft,
		ConfirmedAt: r.now().UTC(),
	}
	r.mu.Lock()
	r.confirmations = append(r.confirmations, c)
	r.mu.Unlock()
	return c, nil
}

// List returns all confirmations in creation order.
func (r *InMemoryConfirmations) List(ctx context.Context) ([]Confirmation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Confirmation, len(r.confirmations))
	copy(out, r.confirmations)
	return out, nil
}
