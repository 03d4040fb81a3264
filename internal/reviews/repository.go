package reviews

import (
	"context"
	"sync"
)

// Repository stores reviews.
type Repository interface {
	List(ctx context.Context) ([]Review, error)
	Add(ctx context.Context, review Review) (Review, error)
	MarkHelpful(ctx context.Context, id int) (Review, error)
}

// InMemoryRepository is a thread-safe in-memory Repository.
type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
}

// NewInMemoryRepository creates a repository holding the given reviews.
// A nil slice starts from the seed testimonials.
func NewInMemoryRepository(initial []Review) *InMemoryRepository {
	if initial == nil {
		initial = Seed()
	}
	reviews := make([]Review, len(initial))
	copy(reviews, initial)
	return &InMemoryRepository{reviews: reviews}
}

// List returns a copy of all reviews, newest submission first.
func (r *InMemoryRepository) List(ctx context.Context) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

// Add assigns the next ID and prepends the review so it lists first.
func (r *InMemoryRepository) Add(ctx context.Context, review Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.reviews {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	review.ID = maxID + 1

	r.reviews = append([]Review{review}, r.reviews...)
	return review, nil
}

// MarkHelpful increments the helpful count and returns the updated review.
func (r *InMemoryRepository) MarkHelpful(ctx context.Context, id int) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews[i].Helpful++
			return r.reviews[i], nil
		}
	}
	return Review{}, ErrReviewNotFound
}
