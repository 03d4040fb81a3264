package reviews

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// HelpfulTracker remembers which reviews a session already marked helpful,
// so repeat clicks never double-count.
type HelpfulTracker interface {
	// Mark records the vote and reports whether it was the first one from
	// this session for this review.
	Mark(ctx context.Context, sessionID string, reviewID int) (bool, error)
}

// RedisHelpfulTracker keeps one set of voted review IDs per session.
type RedisHelpfulTracker struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisHelpfulTracker creates a tracker whose per-session sets expire
// after ttl (30 minutes when zero).
func NewRedisHelpfulTracker(client *redis.Client, ttl time.Duration) *RedisHelpfulTracker {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisHelpfulTracker{redis: client, ttl: ttl}
}

func (t *RedisHelpfulTracker) key(sessionID string) string {
	return fmt.Sprintf("reviews:helpful:%s", sessionID)
}

// Mark adds reviewID to the session's set. SAdd reports how many members
// were newly added, so 0 means this session already voted.
func (t *RedisHelpfulTracker) Mark(ctx context.Context, sessionID string, reviewID int) (bool, error) {
	key := t.key(sessionID)
	added, err := t.redis.SAdd(ctx, key, strconv.Itoa(reviewID)).Result()
	if err != nil {
		return false, fmt.Errorf("reviews: record helpful vote: %w", err)
	}
	t.redis.Expire(ctx, key, t.ttl)
	return added > 0, nil
}

// MemoryHelpfulTracker is an in-process HelpfulTracker for single-instance
// deployments and tests.
type MemoryHelpfulTracker struct {
	mu    sync.Mutex
	voted map[string]map[int]bool
}

func NewMemoryHelpfulTracker() *MemoryHelpfulTracker {
	return &MemoryHelpfulTracker{voted: make(map[string]map[int]bool)}
}

func (t *MemoryHelpfulTracker) Mark(ctx context.Context, sessionID string, reviewID int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.voted[sessionID]
	if !ok {
		set = make(map[int]bool)
		t.voted[sessionID] = set
	}
	if set[reviewID] {
		return false, nil
	}
	set[reviewID] = true
	return true, nil
}
