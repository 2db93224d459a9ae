package cooldown

import (
	"sync"
	"time"
)

type key struct {
	userID string
	game   string
}

// Registry tracks the last play time per (user, game). It is constructed once
// in the app and shared by reference with every game; nothing about it is
// persisted, so a restart forgives all cooldowns.
type Registry struct {
	mu   sync.Mutex
	ttl  time.Duration
	last map[key]time.Time
	now  func() time.Time
}

func New(ttl time.Duration) *Registry {
	return &Registry{
		ttl:  ttl,
		last: make(map[key]time.Time),
		now:  time.Now,
	}
}

// Remaining returns how long the (user, game) pair stays on cooldown, zero
// when it may play now.
func (r *Registry) Remaining(userID, game string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	last, ok := r.last[key{userID, game}]
	if !ok {
		return 0
	}
	elapsed := r.now().Sub(last)
	if elapsed >= r.ttl {
		return 0
	}
	return r.ttl - elapsed
}

// Touch starts the cooldown clock for the pair.
func (r *Registry) Touch(userID, game string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.last[key{userID, game}] = now
	// Expired entries are pruned opportunistically; the map stays bounded by
	// the set of users active within one TTL window.
	if len(r.last) > 4096 {
		for k, t := range r.last {
			if now.Sub(t) >= r.ttl {
				delete(r.last, k)
			}
		}
	}
}
