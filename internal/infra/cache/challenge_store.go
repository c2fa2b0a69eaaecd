// Package cache keeps short-lived state in process memory.
package cache

import (
	"sync"
	"time"

	"registry/config"
	"registry/internal/domain/service"

	gocache "github.com/patrickmn/go-cache"
)

const challengeCleanupInterval = time.Minute

type challengeStore struct {
	mu    sync.Mutex // makes Consume a single get-and-delete step
	cache *gocache.Cache
}

// NewChallengeStore creates a challenge store whose entries expire after the configured challenge TTL.
func NewChallengeStore(cfg *config.Config) service.ChallengeStore {
	ttl := 5 * time.Minute
	if cfg != nil && cfg.Auth != nil && cfg.Auth.ChallengeTTL > 0 {
		ttl = cfg.Auth.ChallengeTTL
	}

	return &challengeStore{
		cache: gocache.New(ttl, challengeCleanupInterval),
	}
}

// Save stores the challenge message for an address.
func (s *challengeStore) Save(address, message string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Set(address, message, ttl)
}

// Consume returns the pending message and removes it, so each challenge signs in at most once.
func (s *challengeStore) Consume(address string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.cache.Get(address)
	if !found {
		return "", false
	}
	s.cache.Delete(address)

	message, ok := value.(string)

	return message, ok
}
