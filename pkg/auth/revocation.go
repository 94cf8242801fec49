package auth

import (
	"sync"
	"time"

	"github.com/pmodesk/pmodesk/internal/utils"
)

// RevocationStore remembers tokens invalidated by logout. A revoked token is
// rejected even while its signature and expiry are still valid.
type RevocationStore interface {
	Revoke(token string, expiresAt time.Time)
	IsRevoked(token string) bool
}

// MemoryRevocationStore keeps revoked tokens in memory until they would have
// expired anyway, so the set cannot grow without bound.
type MemoryRevocationStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	clock  utils.Clock
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		tokens: make(map[string]time.Time),
		clock:  utils.SystemClock{},
	}
}

func (s *MemoryRevocationStore) Revoke(token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	s.tokens[token] = expiresAt
}

func (s *MemoryRevocationStore) IsRevoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiresAt, ok := s.tokens[token]
	if !ok {
		return false
	}
	if s.clock.Now().After(expiresAt) {
		delete(s.tokens, token)
		return false
	}
	return true
}

func (s *MemoryRevocationStore) evictLocked() {
	now := s.clock.Now()
	for token, expiresAt := range s.tokens {
		if now.After(expiresAt) {
			delete(s.tokens, token)
		}
	}
}
