// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationStore keeps revoked token IDs in process memory. It is the
// default when no Redis URL is configured.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore creates an empty store.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

var _ RevocationStore = (*MemoryRevocationStore)(nil)

func (store *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.sweep()
	store.revoked[tokenID] = store.now().Add(ttl)
	return nil
}

func (store *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	expiresAt, found := store.revoked[tokenID]
	return found && store.now().Before(expiresAt), nil
}

// sweep drops expired entries. Callers hold the lock.
func (store *MemoryRevocationStore) sweep() {
	now := store.now()
	for tokenID, expiresAt := range store.revoked {
		if !now.Before(expiresAt) {
			delete(store.revoked, tokenID)
		}
	}
}
