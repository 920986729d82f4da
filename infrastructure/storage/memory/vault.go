// ABOUTME: In-memory vault store keeping per-user item lists in insertion order
// ABOUTME: Data does not survive restarts; intended for development and tests

package memory

import (
	"context"
	"errors"
	"sync"

	"summaries-app-api/core/domain"
)

// VaultStore implements the VaultStore interface using in-memory storage
type VaultStore struct {
	mu    sync.RWMutex
	items map[string][]domain.VaultItem
}

// NewVaultStore creates a new in-memory vault store
func NewVaultStore() *VaultStore {
	return &VaultStore{items: make(map[string][]domain.VaultItem)}
}

// ListItems returns a copy of the user's items in insertion order
func (s *VaultStore) ListItems(ctx context.Context, userID string) ([]domain.VaultItem, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.VaultItem, len(s.items[userID]))
	copy(items, s.items[userID])
	return items, nil
}

// AppendItem adds an item to the end of the user's vault
func (s *VaultStore) AppendItem(ctx context.Context, userID string, item domain.VaultItem) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[userID] = append(s.items[userID], item)
	return nil
}

// DeleteItem removes an item. Deleting an unknown ID is a no-op.
func (s *VaultStore) DeleteItem(ctx context.Context, userID, itemID string) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[userID][:0]
	for _, item := range s.items[userID] {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.items[userID] = kept
	return nil
}
