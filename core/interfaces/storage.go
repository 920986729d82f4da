// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for vault persistence operations

package interfaces

import (
	"context"

	"summaries-app-api/core/domain"
)

// VaultStore defines the interface for vault persistence. Implementations
// must keep each user's items in insertion order. Callers serialize
// read-modify-write per user; stores only need to be safe for concurrent use
// across users.
type VaultStore interface {
	// ListItems returns all items for a user in insertion order.
	// A user with no stored items yields an empty slice, not an error.
	ListItems(ctx context.Context, userID string) ([]domain.VaultItem, error)

	// AppendItem appends an item to a user's vault.
	AppendItem(ctx context.Context, userID string, item domain.VaultItem) error

	// DeleteItem removes the item with the given id from a user's vault.
	// Deleting an id that does not exist is not an error.
	DeleteItem(ctx context.Context, userID string, itemID string) error
}
