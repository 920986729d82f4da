// ABOUTME: VaultItem domain model represents a persisted past summary
// ABOUTME: Provides validation logic to ensure vault data integrity

package domain

import "errors"

// VaultItem is one saved summary in a user's vault. Items are append-only
// per user except for explicit delete-by-id.
type VaultItem struct {
	// ID is a server-generated numeric string (unix milliseconds)
	ID string `json:"id"`

	// Topic is the summary's topic
	Topic string `json:"topic"`

	// Summary is the full summary text
	Summary string `json:"summary"`

	// Sources lists the pages the summary drew from
	Sources []SourceRef `json:"sources"`

	// CreatedAt is an RFC3339 timestamp
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is an RFC3339 timestamp
	UpdatedAt string `json:"updatedAt"`
}

// Validate checks if the item has valid required fields. The ID is
// server-assigned and is not part of input validation.
func (v *VaultItem) Validate() error {
	if v.Topic == "" {
		return errors.New("vault item topic cannot be empty")
	}

	if v.Summary == "" {
		return errors.New("vault item summary cannot be empty")
	}

	return nil
}
