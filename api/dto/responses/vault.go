// ABOUTME: Response DTOs for vault API endpoints
// ABOUTME: Mirrors the list, save and delete body shapes of the vault contract

package responses

// VaultItemResponse is one saved summary in API responses
type VaultItemResponse struct {
	ID        string              `json:"id" doc:"Server-generated item ID"`
	Topic     string              `json:"topic" doc:"Topic of the saved summary"`
	Summary   string              `json:"summary" doc:"Full summary text"`
	Sources   []SourceRefResponse `json:"sources" doc:"Sources the summary drew from"`
	CreatedAt string              `json:"createdAt" doc:"RFC3339 creation timestamp"`
	UpdatedAt string              `json:"updatedAt" doc:"RFC3339 update timestamp"`
}

// VaultListResponse is the body for listing a user's vault. Items is a
// pointer so an empty vault still serializes as an empty array while
// error bodies omit the field entirely.
type VaultListResponse struct {
	Success bool                 `json:"success,omitempty" doc:"True on success"`
	Items   *[]VaultItemResponse `json:"items,omitempty" doc:"Items in insertion order"`

	Error   string `json:"error,omitempty" doc:"Error description"`
	Message string `json:"message,omitempty" doc:"Underlying error message"`
}

// VaultSaveResponse is the body for saving an item
type VaultSaveResponse struct {
	Success bool               `json:"success,omitempty" doc:"True when the item was saved"`
	Item    *VaultItemResponse `json:"item,omitempty" doc:"The saved item with ID and timestamps"`

	Error   string `json:"error,omitempty" doc:"Error description"`
	Message string `json:"message,omitempty" doc:"Underlying error message"`
}

// VaultDeleteResponse is the body for deleting an item
type VaultDeleteResponse struct {
	Success bool   `json:"success,omitempty" doc:"True when the delete was processed"`
	Message string `json:"message,omitempty" doc:"Confirmation or error message"`

	Error string `json:"error,omitempty" doc:"Error description"`
}
