// ABOUTME: Request DTOs for vault API endpoints
// ABOUTME: Defines the structure for saving summaries to a user's vault

package requests

// VaultSourceRef is one source reference attached to a saved summary
type VaultSourceRef struct {
	URL   string `json:"url" doc:"Source page URL"`
	Title string `json:"title" doc:"Source page title"`
}

// SaveVaultItemRequest represents a request to save a summary to the vault.
// Validated in the handler to preserve the error body shape.
type SaveVaultItemRequest struct {
	// Topic of the saved summary
	Topic string `json:"topic,omitempty" doc:"Topic of the saved summary"`

	// Summary is the full summary text
	Summary string `json:"summary,omitempty" doc:"Full summary text"`

	// Sources the summary drew from
	Sources []VaultSourceRef `json:"sources,omitempty" doc:"Sources the summary drew from"`
}
