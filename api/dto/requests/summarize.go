// ABOUTME: Request DTOs for the summarize API endpoint
// ABOUTME: Defines the structure for multi-URL summarization requests

package requests

// SummarizeRequest represents a request to summarize content from URLs.
// Fields are validated in the handler so error bodies keep their exact
// shape instead of the schema validator's.
type SummarizeRequest struct {
	// URLs to fetch and summarize
	URLs []string `json:"urls,omitempty" example:"[\"https://example.com/article\"]" doc:"List of URLs to fetch and summarize"`

	// Topic the summary is about
	Topic string `json:"topic,omitempty" example:"Go concurrency" doc:"Topic the summary document is about"`
}
