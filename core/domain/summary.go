// ABOUTME: SummaryDocument domain model represents one summarization result
// ABOUTME: Built once per request and never persisted by the core pipeline

package domain

// SourceRef is one entry in a summary's source list.
type SourceRef struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SummaryDocument is the final output of a summarization request. Body is
// either LLM-produced prose or the deterministic composer's structured text.
type SummaryDocument struct {
	// Topic is the user-supplied topic string
	Topic string

	// Body is the summary text
	Body string

	// Sources lists the pages that contributed, in pipeline order
	Sources []SourceRef

	// Note is an optional human-readable caveat, set when the LLM path
	// was skipped or failed
	Note string
}
