// ABOUTME: Response DTOs for the summarize API endpoint
// ABOUTME: One struct covers success, insufficient-content and failure body shapes

package responses

// SourceRefResponse is one source reference in a summary response
type SourceRefResponse struct {
	URL   string `json:"url" doc:"Source page URL"`
	Title string `json:"title" doc:"Source page title"`
}

// SourceDiagnosticResponse explains why one URL contributed nothing
type SourceDiagnosticResponse struct {
	URL           string `json:"url" doc:"The URL that was attempted"`
	Title         string `json:"title" doc:"Extracted or placeholder title"`
	ContentLength int    `json:"contentLength" doc:"Length of the extracted content"`
	Error         string `json:"error" doc:"Why the URL contributed no usable content"`
}

// SummarizeResponse is the body for all summarize outcomes. Success
// responses carry success/topic/summary/sources and optionally a note;
// failures carry error plus details/suggestion or message.
type SummarizeResponse struct {
	Success bool                `json:"success,omitempty" doc:"True when a summary was produced"`
	Topic   string              `json:"topic,omitempty" doc:"The requested topic"`
	Summary string              `json:"summary,omitempty" doc:"The summary document"`
	Sources []SourceRefResponse `json:"sources,omitempty" doc:"Sources that contributed content"`
	Note    string              `json:"note,omitempty" doc:"Set when the deterministic fallback was used"`

	Error      string                     `json:"error,omitempty" doc:"Error description"`
	Details    []SourceDiagnosticResponse `json:"details,omitempty" doc:"Per-URL diagnostics"`
	Suggestion string                     `json:"suggestion,omitempty" doc:"How to fix the request"`
	Message    string                     `json:"message,omitempty" doc:"Underlying error message"`
}
