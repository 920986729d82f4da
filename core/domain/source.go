// ABOUTME: Source domain model represents one fetched-and-extracted web page
// ABOUTME: Carries an explicit status so downstream stages never sniff content strings

package domain

// SourceStatus classifies the outcome of fetching and extracting one URL.
type SourceStatus string

const (
	// SourceStatusOK means content was extracted and may be usable.
	SourceStatusOK SourceStatus = "ok"

	// SourceStatusSkipped means the URL matched a search-engine result
	// pattern and was deliberately not fetched.
	SourceStatusSkipped SourceStatus = "skipped"

	// SourceStatusError means the fetch or parse failed.
	SourceStatusError SourceStatus = "error"
)

// Source represents one web page's contribution to a summarization request.
// Immutable after creation; Content is never the empty string.
type Source struct {
	// URL is the normalized, scheme-qualified URL that was fetched
	URL string

	// Title is the best-effort page title
	Title string

	// Content is the extracted plain/lightly-marked-up text
	Content string

	// Status classifies the extraction outcome
	Status SourceStatus
}

// Usable reports whether the source carries enough extracted content to
// contribute to a summary. Sources skipped by policy or failed fetches never
// qualify, regardless of content length.
func (s Source) Usable() bool {
	return s.Status == SourceStatusOK && len(s.Content) > 30
}

// BlockKind identifies a structural unit of extracted text.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
)

// ContentBlock is one ordered unit of extracted text. Ordering within a
// Source reflects document order and must be preserved downstream.
type ContentBlock struct {
	// Kind is heading or paragraph
	Kind BlockKind

	// Text is the trimmed element text
	Text string

	// Level is the heading level (1-6) for heading blocks, 0 otherwise
	Level int
}
