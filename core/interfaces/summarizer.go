// ABOUTME: Summarizer interface for the optional LLM integration point
// ABOUTME: The core falls back to the deterministic composer when it is absent or fails

package interfaces

import "context"

// Summarizer produces a prose summary of combined source content about a
// topic. The caller truncates content to the adapter's input budget before
// handing off and never retries a failed call; failures are recovered by the
// deterministic fallback composer.
type Summarizer interface {
	Summarize(ctx context.Context, topic string, content string) (string, error)
}
