// ABOUTME: Summarize service orchestrates the scrape-filter-summarize pipeline
// ABOUTME: Falls back to the deterministic composer when the LLM is absent or fails

package summarize

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"summaries-app-api/core/compose"
	"summaries-app-api/core/domain"
	coreerrors "summaries-app-api/core/errors"
	"summaries-app-api/core/interfaces"
)

const (
	// maxCombinedChars bounds the combined source text handed to the LLM
	maxCombinedChars = 120000

	noLLMNote     = "LLM API key not configured. Showing formatted content summary."
	llmFailedNote = "AI summarization failed. Showing formatted content summary instead."
)

// Scraper is the slice of the scrape service the pipeline needs
type Scraper interface {
	ScrapeAll(ctx context.Context, urls []string) []domain.Source
}

// Service runs summarization requests end to end
type Service struct {
	deps       interfaces.Dependencies
	scraper    Scraper
	summarizer interfaces.Summarizer
}

// NewService creates a new summarize service instance. summarizer may be nil
// when no LLM is configured; the composer then handles every request.
func NewService(deps interfaces.Dependencies, scraper Scraper, summarizer interfaces.Summarizer) *Service {
	return &Service{
		deps:       deps,
		scraper:    scraper,
		summarizer: summarizer,
	}
}

// Summarize fetches all URLs, filters out unusable sources and produces a
// summary document. Returns InsufficientContentError when nothing usable
// survives filtering.
func (s *Service) Summarize(ctx context.Context, urls []string, topic string) (*domain.SummaryDocument, error) {
	if len(urls) == 0 {
		return nil, &coreerrors.ValidationError{Field: "urls", Message: "cannot be empty"}
	}
	if strings.TrimSpace(topic) == "" {
		return nil, &coreerrors.ValidationError{Field: "topic", Message: "cannot be empty"}
	}

	scraped := s.scraper.ScrapeAll(ctx, urls)
	valid := FilterSources(scraped)

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Scraped URLs", map[string]interface{}{
			"requested": len(scraped),
			"valid":     len(valid),
		})
	}

	if len(valid) == 0 {
		return nil, &coreerrors.InsufficientContentError{Diagnostics: Diagnose(scraped)}
	}

	doc := &domain.SummaryDocument{
		Topic:   topic,
		Sources: sourceRefs(valid),
	}

	if s.summarizer == nil {
		doc.Body = compose.Document(valid, topic)
		doc.Note = noLLMNote
		return doc, nil
	}

	body, err := s.summarizer.Summarize(ctx, topic, CombineSources(valid))
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("LLM summarization failed, using fallback composer", map[string]interface{}{
				"error": err.Error(),
			})
		}
		doc.Body = compose.Document(valid, topic)
		doc.Note = llmFailedNote
		return doc, nil
	}

	doc.Body = body
	return doc, nil
}

// FilterSources keeps only usable sources. Output order is a subsequence of
// input order.
func FilterSources(sources []domain.Source) []domain.Source {
	var valid []domain.Source
	for _, source := range sources {
		if source.Usable() {
			valid = append(valid, source)
		}
	}
	return valid
}

// Diagnose explains, per original URL, why the batch produced no usable content
func Diagnose(sources []domain.Source) []coreerrors.SourceDiagnostic {
	diagnostics := make([]coreerrors.SourceDiagnostic, 0, len(sources))
	for _, source := range sources {
		reason := "Insufficient content"
		switch source.Status {
		case domain.SourceStatusError:
			reason = "Scraping failed"
		case domain.SourceStatusSkipped:
			reason = "Search result page skipped"
		}
		diagnostics = append(diagnostics, coreerrors.SourceDiagnostic{
			URL:           source.URL,
			Title:         source.Title,
			ContentLength: len(source.Content),
			Reason:        reason,
		})
	}
	return diagnostics
}

// CombineSources concatenates the sources into one attributed text stream,
// capped at the LLM input budget.
func CombineSources(sources []domain.Source) string {
	parts := make([]string, 0, len(sources))
	for i, source := range sources {
		parts = append(parts, fmt.Sprintf("Source %d - %s (%s):\n%s\n\n", i+1, source.Title, source.URL, source.Content))
	}

	combined := strings.Join(parts, "\n---\n\n")
	if len(combined) > maxCombinedChars {
		cut := maxCombinedChars
		for cut > 0 && !utf8.RuneStart(combined[cut]) {
			cut--
		}
		combined = combined[:cut]
	}
	return combined
}

func sourceRefs(sources []domain.Source) []domain.SourceRef {
	refs := make([]domain.SourceRef, 0, len(sources))
	for _, source := range sources {
		refs = append(refs, domain.SourceRef{URL: source.URL, Title: source.Title})
	}
	return refs
}
