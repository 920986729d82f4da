package summarize

import (
	"context"

	"summaries-app-api/core/domain"
)

// mockScraper is a mock implementation of the Scraper interface
type mockScraper struct {
	scrapeAllFunc func(ctx context.Context, urls []string) []domain.Source
}

func (m *mockScraper) ScrapeAll(ctx context.Context, urls []string) []domain.Source {
	if m.scrapeAllFunc != nil {
		return m.scrapeAllFunc(ctx, urls)
	}
	return nil
}

// mockSummarizer is a mock implementation of the Summarizer interface
type mockSummarizer struct {
	summarizeFunc func(ctx context.Context, topic string, content string) (string, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, topic string, content string) (string, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, topic, content)
	}
	return "", nil
}
