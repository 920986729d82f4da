// ABOUTME: Scrape service fetches pages and extracts their readable content
// ABOUTME: Every input URL yields exactly one Source; failures never abort the batch

package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"summaries-app-api/core/domain"
	"summaries-app-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

const (
	skippedTitle   = "Search Result (Skipped)"
	skippedContent = "This is a search result page, not a content page. Please select a direct article URL."

	errorTitle       = "Error"
	fetchErrorPrefix = "Failed to scrape content from this URL: "

	sourceCacheTTL = 1 * time.Hour
	maxBodyBytes   = 5 * 1024 * 1024 // 5MB limit
)

// searchResultPatterns are substring matches for search-engine result pages.
// Matching URLs are never fetched.
var searchResultPatterns = []string{
	"google.com/search",
	"duckduckgo.com",
	"bing.com/search",
}

// Service fetches URLs and extracts their readable content
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new scrape service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// ScrapeAll fetches and extracts all URLs concurrently. The result slice
// preserves input order and contains exactly one Source per input URL.
func (s *Service) ScrapeAll(ctx context.Context, urls []string) []domain.Source {
	results := make([]domain.Source, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(index int, rawURL string) {
			defer wg.Done()
			results[index] = s.ScrapeOne(ctx, rawURL)
		}(i, url)
	}

	wg.Wait()
	return results
}

// ScrapeOne fetches a single URL and extracts its content. Failures are
// captured as error-status Sources, never returned as errors.
func (s *Service) ScrapeOne(ctx context.Context, rawURL string) domain.Source {
	cleanURL := NormalizeURL(rawURL)

	if IsSearchResultURL(cleanURL) {
		if s.deps.Logger != nil {
			s.deps.Logger.Info("Skipping search result URL", map[string]interface{}{
				"url": cleanURL,
			})
		}
		return domain.Source{
			URL:     cleanURL,
			Title:   skippedTitle,
			Content: skippedContent,
			Status:  domain.SourceStatusSkipped,
		}
	}

	if cached, ok := s.cachedSource(ctx, cleanURL); ok {
		return cached
	}

	if s.deps.HTTPClient == nil {
		return errorSource(cleanURL, "HTTP client not configured", 0)
	}

	resp, err := s.deps.HTTPClient.Get(ctx, cleanURL)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Failed to fetch URL", map[string]interface{}{
				"url":   cleanURL,
				"error": err.Error(),
			})
		}
		return errorSource(cleanURL, err.Error(), 0)
	}
	defer resp.Body().Close()

	// Redirects delivered with a body count as success
	if resp.StatusCode() < 200 || resp.StatusCode() >= 400 {
		return errorSource(cleanURL, fmt.Sprintf("unexpected status %d", resp.StatusCode()), resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return errorSource(cleanURL, err.Error(), resp.StatusCode())
	}

	stripNonContent(doc)
	title := extractTitle(doc)
	content := extractContent(doc)

	source := domain.Source{
		URL:     cleanURL,
		Title:   title,
		Content: content,
		Status:  domain.SourceStatusOK,
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Extracted content", map[string]interface{}{
			"url":            cleanURL,
			"content_length": len(content),
		})
	}

	s.cacheSource(ctx, source)
	return source
}

// NormalizeURL trims the URL and prepends https:// when no scheme is present.
// The normalized form is the one reported back on the resulting Source.
func NormalizeURL(rawURL string) string {
	cleanURL := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(cleanURL, "http://") && !strings.HasPrefix(cleanURL, "https://") {
		cleanURL = "https://" + cleanURL
	}
	return cleanURL
}

// IsSearchResultURL reports whether the URL matches a known search-engine
// result pattern. Such URLs are skipped by policy, not treated as errors.
func IsSearchResultURL(url string) bool {
	for _, pattern := range searchResultPatterns {
		if strings.Contains(url, pattern) {
			return true
		}
	}
	return false
}

// errorSource converts a fetch or parse failure into an error-status Source
func errorSource(url, message string, statusCode int) domain.Source {
	status := "N/A"
	if statusCode != 0 {
		status = strconv.Itoa(statusCode)
	}
	return domain.Source{
		URL:     url,
		Title:   errorTitle,
		Content: fmt.Sprintf("%s%s. Status: %s", fetchErrorPrefix, message, status),
		Status:  domain.SourceStatusError,
	}
}

// cachedSource retrieves a previously extracted source from cache
func (s *Service) cachedSource(ctx context.Context, url string) (domain.Source, bool) {
	if s.deps.Cache == nil {
		return domain.Source{}, false
	}

	data, err := s.deps.Cache.Get(ctx, "source:"+url)
	if err != nil || data == nil {
		return domain.Source{}, false
	}

	var source domain.Source
	if err := json.Unmarshal(data, &source); err != nil {
		return domain.Source{}, false
	}

	return source, true
}

// cacheSource stores a successfully extracted source in cache
func (s *Service) cacheSource(ctx context.Context, source domain.Source) {
	if s.deps.Cache == nil || source.Status != domain.SourceStatusOK {
		return
	}

	data, err := json.Marshal(source)
	if err != nil {
		return
	}

	_ = s.deps.Cache.Set(ctx, "source:"+source.URL, data, sourceCacheTTL)
}
