// ABOUTME: HTML content extraction heuristics for scraped pages
// ABOUTME: Walks the parsed tree to recover the main content as ordered text blocks

package scrape

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"summaries-app-api/core/domain"

	"github.com/PuerkitoBio/goquery"
)

const (
	// stripSelector removes non-content elements before any extraction
	stripSelector = "script, style, nav, footer, header, aside, .advertisement, .ads, .sidebar, .social-share, .comments, iframe, noscript"

	// broadStripSelector removes additional chrome before the widened sweep
	broadStripSelector = "script, style, nav, footer, header, aside, .ad, .advertisement, .sidebar, .menu, .navigation"

	// blockSelector matches the structural descendants walked inside a main container
	blockSelector = "p, h1, h2, h3, h4, h5, h6, li, blockquote, div"

	// bodyBlockSelector is the fallback walk when no main container matches
	bodyBlockSelector = "body p, body h1, body h2, body h3, body h4, body h5, body h6, body li"

	minBlockChars     = 15
	minDivChars       = 50
	minContentChars   = 50
	minFlattenedChars = 100
	maxContentChars   = 25000

	truncationMarker = "\n\n[Content truncated...]"
	noContentMarker  = "No content available"
)

// contentSelectors are the candidate main-content containers, in priority
// order. The first selector matching at least one element wins.
var contentSelectors = []string{
	"article",
	"main",
	"[role=\"main\"]",
	".article-content",
	".post-content",
	".entry-content",
	".content",
	"#content",
	".main-content",
	".article-body",
	".post-body",
}

var (
	boilerplatePrefix = regexp.MustCompile(`(?i)^(skip|menu|navigation|footer|header|cookie|privacy)`)
	headingTag        = regexp.MustCompile(`^h[1-6]$`)
	newlineRuns       = regexp.MustCompile(`\n{3,}`)
	spaceTabRuns      = regexp.MustCompile(`[ \t]+`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
)

// stripNonContent removes script/style/navigation/ad elements from the
// working document. Must run before title or content extraction.
func stripNonContent(doc *goquery.Document) {
	doc.Find(stripSelector).Remove()
}

// extractTitle resolves the page title: Open Graph title, then the title
// element, then the first h1, then a literal placeholder.
func extractTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("meta[property=\"og:title\"]").First().AttrOr("content", "")); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return "No title"
}

// extractContent pulls the readable text out of a stripped document. It tries
// the main-container walk first, then the body-wide walk, then two
// progressively less structured sweeps when the result is too short.
func extractContent(doc *goquery.Document) string {
	var blocks []domain.ContentBlock
	if container := findMainContainer(doc); container != nil {
		blocks = blocksWithin(container)
	} else {
		blocks = bodyBlocks(doc)
	}

	content := normalizeWhitespace(renderBlocks(blocks))

	// Widened sweep: paragraph/div/span anywhere in body, minus chrome.
	if len(content) < minContentChars {
		if broad := broadSweep(doc); len(broad) > len(content) {
			content = broad
		}
	}

	// Last resort sacrifices structure for coverage.
	if len(content) < minContentChars {
		flat := strings.TrimSpace(whitespaceRuns.ReplaceAllString(doc.Find("body").Text(), " "))
		if len(flat) > minFlattenedChars {
			content = flat
		}
	}

	if len(content) > maxContentChars {
		content = truncateAt(content, maxContentChars) + truncationMarker
	}

	if content == "" {
		content = noContentMarker
	}

	return content
}

// truncateAt cuts s at limit bytes, backing off so the cut never lands
// inside a multibyte rune.
func truncateAt(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// findMainContainer returns the first element matched by the candidate
// selectors, or nil when none match. No scoring, no combining.
func findMainContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if found := doc.Find(selector).First(); found.Length() > 0 {
			return found
		}
	}
	return nil
}

// blocksWithin walks the structural descendants of a main container in
// document order.
func blocksWithin(container *goquery.Selection) []domain.ContentBlock {
	var blocks []domain.ContentBlock
	container.Find(blockSelector).Each(func(_ int, el *goquery.Selection) {
		if block, ok := classifyBlock(el); ok {
			blocks = append(blocks, block)
		}
	})
	return blocks
}

// bodyBlocks is the fallback walk over the whole body, excluding anything
// inside nav, footer or header.
func bodyBlocks(doc *goquery.Document) []domain.ContentBlock {
	var blocks []domain.ContentBlock
	doc.Find(bodyBlockSelector).Each(func(_ int, el *goquery.Selection) {
		if el.Closest("nav, footer, header").Length() > 0 {
			return
		}
		if block, ok := classifyBlock(el); ok {
			blocks = append(blocks, block)
		}
	})
	return blocks
}

// classifyBlock turns one element into a ContentBlock, rejecting wrapper-div
// noise, very short text and boilerplate navigation strings.
func classifyBlock(el *goquery.Selection) (domain.ContentBlock, bool) {
	tag := goquery.NodeName(el)
	text := strings.TrimSpace(el.Text())

	// Generic block containers must carry real text of their own weight
	if tag == "div" && len(text) < minDivChars {
		return domain.ContentBlock{}, false
	}

	if len(text) <= minBlockChars || boilerplatePrefix.MatchString(text) {
		return domain.ContentBlock{}, false
	}

	if headingTag.MatchString(tag) {
		return domain.ContentBlock{
			Kind:  domain.BlockHeading,
			Text:  text,
			Level: int(tag[1] - '0'),
		}, true
	}

	return domain.ContentBlock{Kind: domain.BlockParagraph, Text: text}, true
}

// renderBlocks joins blocks with blank lines. Headings keep their structural
// signal as markdown-style markers surrounded by blank lines.
func renderBlocks(blocks []domain.ContentBlock) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Kind == domain.BlockHeading {
			parts = append(parts, "\n## "+block.Text+"\n")
		} else {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// broadSweep retries extraction over any paragraph, div or span in the body
// once the additional chrome selectors are removed.
func broadSweep(doc *goquery.Document) string {
	body := doc.Find("body")
	body.Find(broadStripSelector).Remove()

	var parts []string
	body.Find("p, div, span").Each(func(_ int, el *goquery.Selection) {
		if el.Closest("nav, footer, header").Length() > 0 {
			return
		}
		text := strings.TrimSpace(el.Text())
		if len(text) > minBlockChars {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n\n")
}

// normalizeWhitespace collapses 3+ newlines to 2, runs of spaces/tabs to one
// space, and trims the ends.
func normalizeWhitespace(s string) string {
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	s = spaceTabRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
