// ABOUTME: Deterministic fallback composer for when no LLM summary is available
// ABOUTME: Reflows extracted source text into a structured Overview/Key Information/Summary document

package compose

import (
	"fmt"
	"regexp"
	"strings"

	"summaries-app-api/core/domain"
)

const (
	// minParagraphChars is the floor below which reflowed paragraphs are dropped
	minParagraphChars = 30

	// minUniqueChars is the floor applied again at deduplication time
	minUniqueChars = 40

	// signaturePrefixChars is how much of a paragraph feeds its dedup signature
	signaturePrefixChars = 150

	// maxSummaryChars and maxParagraphs bound the assembled document,
	// independent of the per-source extraction cap
	maxSummaryChars = 30000
	maxParagraphs   = 100

	truncationNote = "\n\n[Additional content available in source materials]\n\n"

	sectionRule = "------------------------------------------------------------"
)

var (
	allCapsHeading    = regexp.MustCompile(`^[A-Z][A-Z\s]{10,}$`)
	leadingNoise      = regexp.MustCompile(`(?i)^(Source|http|www\.|https?://)`)
	boilerplatePrefix = regexp.MustCompile(`(?i)^(skip|menu|navigation|footer|header|cookie|privacy|terms)`)
	nonWordChars      = regexp.MustCompile(`[^\w\s]`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
)

// Document reflows the sources' content into a single structured text
// document about the topic. The algorithm is deterministic: identical input
// yields byte-identical output.
func Document(sources []domain.Source, topic string) string {
	var b strings.Builder

	b.WriteString(topic + "\n\n")
	b.WriteString(strings.Repeat("=", len(topic)) + "\n\n")

	b.WriteString("OVERVIEW\n\n")
	fmt.Fprintf(&b,
		"This document consolidates information from %d source%s about %s. "+
			"The following sections present key information, insights, and findings from these sources.\n\n",
		len(sources), plural(len(sources)), topic)
	b.WriteString(sectionRule + "\n\n")

	contents := make([]string, 0, len(sources))
	for _, source := range sources {
		contents = append(contents, source.Content)
	}
	paragraphs := dedupeParagraphs(cleanParagraphs(splitParagraphs(strings.Join(contents, "\n\n"))))

	b.WriteString("KEY INFORMATION\n\n")

	paragraphCount := 0
	for _, para := range paragraphs {
		if isHeadingUnit(para) {
			b.WriteString("\n" + para + "\n\n")
		} else {
			b.WriteString(para + "\n\n")
			paragraphCount++
		}

		if b.Len() > maxSummaryChars || paragraphCount > maxParagraphs {
			b.WriteString(truncationNote)
			break
		}
	}

	b.WriteString(sectionRule + "\n\n")
	b.WriteString("SUMMARY\n\n")
	fmt.Fprintf(&b,
		"The information presented above provides a comprehensive overview of %s, drawing from multiple "+
			"authoritative sources. Key points and insights have been consolidated to present a unified "+
			"understanding of the topic.\n\n",
		topic)

	b.WriteString(sectionRule + "\n\n")
	fmt.Fprintf(&b,
		"Note: This summary was compiled from %d source%s. Source URLs are available in the sources section.\n",
		len(sources), plural(len(sources)))

	return b.String()
}

// splitParagraphs re-segments a combined text stream into paragraph and
// heading units. Blank lines terminate the running paragraph; markdown
// headings pass through verbatim; short all-caps or #-prefixed lines become
// implicit headings, uppercased.
func splitParagraphs(text string) []string {
	var paragraphs []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush()
			continue
		}

		if strings.HasPrefix(trimmed, "##") {
			flush()
			paragraphs = append(paragraphs, trimmed)
			continue
		}

		if strings.HasPrefix(trimmed, "#") || allCapsHeading.MatchString(trimmed) {
			flush()
			if len(trimmed) < 80 && !hasTerminalPunctuation(trimmed) {
				paragraphs = append(paragraphs, strings.ToUpper(trimmed))
			} else {
				current.WriteString(trimmed + " ")
			}
			continue
		}

		current.WriteString(trimmed + " ")
	}
	flush()

	return paragraphs
}

// cleanParagraphs drops units that are too short, start with source/URL
// noise, or start with boilerplate navigation words.
func cleanParagraphs(paragraphs []string) []string {
	var cleaned []string
	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if len(para) < minParagraphChars {
			continue
		}
		if leadingNoise.MatchString(para) {
			continue
		}
		if boilerplatePrefix.MatchString(para) {
			continue
		}
		cleaned = append(cleaned, para)
	}
	return cleaned
}

// dedupeParagraphs removes near-duplicate units by normalized-prefix
// signature. First occurrence wins; order is preserved.
func dedupeParagraphs(paragraphs []string) []string {
	var unique []string
	seen := make(map[string]bool)

	for _, para := range paragraphs {
		sig := signature(para)
		if !seen[sig] && len(para) > minUniqueChars {
			seen[sig] = true
			unique = append(unique, para)
		}
	}
	return unique
}

// signature normalizes a paragraph's leading prefix for deduplication
func signature(para string) string {
	prefix := para
	if len(prefix) > signaturePrefixChars {
		prefix = prefix[:signaturePrefixChars]
	}
	prefix = strings.ToLower(prefix)
	prefix = nonWordChars.ReplaceAllString(prefix, "")
	prefix = whitespaceRuns.ReplaceAllString(prefix, " ")
	return prefix
}

// isHeadingUnit reports whether an assembled unit renders as a heading:
// markdown-marked, or short all-caps with no terminal period.
func isHeadingUnit(para string) bool {
	if strings.HasPrefix(para, "##") {
		return true
	}
	return len(para) < 80 && para == strings.ToUpper(para) && !strings.HasSuffix(para, ".")
}

// hasTerminalPunctuation reports whether a line ends like a sentence
func hasTerminalPunctuation(line string) bool {
	return strings.HasSuffix(line, ".") || strings.HasSuffix(line, "!") || strings.HasSuffix(line, "?")
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
