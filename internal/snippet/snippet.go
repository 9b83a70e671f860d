// Package snippet extracts short context windows around query matches for
// result previews. Extraction never fails: with no query or no matches it
// falls back to the document's first paragraph.
package snippet

import (
	"sort"
	"strings"

	"github.com/cleanslice/docs-mcp/internal/extractor"
)

const (
	// DefaultMaxSnippets bounds how many windows are returned.
	DefaultMaxSnippets = 3
	// DefaultWindow is the number of context characters kept on each side
	// of a match.
	DefaultWindow = 150

	// fallbackMax caps the first-paragraph fallback snippet.
	fallbackMax = 300

	// edgePercent is how deep into a window (from either end) a newline
	// boundary may be used to avoid mid-line cuts.
	edgePercent = 30
)

// span is a half-open [start, end) character range in the source text.
type span struct {
	start, end int
}

// Extract returns up to DefaultMaxSnippets context windows around matches of
// queryText in fullText, using the default window size.
func Extract(fullText, queryText string) []string {
	return ExtractN(fullText, queryText, DefaultMaxSnippets, DefaultWindow)
}

// ExtractN returns up to maxSnippets merged context windows of window
// characters on each side of every match, in document order. Matching is
// case-insensitive: the exact phrase first, individual words if the phrase
// is absent, the first paragraph if nothing matches at all.
func ExtractN(fullText, queryText string, maxSnippets, window int) []string {
	if strings.TrimSpace(fullText) == "" {
		return nil
	}

	query := strings.TrimSpace(queryText)
	if query == "" {
		return fallback(fullText)
	}

	lowerText := strings.ToLower(fullText)
	lowerQuery := strings.ToLower(query)

	spans := matchSpans(lowerText, lowerQuery, window)
	if len(spans) == 0 {
		for _, word := range strings.Fields(lowerQuery) {
			spans = append(spans, matchSpans(lowerText, word, window)...)
		}
	}
	if len(spans) == 0 {
		return fallback(fullText)
	}

	merged := mergeSpans(spans)
	if len(merged) > maxSnippets {
		merged = merged[:maxSnippets]
	}

	out := make([]string, 0, len(merged))
	for _, sp := range merged {
		if s := render(fullText, sp); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback(fullText)
	}
	return out
}

// matchSpans locates every non-overlapping occurrence of needle and expands
// each into a window clipped to the text bounds.
func matchSpans(lowerText, needle string, window int) []span {
	if needle == "" {
		return nil
	}

	var spans []span
	offset := 0
	for {
		idx := strings.Index(lowerText[offset:], needle)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(needle)
		spans = append(spans, span{
			start: max(0, start-window),
			end:   min(len(lowerText), end+window),
		})
		offset = end
	}
	return spans
}

// mergeSpans sorts spans by start offset and merges any that overlap or
// touch, preserving document order.
func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.start <= last.end {
			if sp.end > last.end {
				last.end = sp.end
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// render trims a window to the nearest newline boundary when one falls
// within the edge region, marks the cut with an ellipsis otherwise, and
// strips surrounding whitespace.
func render(fullText string, sp span) string {
	start, end := sp.start, sp.end
	edge := (end - start) * edgePercent / 100

	prefix, suffix := "", ""
	if start > 0 {
		if i := strings.IndexByte(fullText[start:start+edge], '\n'); i >= 0 {
			start += i + 1
		} else {
			prefix = "..."
		}
	}
	if end < len(fullText) {
		if i := strings.LastIndexByte(fullText[end-edge:end], '\n'); i >= 0 {
			end = end - edge + i
		} else {
			suffix = "..."
		}
	}

	content := strings.TrimSpace(fullText[start:end])
	if content == "" {
		return ""
	}
	return prefix + content + suffix
}

// fallback returns the first-paragraph snippet, or the leading text when the
// document has no plain paragraph at all (e.g. headings only).
func fallback(fullText string) []string {
	p := extractor.FirstParagraph(fullText, fallbackMax)
	if p == "" {
		p = strings.TrimSpace(fullText)
		if len(p) > fallbackMax {
			p = strings.TrimSpace(p[:fallbackMax]) + "..."
		}
	}
	if p == "" {
		return nil
	}
	return []string{p}
}
