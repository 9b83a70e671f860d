package extractor

import (
	"path"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/cleanslice/docs-mcp/pkg/types"
)

const (
	// MaxDescriptionLen caps derived descriptions.
	MaxDescriptionLen = 200

	// DefaultCategory is used for documents at the docs root.
	DefaultCategory = "general"

	// preambleDelimiter opens and closes the key/value preamble block.
	preambleDelimiter = "---"
)

// Minimum token lengths for keyword derivation. Name tokens are kept from
// 3 characters, description and heading tokens from 4.
const (
	minNameTokenLen    = 2
	minContentTokenLen = 3
)

// numericPrefix matches ordering prefixes like "00-" or "01_" on path segments.
var numericPrefix = regexp.MustCompile(`^[0-9]+[-_.]+`)

// Extractor derives document metadata from raw text. It is deterministic,
// performs no I/O, and never fails: on any parse ambiguity it falls back to
// the weakest derivable value rather than erroring.
type Extractor struct {
	rootName string // docs root directory name, excluded from tags
}

// New creates an Extractor. rootName is the name of the docs root directory
// (e.g. "docs"); path segments equal to it are not emitted as tags.
func New(rootName string) *Extractor {
	return &Extractor{rootName: rootName}
}

// Extract parses a document's preamble and body into a Document. path is the
// source-relative path with forward slashes.
func (e *Extractor) Extract(relPath, raw string) types.Document {
	fields, preambleTags, body := parsePreamble(raw)

	name := fields["title"]
	if name == "" {
		name = firstHeading(body)
	}
	if name == "" {
		name = nameFromFilename(relPath)
	}

	description := fields["description"]
	if description == "" {
		description = FirstParagraph(body, MaxDescriptionLen)
	}

	doc := types.Document{
		Path:        relPath,
		Name:        name,
		Description: description,
		Category:    categoryFromPath(relPath),
		Tags:        e.deriveTags(relPath, preambleTags),
		Keywords:    deriveKeywords(name, description, body),
	}
	return doc
}

// parsePreamble parses a leading "---" delimited key/value block. Simple
// "key: value" and "key: [a, b, c]" lines only; malformed lines are skipped,
// not fatal. Returns the scalar fields, the tags array, and the body after
// the closing delimiter. Without a preamble, body is the full text.
func parsePreamble(raw string) (map[string]string, []string, string) {
	fields := make(map[string]string)
	var tags []string

	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != preambleDelimiter {
		return fields, tags, raw
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == preambleDelimiter {
			end = i
			break
		}
	}
	if end == -1 {
		// Unterminated preamble: treat the whole text as body.
		return fields, tags, raw
	}

	for _, line := range lines[1:end] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}

		if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
			items := strings.Split(value[1:len(value)-1], ",")
			var list []string
			for _, item := range items {
				item = trimQuotes(strings.TrimSpace(item))
				if item != "" {
					list = append(list, item)
				}
			}
			if key == "tags" {
				tags = list
			}
			continue
		}

		fields[key] = trimQuotes(value)
	}

	body := strings.Join(lines[end+1:], "\n")
	return fields, tags, body
}

// firstHeading returns the text of the first level-1 heading, or "".
func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// FirstParagraph returns the first contiguous non-empty, non-heading
// paragraph of the text (preamble excluded), capped at max characters with a
// trailing ellipsis if truncated. Returns "" for effectively empty text.
func FirstParagraph(raw string, max int) string {
	_, _, body := parsePreamble(raw)

	var para []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			if len(para) > 0 {
				break
			}
			continue
		}
		para = append(para, trimmed)
	}
	return truncate(strings.Join(para, " "), max)
}

// truncate caps s at max characters, appending "..." when cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max]) + "..."
}

// nameFromFilename formats a filename into a display title: extension
// dropped, numeric ordering prefix stripped, separators replaced by spaces,
// each word capitalized.
func nameFromFilename(relPath string) string {
	base := path.Base(relPath)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = numericPrefix.ReplaceAllString(base, "")
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// categoryFromPath derives the category from the top-level directory segment
// with any numeric ordering prefix stripped. Root-level documents fall into
// the default category.
func categoryFromPath(relPath string) string {
	segments := strings.Split(path.Clean(relPath), "/")
	if len(segments) < 2 {
		return DefaultCategory
	}
	cat := strings.ToLower(numericPrefix.ReplaceAllString(segments[0], ""))
	if cat == "" {
		return DefaultCategory
	}
	return cat
}

// deriveTags unions preamble-declared tags with cleaned path segments:
// numeric prefixes and the file extension dropped, README and the docs root
// name excluded.
func (e *Extractor) deriveTags(relPath string, preambleTags []string) []string {
	set := make(map[string]struct{})
	for _, t := range preambleTags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			set[t] = struct{}{}
		}
	}

	segments := strings.Split(path.Clean(relPath), "/")
	for i, seg := range segments {
		if i == len(segments)-1 {
			seg = strings.TrimSuffix(seg, path.Ext(seg))
		}
		seg = strings.ToLower(numericPrefix.ReplaceAllString(seg, ""))
		if seg == "" || seg == "readme" || (e.rootName != "" && seg == strings.ToLower(e.rootName)) {
			continue
		}
		set[seg] = struct{}{}
	}

	return sortedSet(set)
}

// deriveKeywords tokenizes the name, description, and every heading line
// into a lowercase keyword set. Name tokens shorter than 3 characters and
// content tokens shorter than 4 are dropped.
func deriveKeywords(name, description, body string) []string {
	set := make(map[string]struct{})
	addTokens(set, name, minNameTokenLen)
	addTokens(set, description, minContentTokenLen)

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			addTokens(set, strings.TrimLeft(trimmed, "# "), minContentTokenLen)
		}
	}

	return sortedSet(set)
}

// addTokens splits text on whitespace, trims surrounding punctuation, and
// adds lowercase tokens strictly longer than minLen to the set.
func addTokens(set map[string]struct{}, text string, minLen int) {
	for _, tok := range strings.Fields(text) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		tok = strings.ToLower(tok)
		if len(tok) > minLen {
			set[tok] = struct{}{}
		}
	}
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
