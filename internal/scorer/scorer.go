// Package scorer computes additive relevance scores for documents against a
// structured query. Scoring is a deliberately simple, explainable weighted
// heuristic: each matched query field contributes independently, so a score
// approximates breadth and strength of match rather than a probability.
//
// The framework filter is the single hard exclusion: a document tagged with
// a different recognized framework is dropped outright regardless of other
// matches. Every other criterion only adds weight. A final score of zero
// excludes the document from results, so an entirely empty query matches
// nothing.
package scorer

import (
	"math"
	"strings"

	"github.com/cleanslice/docs-mcp/pkg/types"
)

// Contribution weights. Absolute values are a tuned heuristic; the ordering
// (phrase in name > description > keyword > elsewhere) is the contract.
const (
	weightFrameworkMatch    = 10
	weightFrameworkAgnostic = 5

	weightPhraseInName        = 20
	weightPhraseInDescription = 15
	weightPhraseInKeyword     = 12
	weightPhraseInBlob        = 8
	weightMultiWordBase       = 10

	weightWordInName        = 15
	weightWordInDescription = 12
	weightWordInKeyword     = 10
	weightWordInBlob        = 5

	weightPhase        = 8
	weightFeatureTag   = 8
	weightFeatureName  = 5
	weightCategory     = 6
	weightTag          = 3
	weightSliceName    = 7
	weightContextMatch = 3
)

// Score computes the document's relevance to the query. Returns 0 when the
// document should be excluded, either via the framework hard filter or
// because nothing matched.
func Score(q types.SearchQuery, d *types.Document) int {
	score := 0

	// Framework: the only hard filter. A document tagged with a different
	// recognized framework is excluded even if other criteria would match.
	if fw := strings.ToLower(q.Framework); fw != "" {
		tagged := docFrameworks(d)
		switch {
		case contains(tagged, fw):
			score += weightFrameworkMatch
		case len(tagged) > 0:
			return 0
		case d.HasKeyword(fw):
			score += weightFrameworkMatch
		default:
			score += weightFrameworkAgnostic
		}
	}

	score += scoreText(q.Text, d)

	if q.Phase != "" {
		phase := strings.ToLower(string(q.Phase))
		if d.HasTag(phase) || d.HasKeyword(phase) {
			score += weightPhase
		}
	}

	if q.Feature != "" {
		feature := strings.ToLower(q.Feature)
		switch {
		case anyContains(d.Tags, feature) || anyContains(d.Keywords, feature):
			score += weightFeatureTag
		case strings.Contains(strings.ToLower(d.Name), feature):
			score += weightFeatureName
		}
	}

	if q.Category != "" && strings.EqualFold(q.Category, d.Category) {
		score += weightCategory
	}

	for _, tag := range q.Tags {
		if anyContains(d.Tags, strings.ToLower(tag)) {
			score += weightTag
		}
	}

	if q.SliceName != "" && strings.Contains(strings.ToLower(d.Name), strings.ToLower(q.SliceName)) {
		score += weightSliceName
	}

	if q.Context != "" {
		if q.Context == types.ContextAPI {
			if hasFrameworkOfKind(d, KindBackend) {
				score += weightContextMatch
			}
		} else if hasFrameworkOfKind(d, KindFrontend) {
			score += weightContextMatch
		}
	}

	return score
}

// scoreText scores the free-form text term. An exact phrase match in each
// field contributes independently; when the phrase is absent everywhere a
// multi-word query degrades to word coverage, and a single-word query takes
// its strongest single placement.
func scoreText(text string, d *types.Document) int {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0
	}

	name := strings.ToLower(d.Name)
	description := strings.ToLower(d.Description)
	blob := name + " " + description + " " + strings.Join(d.Keywords, " ")

	words := strings.Fields(text)
	if len(words) == 1 {
		switch {
		case strings.Contains(name, text):
			return weightWordInName
		case strings.Contains(description, text):
			return weightWordInDescription
		case keywordContains(d, text):
			return weightWordInKeyword
		case strings.Contains(blob, text):
			return weightWordInBlob
		}
		return 0
	}

	score := 0
	if strings.Contains(name, text) {
		score += weightPhraseInName
	}
	if strings.Contains(description, text) {
		score += weightPhraseInDescription
	}
	if keywordContains(d, text) {
		score += weightPhraseInKeyword
	}
	if strings.Contains(blob, text) {
		score += weightPhraseInBlob
	}
	if score > 0 {
		return score
	}

	// Phrase not found anywhere: credit partial word coverage.
	found := 0
	for _, w := range words {
		if strings.Contains(blob, w) {
			found++
		}
	}
	if found == 0 {
		return 0
	}
	return int(math.Round(weightMultiWordBase * float64(found) / float64(len(words))))
}

// keywordContains reports whether any keyword contains the term.
func keywordContains(d *types.Document, term string) bool {
	for _, k := range d.Keywords {
		if strings.Contains(k, term) {
			return true
		}
	}
	return false
}

// anyContains reports whether any item contains the lowercase term.
func anyContains(items []string, term string) bool {
	for _, item := range items {
		if strings.Contains(item, term) {
			return true
		}
	}
	return false
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
