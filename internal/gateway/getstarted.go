package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleanslice/docs-mcp/pkg/types"
)

// Subtopic is one section of the synthesized getting-started answer. A
// sub-topic resolves to the first result whose path or name contains any of
// its keywords, tried in priority order.
type Subtopic struct {
	Title    string
	Keywords []string
}

// DefaultSubtopics is the stock section list. The exact set is a product
// choice, so callers may override it via WithSubtopics.
var DefaultSubtopics = []Subtopic{
	{Title: "Overview", Keywords: []string{"overview", "introduction", "what-is"}},
	{Title: "When To Use", Keywords: []string{"when-to-use", "use-cases", "when"}},
	{Title: "Project Structure", Keywords: []string{"structure", "layout", "folders"}},
	{Title: "Checklist", Keywords: []string{"checklist", "steps", "setup"}},
}

// bootstrap queries for GetStarted.
var (
	primaryBootstrapQuery = types.SearchQuery{
		Text:     "get-started",
		Category: "quickstart",
		Limit:    10,
	}
	fallbackBootstrapQuery = types.SearchQuery{
		Phase:    types.PhaseInitialization,
		Category: "quickstart",
		Limit:    10,
	}
)

// rulesToken marks the canonical rules document in its path or name.
const rulesToken = "rules"

// GetStarted answers the bootstrap query for new users. When the merged
// search surfaces the rules document, its full content is the answer;
// otherwise a reduced overview is synthesized from the best quickstart
// matches per sub-topic.
func (g *Gateway) GetStarted(ctx context.Context) (types.GettingStarted, error) {
	page, err := g.Search(ctx, primaryBootstrapQuery)
	if err != nil {
		return types.GettingStarted{}, err
	}

	for _, r := range page.Results {
		if !containsFold(r.Document.Path, rulesToken) && !containsFold(r.Document.Name, rulesToken) {
			continue
		}
		content, err := g.Read(ctx, r.Document.Path)
		if err != nil {
			continue
		}
		return types.GettingStarted{Title: r.Document.Name, Overview: content}, nil
	}

	return g.synthesize(ctx)
}

// synthesize builds the reduced getting-started answer from the fallback
// query, one section per resolvable sub-topic.
func (g *Gateway) synthesize(ctx context.Context) (types.GettingStarted, error) {
	page, err := g.Search(ctx, fallbackBootstrapQuery)
	if err != nil {
		return types.GettingStarted{}, err
	}

	var b strings.Builder
	sections := 0
	for _, st := range g.subtopics {
		r, ok := resolveSubtopic(st, page.Results)
		if !ok {
			continue
		}
		sections++

		summary := r.Document.Description
		if summary == "" && len(r.Snippets) > 0 {
			summary = r.Snippets[0]
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\nSee: %s\n\n", st.Title, summary, r.Document.Path)
	}

	if sections == 0 {
		return types.GettingStarted{
			Title:    "Getting Started",
			Overview: "No quickstart documentation was found in the indexed sources.",
		}, nil
	}

	return types.GettingStarted{
		Title:    "Getting Started",
		Overview: strings.TrimSpace(b.String()),
	}, nil
}

// resolveSubtopic finds the first result whose path or name contains one of
// the sub-topic's keywords, honoring keyword priority order.
func resolveSubtopic(st Subtopic, results []types.ScoredResult) (types.ScoredResult, bool) {
	for _, kw := range st.Keywords {
		for _, r := range results {
			if containsFold(r.Document.Path, kw) || containsFold(r.Document.Name, kw) {
				return r, true
			}
		}
	}
	return types.ScoredResult{}, false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
