package source

import (
	"sort"

	"github.com/cleanslice/docs-mcp/internal/scorer"
	"github.com/cleanslice/docs-mcp/internal/snippet"
	"github.com/cleanslice/docs-mcp/pkg/types"
)

// ContentFunc resolves a document's full text for snippet extraction. It may
// hit a cache or the network; a false return drops the document's snippets
// but keeps the hit.
type ContentFunc func(d *types.Document) (string, bool)

// Rank applies the hard filter and scorer to every document in scan order,
// extracts snippets for the survivors, and returns the results sorted by
// score descending. The sort is stable so tied scores keep scan order.
func Rank(q types.SearchQuery, docs []*types.Document, origin types.Source, content ContentFunc) ([]types.ScoredResult, error) {
	if err := scorer.ValidateFramework(q.Framework); err != nil {
		return nil, err
	}

	var results []types.ScoredResult
	for _, d := range docs {
		score := scorer.Score(q, d)
		if score <= 0 {
			continue
		}

		var snippets []string
		if text, ok := content(d); ok {
			snippets = snippet.Extract(text, q.Text)
		}

		results = append(results, types.ScoredResult{
			Document: d,
			Score:    score,
			Snippets: snippets,
			Source:   origin,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}
