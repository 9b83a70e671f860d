package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanslice/docs-mcp/pkg/types"
)

func rankDocs() []*types.Document {
	return []*types.Document{
		{
			Path:     "a.md",
			Name:     "Alpha",
			Category: "patterns",
			Tags:     []string{"patterns"},
			Content:  "Alpha content about patterns.",
		},
		{
			Path:        "b.md",
			Name:        "Beta Patterns Guide",
			Description: "patterns everywhere",
			Category:    "patterns",
			Tags:        []string{"patterns"},
			Keywords:    []string{"patterns"},
			Content:     "Beta content.",
		},
		{
			Path:     "c.md",
			Name:     "Gamma",
			Category: "other",
			Tags:     []string{"other"},
			Content:  "Gamma content.",
		},
	}
}

func contentFromDoc(d *types.Document) (string, bool) {
	return d.Content, true
}

func TestRank_ExcludesZeroScores(t *testing.T) {
	q := types.SearchQuery{Category: "patterns"}

	results, err := Rank(q, rankDocs(), types.SourceLocal, contentFromDoc)
	require.NoError(t, err)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Greater(t, r.Score, 0)
		assert.Equal(t, "patterns", r.Document.Category)
		assert.Equal(t, types.SourceLocal, r.Source)
	}
}

func TestRank_SortedByScoreStable(t *testing.T) {
	// "patterns" as text scores b.md higher (word in name) than a.md; the
	// two equal-category-only hits keep scan order among themselves.
	q := types.SearchQuery{Text: "patterns", Category: "patterns"}

	results, err := Rank(q, rankDocs(), types.SourceLocal, contentFromDoc)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "b.md", results[0].Document.Path)
	assert.Equal(t, "a.md", results[1].Document.Path)
}

func TestRank_TieKeepsScanOrder(t *testing.T) {
	q := types.SearchQuery{Category: "patterns"}

	results, err := Rank(q, rankDocs(), types.SourceLocal, contentFromDoc)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "a.md", results[0].Document.Path)
	assert.Equal(t, "b.md", results[1].Document.Path)
}

func TestRank_UnknownFrameworkErrors(t *testing.T) {
	q := types.SearchQuery{Framework: "django"}

	_, err := Rank(q, rankDocs(), types.SourceLocal, contentFromDoc)
	assert.ErrorIs(t, err, types.ErrUnknownFramework)
}

func TestRank_SnippetsExtractedFromContent(t *testing.T) {
	q := types.SearchQuery{Text: "alpha"}

	results, err := Rank(q, rankDocs(), types.SourceLocal, contentFromDoc)
	require.NoError(t, err)

	require.NotEmpty(t, results)
	require.NotEmpty(t, results[0].Snippets)
	assert.Contains(t, results[0].Snippets[0], "Alpha content")
}

func TestRank_ContentUnavailableKeepsHit(t *testing.T) {
	q := types.SearchQuery{Category: "patterns"}

	noContent := func(d *types.Document) (string, bool) { return "", false }
	results, err := Rank(q, rankDocs(), types.SourceRemote, noContent)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Empty(t, results[0].Snippets)
}
