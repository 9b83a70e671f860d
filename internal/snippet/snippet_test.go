package snippet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_NoQueryReturnsFirstParagraph(t *testing.T) {
	text := "# Title\n\nThe first paragraph of the document.\n\nSecond paragraph."

	got := Extract(text, "")

	require.Len(t, got, 1)
	assert.Equal(t, "The first paragraph of the document.", got[0])
}

func TestExtract_PhraseMatch(t *testing.T) {
	text := strings.Repeat("padding line\n", 30) +
		"The dependency injection container wires providers.\n" +
		strings.Repeat("more padding\n", 30)

	got := Extract(text, "dependency injection")

	require.NotEmpty(t, got)
	assert.Contains(t, strings.ToLower(got[0]), "dependency injection")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	text := "Slices own their DEPENDENCY INJECTION setup end to end."

	got := Extract(text, "dependency injection")

	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "DEPENDENCY INJECTION")
}

func TestExtract_WordFallbackWhenPhraseAbsent(t *testing.T) {
	text := "Injection happens at wiring time.\n\nDependency graphs stay flat."

	got := Extract(text, "dependency injection")

	require.NotEmpty(t, got)
	joined := strings.ToLower(strings.Join(got, " "))
	assert.Contains(t, joined, "injection")
}

func TestExtract_NoMatchFallsBackToParagraph(t *testing.T) {
	text := "# Doc\n\nNothing relevant in here at all."

	got := Extract(text, "zebra unicorn")

	require.Len(t, got, 1)
	assert.Equal(t, "Nothing relevant in here at all.", got[0])
}

func TestExtract_AtMostMaxSnippets(t *testing.T) {
	// Ten matches far enough apart that windows never merge.
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("needle here\n")
		b.WriteString(strings.Repeat("x\n", 200))
	}

	got := Extract(b.String(), "needle")
	assert.LessOrEqual(t, len(got), DefaultMaxSnippets)
}

func TestExtract_OverlappingWindowsMerge(t *testing.T) {
	// Two matches 20 chars apart with a 150-char window must merge into one.
	text := strings.Repeat("a", 400) + " needle 12345678901 needle " + strings.Repeat("b", 400)

	got := Extract(text, "needle")

	require.Len(t, got, 1)
	assert.Equal(t, 2, strings.Count(got[0], "needle"))
}

func TestExtract_EllipsisOnMidTextCut(t *testing.T) {
	// No newlines anywhere, so both edges must carry ellipsis markers.
	text := strings.Repeat("a", 500) + "needle" + strings.Repeat("b", 500)

	got := Extract(text, "needle")

	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "..."))
	assert.True(t, strings.HasSuffix(got[0], "..."))
}

func TestExtract_TrimsToNewlineBoundary(t *testing.T) {
	// A newline falls inside the leading 30% of the window, so the snippet
	// should snap to that line boundary instead of cutting mid-line.
	text := strings.Repeat("x", 300) + "\n" + strings.Repeat("y", 100) + "needle" + strings.Repeat("z", 300)

	got := Extract(text, "needle")

	require.Len(t, got, 1)
	assert.False(t, strings.HasPrefix(got[0], "..."))
	assert.True(t, strings.HasPrefix(got[0], "y"))
	assert.Contains(t, got[0], "needle")
}

func TestExtract_EmptyTextReturnsNothing(t *testing.T) {
	assert.Empty(t, Extract("", "query"))
	assert.Empty(t, Extract("   \n ", ""))
}

func TestExtract_NonEmptyTextAlwaysYieldsSnippet(t *testing.T) {
	// Headings-only content has no paragraph but must still produce output.
	texts := []string{"# Only A Heading", "## Another\n### Nested", "single"}
	for _, text := range texts {
		got := Extract(text, "nomatch")
		require.NotEmpty(t, got, "text %q", text)
		assert.NotEmpty(t, got[0])
	}
}

func TestExtract_ClipsToTextBounds(t *testing.T) {
	text := "needle at the very start of a short text"

	got := Extract(text, "needle")

	require.Len(t, got, 1)
	assert.False(t, strings.HasPrefix(got[0], "..."))
}
