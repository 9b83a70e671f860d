package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanslice/docs-mcp/internal/gateway"
	"github.com/cleanslice/docs-mcp/internal/source"
	"github.com/cleanslice/docs-mcp/pkg/types"
)

// stubRepo is a canned source.Repository for handler tests.
type stubRepo struct {
	results    []types.ScoredResult
	categories []string
	contents   map[string]string
	rescanErr  error
}

var _ source.Repository = (*stubRepo)(nil)

func (r *stubRepo) Search(ctx context.Context, q types.SearchQuery) ([]types.ScoredResult, error) {
	if q.IsEmpty() {
		return nil, nil
	}
	return r.results, nil
}

func (r *stubRepo) Categories(ctx context.Context) ([]string, error) {
	return r.categories, nil
}

func (r *stubRepo) Read(ctx context.Context, path string) (string, error) {
	if content, ok := r.contents[path]; ok {
		return content, nil
	}
	return "", types.ErrNotFound
}

func (r *stubRepo) Rescan(ctx context.Context) error {
	return r.rescanErr
}

func newTestServer(repo *stubRepo) *Server {
	return NewServer(gateway.New(repo, nil))
}

func callRequest(name string, args map[string]interface{}) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultJSON(t *testing.T, result *mcplib.CallToolResult) map[string]interface{} {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content")

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func mcpCode(t *testing.T, err error) int {
	t.Helper()
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	return mcpErr.Code
}

func TestHandleSearchDocs(t *testing.T) {
	repo := &stubRepo{
		results: []types.ScoredResult{
			{
				Document: &types.Document{
					Path:     "10-backend/auth.md",
					Name:     "Auth",
					Category: "backend",
					Tags:     []string{"nestjs"},
				},
				Score:    25,
				Snippets: []string{"...token validation..."},
				Source:   types.SourceLocal,
			},
		},
	}
	s := newTestServer(repo)

	result, err := s.handleSearchDocs(context.Background(), callRequest("search_docs", map[string]interface{}{
		"query": "auth",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, float64(1), payload["total"])
	assert.Equal(t, float64(types.DefaultLimit), payload["limit"])
	assert.Equal(t, float64(0), payload["offset"])

	results, ok := payload["results"].([]interface{})
	require.True(t, ok)
	require.Len(t, results, 1)
	hit := results[0].(map[string]interface{})
	assert.Equal(t, "10-backend/auth.md", hit["path"])
	assert.Equal(t, "local", hit["source"])
	assert.Equal(t, float64(25), hit["score"])
}

func TestHandleSearchDocsEmptyQueryIsEmptyPage(t *testing.T) {
	s := newTestServer(&stubRepo{})

	result, err := s.handleSearchDocs(context.Background(), callRequest("search_docs", nil))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, float64(0), payload["total"])
	assert.Empty(t, payload["results"])
}

func TestHandleSearchDocsUnknownFramework(t *testing.T) {
	s := newTestServer(&stubRepo{})

	_, err := s.handleSearchDocs(context.Background(), callRequest("search_docs", map[string]interface{}{
		"framework": "django",
	}))
	require.Error(t, err)
	assert.Equal(t, ErrorCodeUnknownFramework, mcpCode(t, err))
}

func TestHandleSearchDocsLimitValidation(t *testing.T) {
	s := newTestServer(&stubRepo{})

	for _, limit := range []float64{0, -1, 51} {
		_, err := s.handleSearchDocs(context.Background(), callRequest("search_docs", map[string]interface{}{
			"query": "x",
			"limit": limit,
		}))
		require.Error(t, err, "limit %v", limit)
		assert.Equal(t, ErrorCodeInvalidParams, mcpCode(t, err))
	}

	_, err := s.handleSearchDocs(context.Background(), callRequest("search_docs", map[string]interface{}{
		"query":  "x",
		"offset": float64(-3),
	}))
	require.Error(t, err)
	assert.Equal(t, ErrorCodeInvalidParams, mcpCode(t, err))
}

func TestHandleGetStarted(t *testing.T) {
	s := newTestServer(&stubRepo{})

	result, err := s.handleGetStarted(context.Background(), callRequest("get_started", nil))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.NotEmpty(t, payload["title"])
	assert.NotEmpty(t, payload["overview"])
}

func TestHandleListCategories(t *testing.T) {
	s := newTestServer(&stubRepo{categories: []string{"backend", "frontend"}})

	result, err := s.handleListCategories(context.Background(), callRequest("list_categories", nil))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, float64(2), payload["count"])
	assert.Equal(t, []interface{}{"backend", "frontend"}, payload["categories"])
}

func TestHandleReadDoc(t *testing.T) {
	s := newTestServer(&stubRepo{contents: map[string]string{
		"guides/setup.md": "# Setup\n\nInstall things.",
	}})

	result, err := s.handleReadDoc(context.Background(), callRequest("read_doc", map[string]interface{}{
		"path": "guides/setup.md",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, "guides/setup.md", payload["path"])
	assert.Contains(t, payload["content"], "Install things")
}

func TestHandleReadDocErrors(t *testing.T) {
	s := newTestServer(&stubRepo{})

	_, err := s.handleReadDoc(context.Background(), callRequest("read_doc", map[string]interface{}{}))
	require.Error(t, err)
	assert.Equal(t, ErrorCodeInvalidParams, mcpCode(t, err))

	_, err = s.handleReadDoc(context.Background(), callRequest("read_doc", map[string]interface{}{
		"path": "missing.md",
	}))
	require.Error(t, err)
	assert.Equal(t, ErrorCodeDocNotFound, mcpCode(t, err))
}

func TestHandleRescanDocs(t *testing.T) {
	s := newTestServer(&stubRepo{})

	result, err := s.handleRescanDocs(context.Background(), callRequest("rescan_docs", nil))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, true, payload["rescanned"])
}

func TestHandleRescanDocsFailure(t *testing.T) {
	s := newTestServer(&stubRepo{rescanErr: errors.New("walk failed")})

	_, err := s.handleRescanDocs(context.Background(), callRequest("rescan_docs", nil))
	require.Error(t, err)
	assert.Equal(t, ErrorCodeRescanFailed, mcpCode(t, err))
}

func TestGetStringSlice(t *testing.T) {
	args := map[string]interface{}{
		"tags":  []interface{}{"auth", 7, "testing"},
		"empty": []interface{}{},
		"wrong": "not-a-list",
	}

	assert.Equal(t, []string{"auth", "testing"}, getStringSlice(args, "tags"))
	assert.Nil(t, getStringSlice(args, "empty"))
	assert.Nil(t, getStringSlice(args, "wrong"))
	assert.Nil(t, getStringSlice(args, "absent"))
}
