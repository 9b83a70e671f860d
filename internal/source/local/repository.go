package local

import (
	"context"

	"github.com/cleanslice/docs-mcp/internal/source"
	"github.com/cleanslice/docs-mcp/pkg/types"
)

// Repository answers structured queries over the local loader's index.
type Repository struct {
	loader *Loader
}

// NewRepository wraps a loader in the source.Repository capability.
func NewRepository(l *Loader) *Repository {
	return &Repository{loader: l}
}

// Search scores and snippets the indexed documents. Local documents keep
// their content in memory, so snippet extraction never does I/O.
func (r *Repository) Search(_ context.Context, q types.SearchQuery) ([]types.ScoredResult, error) {
	return source.Rank(q, r.loader.Documents(), types.SourceLocal, func(d *types.Document) (string, bool) {
		return d.Content, true
	})
}

// Categories delegates to the loader.
func (r *Repository) Categories(_ context.Context) ([]string, error) {
	return r.loader.Categories(), nil
}

// Read returns the full content of the document at path.
func (r *Repository) Read(_ context.Context, path string) (string, error) {
	return r.loader.Read(path)
}

// Rescan rebuilds the index synchronously.
func (r *Repository) Rescan(_ context.Context) error {
	return r.loader.Rescan()
}
