package remote

import (
	"context"

	"github.com/cleanslice/docs-mcp/internal/source"
	"github.com/cleanslice/docs-mcp/pkg/types"
)

// Repository answers structured queries over the remote loader's corpus.
type Repository struct {
	loader *Loader
}

// NewRepository wraps a loader in the source.Repository capability.
func NewRepository(l *Loader) *Repository {
	return &Repository{loader: l}
}

// Search scores and snippets the remote documents. Bodies come from the TTL
// cache when warm; a document whose body cannot be fetched keeps its hit but
// loses its snippets.
func (r *Repository) Search(ctx context.Context, q types.SearchQuery) ([]types.ScoredResult, error) {
	docs, err := r.loader.Documents(ctx)
	if err != nil {
		return nil, err
	}

	return source.Rank(q, docs, types.SourceRemote, func(d *types.Document) (string, bool) {
		text, err := r.loader.Content(ctx, d.Path)
		return text, err == nil
	})
}

// Categories delegates to the loader.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	return r.loader.Categories(ctx)
}

// Read returns the full content of the document at path.
func (r *Repository) Read(ctx context.Context, path string) (string, error) {
	return r.loader.Read(ctx, path)
}

// Rescan clears all caches and rebuilds the listing.
func (r *Repository) Rescan(ctx context.Context) error {
	return r.loader.Rescan(ctx)
}
