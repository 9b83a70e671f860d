// Package source defines the capability both document sources implement and
// the ranking compose they share. The gateway depends only on the Repository
// interface, so local and remote corpora are interchangeable and mockable.
package source

import (
	"context"

	"github.com/cleanslice/docs-mcp/pkg/types"
)

// Repository is one origin of documents (local filesystem or remote
// repository) answering structured queries with scored, snippetted results.
type Repository interface {
	// Search scores every indexed document against the query and returns
	// the hits with score > 0, sorted by score descending with ties broken
	// by original scan order.
	Search(ctx context.Context, q types.SearchQuery) ([]types.ScoredResult, error)

	// Categories returns the unique document categories, sorted.
	Categories(ctx context.Context) ([]string, error)

	// Read returns the full content of the document at path, or
	// types.ErrNotFound.
	Read(ctx context.Context, path string) (string, error)

	// Rescan rebuilds the index from scratch. Concurrent queries never
	// observe a half-rebuilt index.
	Rescan(ctx context.Context) error
}
