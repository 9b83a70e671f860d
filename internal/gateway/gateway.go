// Package gateway fans queries out to the local and remote document sources,
// merges and deduplicates their results, and paginates the union. The remote
// source is best effort: any failure there degrades to an empty contribution
// and is never surfaced to the caller.
package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/cleanslice/docs-mcp/internal/cache"
	"github.com/cleanslice/docs-mcp/internal/scorer"
	"github.com/cleanslice/docs-mcp/internal/source"
	"github.com/cleanslice/docs-mcp/pkg/types"
)

const (
	// queryCacheSize bounds the merged-result cache.
	queryCacheSize = 256
	// DefaultQueryCacheTTL is how long a merged result set stays fresh.
	DefaultQueryCacheTTL = 5 * time.Minute
)

// Gateway aggregates the two source repositories behind one search surface.
type Gateway struct {
	local     source.Repository
	remote    source.Repository // nil when the remote source is disabled
	merged    *cache.Store[[]types.ScoredResult]
	subtopics []Subtopic
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithSubtopics overrides the getting-started synthesis sub-topics.
func WithSubtopics(subtopics []Subtopic) Option {
	return func(g *Gateway) { g.subtopics = subtopics }
}

// New creates a Gateway over the given repositories. remote may be nil.
func New(local source.Repository, remote source.Repository, opts ...Option) *Gateway {
	merged, err := cache.NewStore[[]types.ScoredResult](queryCacheSize, DefaultQueryCacheTTL)
	if err != nil {
		// Only reachable with an invalid constant size.
		panic(fmt.Sprintf("create query cache: %v", err))
	}

	g := &Gateway{
		local:     local,
		remote:    remote,
		merged:    merged,
		subtopics: DefaultSubtopics,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Search answers a structured query with one page of the merged, deduped,
// score-sorted union of both sources.
func (g *Gateway) Search(ctx context.Context, q types.SearchQuery) (types.SearchPage, error) {
	q = q.Normalize()
	if err := scorer.ValidateFramework(q.Framework); err != nil {
		return types.SearchPage{}, err
	}

	merged, err := g.mergedResults(ctx, q)
	if err != nil {
		return types.SearchPage{}, err
	}

	total := len(merged)
	start := min(q.Offset, total)
	end := min(start+q.Limit, total)

	return types.SearchPage{
		Results: merged[start:end],
		Total:   total,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}, nil
}

// searchResult carries one source's answer across the fan-out channels.
type searchResult struct {
	results []types.ScoredResult
	err     error
}

// mergedResults returns the merged result set for the query's filter fields,
// serving repeated queries from the TTL cache.
func (g *Gateway) mergedResults(ctx context.Context, q types.SearchQuery) ([]types.ScoredResult, error) {
	key := queryKey(q)
	if cached, ok := g.merged.Get(key); ok {
		return cached, nil
	}

	localChan := make(chan searchResult, 1)
	remoteChan := make(chan searchResult, 1)

	go func() {
		results, err := g.local.Search(ctx, q)
		localChan <- searchResult{results: results, err: err}
	}()
	go func() {
		if g.remote == nil {
			remoteChan <- searchResult{}
			return
		}
		results, err := g.remote.Search(ctx, q)
		remoteChan <- searchResult{results: results, err: err}
	}()

	// Wait for both sources.
	var localRes, remoteRes searchResult
	var localDone, remoteDone bool
	for !localDone || !remoteDone {
		select {
		case localRes = <-localChan:
			localDone = true
		case remoteRes = <-remoteChan:
			remoteDone = true
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// The local source is authoritative; the remote one degrades to empty.
	if localRes.err != nil {
		return nil, localRes.err
	}
	if remoteRes.err != nil {
		log.Printf("gateway: remote search degraded to empty: %v", remoteRes.err)
		remoteRes.results = nil
	}

	merged := merge(localRes.results, remoteRes.results)
	g.merged.Set(key, merged)
	return merged, nil
}

// merge unions the two result lists, local first, keeping the first
// occurrence of each dedupe key (the lowercased filename) so the local
// source wins conflicts regardless of score, then re-sorts by score with a
// stable sort.
func merge(local, remote []types.ScoredResult) []types.ScoredResult {
	merged := make([]types.ScoredResult, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))

	for _, r := range local {
		key := dedupeKey(r.Document.Path)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, r)
	}
	for _, r := range remote {
		key := dedupeKey(r.Document.Path)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, r)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	return merged
}

// dedupeKey identifies "the same document" across sources: the lowercased
// final path segment, directories ignored.
func dedupeKey(p string) string {
	return strings.ToLower(path.Base(p))
}

// Categories returns the union of both sources' categories, deduplicated
// case-sensitively and sorted. A remote failure contributes nothing.
func (g *Gateway) Categories(ctx context.Context) ([]string, error) {
	locals, err := g.local.Categories(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, c := range locals {
		seen[c] = struct{}{}
	}

	if g.remote != nil {
		remotes, err := g.remote.Categories(ctx)
		if err != nil {
			log.Printf("gateway: remote categories degraded to empty: %v", err)
		} else {
			for _, c := range remotes {
				seen[c] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// Read returns the full content of the document at path, local source first.
// Absence in both sources is reported as ErrNotFound.
func (g *Gateway) Read(ctx context.Context, docPath string) (string, error) {
	content, err := g.local.Read(ctx, docPath)
	if err == nil {
		return content, nil
	}

	if g.remote != nil {
		content, remoteErr := g.remote.Read(ctx, docPath)
		if remoteErr == nil {
			return content, nil
		}
		if !errors.Is(remoteErr, types.ErrNotFound) {
			log.Printf("gateway: remote read failed for %s: %v", docPath, remoteErr)
		}
	}

	return "", fmt.Errorf("%w: %s", types.ErrNotFound, docPath)
}

// Rescan rebuilds both indexes and drops the merged-result cache. A remote
// rescan failure is logged, not propagated; the remote loader retries on its
// next use anyway.
func (g *Gateway) Rescan(ctx context.Context) error {
	if err := g.local.Rescan(ctx); err != nil {
		return err
	}

	if g.remote != nil {
		if err := g.remote.Rescan(ctx); err != nil {
			log.Printf("gateway: remote rescan failed: %v", err)
		}
	}

	g.merged.Purge()
	return nil
}

// queryKey builds a deterministic cache key from the query's filter fields.
// Pagination is excluded: every page cuts the same merged set.
func queryKey(q types.SearchQuery) string {
	var b strings.Builder
	b.WriteString(q.Text)
	b.WriteString("|")
	b.WriteString(q.Framework)
	b.WriteString("|")
	b.WriteString(q.SliceName)
	b.WriteString("|")
	b.WriteString(string(q.Phase))
	b.WriteString("|")
	b.WriteString(q.Feature)
	b.WriteString("|")
	b.WriteString(string(q.Context))
	b.WriteString("|")
	b.WriteString(q.Category)
	b.WriteString("|")
	b.WriteString(strings.Join(q.Tags, ","))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
