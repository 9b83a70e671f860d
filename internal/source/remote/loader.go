// Package remote indexes the documentation published in the canonical GitHub
// repository. The file tree and individual file bodies are fetched over the
// GitHub API and held in TTL caches; initialization runs in the background
// and failures degrade the source to empty instead of crashing the process.
package remote

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/cleanslice/docs-mcp/internal/cache"
	"github.com/cleanslice/docs-mcp/internal/extractor"
	"github.com/cleanslice/docs-mcp/pkg/types"
)

const (
	// DefaultTimeout is the HTTP request timeout for GitHub calls.
	DefaultTimeout = 30 * time.Second

	// DefaultTTL is how long the tree listing and file bodies stay fresh.
	DefaultTTL = time.Hour

	// DefaultRootDir is the repository subdirectory holding the docs.
	DefaultRootDir = "docs"

	// initTimeout bounds the background initialization attempt.
	initTimeout = 60 * time.Second

	// contentCacheSize bounds the per-file body cache.
	contentCacheSize = 512

	// fetchWorkers bounds concurrent content fetches during metadata
	// extraction.
	fetchWorkers = 8
)

// docExtensions are the recognized document file extensions.
var docExtensions = map[string]bool{
	".md":       true,
	".mdx":      true,
	".markdown": true,
}

// Config describes the remote repository to index.
type Config struct {
	Owner   string
	Repo    string
	Branch  string        // Defaults to "main"
	RootDir string        // Defaults to DefaultRootDir
	Token   string        // Optional bearer token for elevated rate limits
	TTL     time.Duration // Defaults to DefaultTTL

	// Client overrides the GitHub client, used by tests to point at a
	// local server.
	Client *gh.Client
}

// treeEntry is one qualifying blob from the repository tree.
type treeEntry struct {
	path string // Relative to RootDir, forward slashes
	sha  string
}

// Loader fetches and caches the remote document corpus.
//
// Initialization is lazy and guarded by a singleflight group so concurrent
// first uses trigger exactly one tree fetch. A failed initialization leaves
// the loader uninitialized; the next call retries.
type Loader struct {
	cfg       Config
	gh        *gh.Client
	extractor *extractor.Extractor
	content   *cache.Store[string]
	initGroup singleflight.Group

	mu            sync.RWMutex
	entries       []treeEntry
	meta          map[string]*types.Document
	treeFetchedAt time.Time
	initialized   bool
}

// NewLoader creates a Loader and starts initialization in the background.
// Construction never fails on network errors: the loader stays uninitialized
// and retries on first use.
func NewLoader(cfg Config) (*Loader, error) {
	if cfg.Owner == "" || cfg.Repo == "" {
		return nil, fmt.Errorf("remote: owner and repo are required")
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	if cfg.RootDir == "" {
		cfg.RootDir = DefaultRootDir
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	client := cfg.Client
	if client == nil {
		httpClient := &http.Client{Timeout: DefaultTimeout}
		if cfg.Token != "" {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
			httpClient = oauth2.NewClient(context.Background(), ts)
			httpClient.Timeout = DefaultTimeout
		}
		client = gh.NewClient(httpClient)
	}

	contentStore, err := cache.NewStore[string](contentCacheSize, cfg.TTL)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		cfg:       cfg,
		gh:        client,
		extractor: extractor.New(path.Base(cfg.RootDir)),
		content:   contentStore,
		meta:      make(map[string]*types.Document),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
		defer cancel()
		if err := l.ensureInit(ctx); err != nil {
			log.Printf("remote: background init failed, will retry on next use: %v", err)
		}
	}()

	return l, nil
}

// ensureInit fetches the repository tree if the loader is uninitialized or
// the cached listing has expired. Concurrent callers share one fetch.
func (l *Loader) ensureInit(ctx context.Context) error {
	if l.fresh() {
		return nil
	}

	_, err, _ := l.initGroup.Do("init", func() (interface{}, error) {
		// Another caller may have completed initialization while this one
		// waited on the group.
		if l.fresh() {
			return nil, nil
		}
		return nil, l.refreshTree(ctx)
	})
	return err
}

// fresh reports whether the tree listing is present and within its TTL.
func (l *Loader) fresh() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.initialized && time.Since(l.treeFetchedAt) <= l.cfg.TTL
}

// refreshTree fetches the recursive tree listing, filters it to document
// blobs under the docs root, and swaps the entry list in atomically. A
// changed blob hash invalidates that path's cached body and metadata.
func (l *Loader) refreshTree(ctx context.Context) error {
	tree, _, err := l.gh.Git.GetTree(ctx, l.cfg.Owner, l.cfg.Repo, l.cfg.Branch, true)
	if err != nil {
		return fmt.Errorf("fetch tree %s/%s@%s: %w", l.cfg.Owner, l.cfg.Repo, l.cfg.Branch, err)
	}

	prefix := l.cfg.RootDir + "/"
	var entries []treeEntry
	for _, te := range tree.Entries {
		if te.GetType() != "blob" {
			continue
		}
		p := te.GetPath()
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rel := strings.TrimPrefix(p, prefix)
		if !docExtensions[strings.ToLower(path.Ext(rel))] {
			continue
		}
		entries = append(entries, treeEntry{path: rel, sha: te.GetSHA()})
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Invalidate bodies whose revision changed or disappeared.
	next := make(map[string]string, len(entries))
	for _, e := range entries {
		next[e.path] = e.sha
	}
	for _, old := range l.entries {
		if sha, ok := next[old.path]; !ok || sha != old.sha {
			l.content.Remove(old.path)
			delete(l.meta, old.path)
		}
	}

	l.entries = entries
	l.treeFetchedAt = time.Now()
	l.initialized = true
	return nil
}

// Documents returns the remote corpus in tree order, extracting metadata
// lazily on first need. Documents whose content cannot be fetched are
// skipped for this call, not treated as fatal.
func (l *Loader) Documents(ctx context.Context) ([]*types.Document, error) {
	if err := l.ensureInit(ctx); err != nil {
		return nil, err
	}

	l.mu.RLock()
	entries := l.entries
	l.mu.RUnlock()

	// Fetch missing metadata concurrently into pre-assigned slots so the
	// result keeps tree order.
	slots := make([]*types.Document, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchWorkers)

	for i, e := range entries {
		l.mu.RLock()
		known := l.meta[e.path]
		l.mu.RUnlock()
		if known != nil {
			slots[i] = known
			continue
		}

		g.Go(func() error {
			raw, err := l.Content(gctx, e.path)
			if err != nil {
				log.Printf("remote: skipping %s: %v", e.path, err)
				return nil
			}

			doc := l.extractor.Extract(e.path, raw)
			doc.RevisionID = e.sha

			l.mu.Lock()
			l.meta[e.path] = &doc
			l.mu.Unlock()
			slots[i] = &doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	docs := make([]*types.Document, 0, len(slots))
	for _, d := range slots {
		if d != nil {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

// Content returns the body of the document at the docs-relative path,
// fetching and caching it on miss. A missing file yields ErrNotFound.
func (l *Loader) Content(ctx context.Context, relPath string) (string, error) {
	if body, ok := l.content.Get(relPath); ok {
		return body, nil
	}

	fullPath := path.Join(l.cfg.RootDir, relPath)
	opts := &gh.RepositoryContentGetOptions{Ref: l.cfg.Branch}
	file, _, resp, err := l.gh.Repositories.GetContents(ctx, l.cfg.Owner, l.cfg.Repo, fullPath, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("%w: %s", types.ErrNotFound, relPath)
		}
		return "", fmt.Errorf("fetch content %s: %w", relPath, err)
	}
	if file == nil {
		return "", fmt.Errorf("%w: %s is not a file", types.ErrNotFound, relPath)
	}

	body, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode content %s: %w", relPath, err)
	}

	l.content.Set(relPath, body)
	return body, nil
}

// Categories returns the unique categories of the remote corpus, sorted.
func (l *Loader) Categories(ctx context.Context) ([]string, error) {
	docs, err := l.Documents(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, d := range docs {
		seen[d.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// Read returns the content of an indexed document. Paths outside the current
// tree listing are reported as absent rather than fetched blindly.
func (l *Loader) Read(ctx context.Context, relPath string) (string, error) {
	if err := l.ensureInit(ctx); err != nil {
		return "", err
	}

	l.mu.RLock()
	known := false
	for _, e := range l.entries {
		if e.path == relPath {
			known = true
			break
		}
	}
	l.mu.RUnlock()

	if !known {
		return "", fmt.Errorf("%w: %s", types.ErrNotFound, relPath)
	}
	return l.Content(ctx, relPath)
}

// Rescan invalidates the tree listing and every cached body, then rebuilds
// from scratch.
func (l *Loader) Rescan(ctx context.Context) error {
	l.mu.Lock()
	l.initialized = false
	l.entries = nil
	l.meta = make(map[string]*types.Document)
	l.mu.Unlock()

	l.content.Purge()
	return l.ensureInit(ctx)
}
