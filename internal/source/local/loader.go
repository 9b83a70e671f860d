// Package local indexes the documentation tree on the local filesystem. The
// whole corpus is read into memory at startup; a rescan rebuilds into a
// fresh collection and swaps it in atomically so concurrent queries never
// observe a partial index.
package local

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cleanslice/docs-mcp/internal/extractor"
	"github.com/cleanslice/docs-mcp/pkg/types"
)

// maxDiscoveryDepth bounds how many parent directories auto-discovery walks
// up from the binary's location.
const maxDiscoveryDepth = 10

// DefaultRootName is the directory name auto-discovery looks for.
const DefaultRootName = "docs"

// docExtensions are the recognized document file extensions.
var docExtensions = map[string]bool{
	".md":       true,
	".mdx":      true,
	".markdown": true,
}

// skipDirs are dependency-manager directories never scanned.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// Loader scans a docs root into an in-memory document collection.
type Loader struct {
	root      string
	extractor *extractor.Extractor

	mu   sync.RWMutex
	docs []*types.Document
}

// NewLoader builds the index for root synchronously. An empty root triggers
// auto-discovery from the binary's location; a root that cannot be found is
// the one startup-fatal condition.
func NewLoader(root string) (*Loader, error) {
	if root == "" {
		discovered, err := Discover()
		if err != nil {
			return nil, err
		}
		root = discovered
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a readable directory", types.ErrDocsRootNotFound, root)
	}

	l := &Loader{
		root:      root,
		extractor: extractor.New(filepath.Base(root)),
	}

	docs, err := l.scan()
	if err != nil {
		return nil, err
	}
	l.docs = docs
	return l, nil
}

// Discover walks up to maxDiscoveryDepth parent directories from the running
// binary's location looking for a directory named "docs".
func Discover() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: locate binary: %v", types.ErrDocsRootNotFound, err)
	}

	dir := filepath.Dir(exe)
	for i := 0; i < maxDiscoveryDepth; i++ {
		candidate := filepath.Join(dir, DefaultRootName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: no %q directory within %d levels of %s",
		types.ErrDocsRootNotFound, DefaultRootName, maxDiscoveryDepth, filepath.Dir(exe))
}

// Root returns the resolved docs root path.
func (l *Loader) Root() string {
	return l.root
}

// Documents returns the current index snapshot in scan order. The returned
// slice is replaced wholesale on rescan, never mutated in place.
func (l *Loader) Documents() []*types.Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.docs
}

// Categories returns the unique document categories, sorted.
func (l *Loader) Categories() []string {
	seen := make(map[string]struct{})
	for _, d := range l.Documents() {
		seen[d.Category] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Read returns the content of the document at the source-relative path.
func (l *Loader) Read(path string) (string, error) {
	for _, d := range l.Documents() {
		if d.Path == path {
			return d.Content, nil
		}
	}
	return "", fmt.Errorf("%w: %s", types.ErrNotFound, path)
}

// Rescan clears and rebuilds the index synchronously. The new collection is
// swapped in atomically.
func (l *Loader) Rescan() error {
	docs, err := l.scan()
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.docs = docs
	l.mu.Unlock()
	return nil
}

// scan walks the root and builds a fresh document collection. Unreadable
// files are logged and skipped, never fatal.
func (l *Loader) scan() ([]*types.Document, error) {
	paths, err := l.discoverFiles()
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", l.root, err)
	}

	// Read and extract concurrently, keeping deterministic scan order by
	// writing into pre-assigned slots.
	slots := make([]*types.Document, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, relPath := range paths {
		g.Go(func() error {
			raw, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(relPath)))
			if err != nil {
				log.Printf("local: skipping unreadable file %s: %v", relPath, err)
				return nil
			}

			doc := l.extractor.Extract(relPath, string(raw))
			doc.Content = string(raw)
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

// discoverFiles walks the root collecting document paths in lexical walk
// order, skipping hidden and dependency directories.
func (l *Loader) discoverFiles() ([]string, error) {
	var paths []string

	err := filepath.Walk(l.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if path != l.root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		if !docExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})

	return paths, err
}
