package types

// Source identifies which corpus a document came from.
type Source string

const (
	// SourceLocal marks documents indexed from the local docs tree.
	SourceLocal Source = "local"
	// SourceRemote marks documents fetched from the GitHub repository.
	SourceRemote Source = "remote"
)

// Document represents one indexed documentation file with derived metadata.
//
// Path is the source-relative identifier and is unique within a source.
// Tags and Keywords are recomputed wholesale on every scan, never patched
// incrementally.
type Document struct {
	// Identification
	Path string // Relative to the docs root, forward slashes

	// Derived metadata
	Name        string   // Display title
	Description string   // Short summary, capped at 200 chars
	Category    string   // Top-level directory segment, "general" at root
	Tags        []string // Lowercase; preamble tags plus cleaned path segments
	Keywords    []string // Lowercase tokens from name, description, and headings

	// Content holds the full document text when the source keeps it in
	// memory (local). Remote documents load content lazily and leave this
	// empty in the index.
	Content string

	// RevisionID is the content-addressable blob hash for remote documents.
	// Used only for cache invalidation, never for ranking.
	RevisionID string
}

// HasTag reports whether the document carries the exact lowercase tag.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasKeyword reports whether the document carries the exact lowercase keyword.
func (d *Document) HasKeyword(kw string) bool {
	for _, k := range d.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}
