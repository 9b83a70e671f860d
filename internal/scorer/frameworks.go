package scorer

import (
	"fmt"
	"strings"

	"github.com/cleanslice/docs-mcp/pkg/types"
)

// FrameworkKind splits the recognized frameworks into stack halves for
// working-context affinity scoring.
type FrameworkKind string

const (
	KindBackend  FrameworkKind = "backend"
	KindFrontend FrameworkKind = "frontend"
)

// frameworks is the fixed set of recognized framework identifiers. A document
// tagged with one of these belongs to that framework; untagged documents are
// framework-agnostic.
var frameworks = map[string]FrameworkKind{
	"nestjs":  KindBackend,
	"nuxt":    KindFrontend,
	"angular": KindFrontend,
}

// Frameworks returns the recognized framework identifiers.
func Frameworks() []string {
	out := make([]string, 0, len(frameworks))
	for name := range frameworks {
		out = append(out, name)
	}
	return out
}

// ValidateFramework returns ErrUnknownFramework for an identifier outside
// the recognized set. An empty identifier is valid (no filter).
func ValidateFramework(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := frameworks[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownFramework, name)
	}
	return nil
}

// docFrameworks returns the recognized frameworks present in the document's
// tags. Attribution goes by tags: keywords may mention a framework in prose
// without the document belonging to it.
func docFrameworks(d *types.Document) []string {
	var out []string
	for name := range frameworks {
		if d.HasTag(name) {
			out = append(out, name)
		}
	}
	return out
}

// hasFrameworkOfKind reports whether the document is tagged with any
// recognized framework of the given stack half.
func hasFrameworkOfKind(d *types.Document, kind FrameworkKind) bool {
	for name, k := range frameworks {
		if k == kind && d.HasTag(name) {
			return true
		}
	}
	return false
}
