package types

// Phase identifies a development lifecycle phase used as a search filter.
type Phase string

const (
	PhaseInitialization Phase = "initialization"
	PhaseScaffolding    Phase = "scaffolding"
	PhaseImplementation Phase = "implementation"
	PhaseTesting        Phase = "testing"
	PhaseMaintenance    Phase = "maintenance"
)

// WorkContext identifies what part of the stack the caller is working on.
type WorkContext string

const (
	ContextAPI       WorkContext = "api"
	ContextUI        WorkContext = "ui"
	ContextFullstack WorkContext = "fullstack"
)

// Pagination defaults applied by SearchQuery.Normalize.
const (
	DefaultLimit  = 5
	DefaultOffset = 0
)

// SearchQuery contains the caller-supplied filter and ranking input.
// All fields are optional and combine independently; an entirely empty
// query matches no documents.
type SearchQuery struct {
	Text      string      // Free-form phrase
	Framework string      // Hard filter against the recognized framework set
	SliceName string      // Slice or unit name matched against document names
	Phase     Phase       // Lifecycle phase
	Feature   string      // Feature keyword
	Context   WorkContext // Working context (api/ui/fullstack)
	Category  string      // Exact category match
	Tags      []string    // Each matched as a substring of document tags

	// Pagination
	Limit  int
	Offset int
}

// Normalize applies pagination defaults in place and returns the query.
func (q SearchQuery) Normalize() SearchQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Offset < 0 {
		q.Offset = DefaultOffset
	}
	return q
}

// IsEmpty reports whether no filter field is set at all.
func (q SearchQuery) IsEmpty() bool {
	return q.Text == "" && q.Framework == "" && q.SliceName == "" &&
		q.Phase == "" && q.Feature == "" && q.Context == "" &&
		q.Category == "" && len(q.Tags) == 0
}
