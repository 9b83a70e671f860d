package types

// ScoredResult represents a single search hit with relevance information.
// Results are only emitted for scores greater than zero.
type ScoredResult struct {
	Document *Document
	Score    int      // Additive relevance score, always > 0 in emitted results
	Snippets []string // Context windows around query matches
	Source   Source   // Which corpus produced the hit
}

// SearchPage is one page of merged, sorted search results.
type SearchPage struct {
	Results []ScoredResult
	Total   int // Size of the merged result set before pagination
	Limit   int
	Offset  int
}

// GettingStarted is the synthesized bootstrap answer for new users.
type GettingStarted struct {
	Title    string
	Overview string
}

// Validate checks if the scored result is well formed.
func (r *ScoredResult) Validate() error {
	if r.Document == nil {
		return ErrMissingDocument
	}
	if r.Score <= 0 {
		return ErrInvalidScore
	}
	if r.Source != SourceLocal && r.Source != SourceRemote {
		return ErrInvalidSource
	}
	return nil
}
