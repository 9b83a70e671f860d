// Package types provides shared type definitions for the docs MCP server.
//
// This package defines the domain types used across the indexing and search
// pipeline: documents, queries, scored results, and the sentinel errors
// sources and the gateway agree on.
//
// # Core Types
//
// Document represents one indexed documentation file with metadata derived
// from its preamble and body:
//
//	doc := &types.Document{
//	    Path:     "00-quickstart/rules.md",
//	    Name:     "CleanSlice Architecture Rules",
//	    Category: "quickstart",
//	    Tags:     []string{"quickstart", "rules"},
//	}
//
// SearchQuery carries the caller-supplied filters. Every field is optional
// and contributes to the score independently; only the framework filter is
// a hard exclusion:
//
//	q := types.SearchQuery{
//	    Text:      "dependency injection",
//	    Framework: "nestjs",
//	    Category:  "patterns",
//	}
//
// ScoredResult pairs a document with its integer relevance score, context
// snippets, and the source (local or remote) that produced it. SearchPage
// is one pagination window over the merged, sorted result set.
//
// # Error Conventions
//
// Absence is reported through ErrNotFound, never through panics or empty
// sentinel values. ErrUnknownFramework is the single caller-input error the
// pipeline surfaces; everything else degrades to weaker derived metadata.
package types
