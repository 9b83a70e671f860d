// Package extractor derives searchable metadata from raw documentation text.
//
// Extraction is a pure function over the document's preamble and body: it
// performs no I/O and never fails. Parse ambiguity always degrades to the
// weakest derivable value (empty description, the default category, a
// title-cased filename) rather than an error.
//
// # Preamble Format
//
// Documents may open with a "---" delimited key/value block:
//
//	---
//	title: CleanSlice Architecture Rules
//	description: The non-negotiable rules of a slice.
//	tags: [quickstart, rules]
//	---
//
// Only flat "key: value" and "key: [a, b, c]" lines are understood.
// Malformed lines are skipped, not fatal. There is deliberately no YAML
// parser here: full YAML makes malformed input fatal, which extraction
// must never be.
//
// # Derivation Rules
//
// Name: preamble title, else the first level-1 heading, else the filename
// with separators replaced by spaces, numeric prefix stripped, and each
// word capitalized.
//
// Description: preamble description, else the first non-heading paragraph,
// capped at 200 characters with a trailing ellipsis.
//
// Category: the top-level directory segment with any numeric ordering
// prefix stripped ("00-quickstart" yields "quickstart"); "general" for
// root-level documents.
//
// Tags: preamble tags unioned with cleaned path segments. Keywords: a
// lowercase token set drawn from the name, description, and heading lines.
package extractor
