// Package mcp exposes the documentation gateway over the Model Context
// Protocol. It registers five tools on a stdio MCP server:
//
//   - search_docs: filtered, scored search across the local and remote corpora
//   - get_started: synthesized onboarding overview of the documentation set
//   - list_categories: the merged category list of both corpora
//   - read_doc: full content of a single document by path
//   - rescan_docs: rebuild of both indexes, discarding cached results
//
// Tool responses are JSON-formatted text content. Failures are reported as
// MCP protocol errors with stable numeric codes so clients can distinguish
// bad arguments from transient backend faults.
//
// The process's stdout belongs to the MCP transport; anything the server
// logs goes to stderr.
package mcp
