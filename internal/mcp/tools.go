package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cleanslice/docs-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodeUnknownFramework = -32001 // Framework filter not in the recognized set
	ErrorCodeDocNotFound      = -32002 // No document at the given path in either source
	ErrorCodeRescanFailed     = -32003 // Index rebuild failed
)

// handleSearchDocs handles the search_docs tool invocation
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	limit := getIntDefault(args, "limit", types.DefaultLimit)
	if limit < 1 || limit > 50 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 50", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	offset := getIntDefault(args, "offset", types.DefaultOffset)
	if offset < 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "offset must not be negative", map[string]interface{}{
			"param": "offset",
			"value": offset,
		})
	}

	query := types.SearchQuery{
		Text:      getStringDefault(args, "query", ""),
		Framework: getStringDefault(args, "framework", ""),
		SliceName: getStringDefault(args, "slice", ""),
		Phase:     types.Phase(getStringDefault(args, "phase", "")),
		Feature:   getStringDefault(args, "feature", ""),
		Context:   types.WorkContext(getStringDefault(args, "context", "")),
		Category:  getStringDefault(args, "category", ""),
		Tags:      getStringSlice(args, "tags"),
		Limit:     limit,
		Offset:    offset,
	}

	page, err := s.gateway.Search(ctx, query)
	if err != nil {
		if errors.Is(err, types.ErrUnknownFramework) {
			return nil, newMCPError(ErrorCodeUnknownFramework, "unknown framework", map[string]interface{}{
				"param": "framework",
				"value": query.Framework,
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	results := make([]map[string]interface{}, 0, len(page.Results))
	for _, r := range page.Results {
		results = append(results, map[string]interface{}{
			"path":        r.Document.Path,
			"name":        r.Document.Name,
			"description": r.Document.Description,
			"category":    r.Document.Category,
			"tags":        r.Document.Tags,
			"score":       r.Score,
			"source":      string(r.Source),
			"snippets":    r.Snippets,
		})
	}

	response := map[string]interface{}{
		"results": results,
		"total":   page.Total,
		"limit":   page.Limit,
		"offset":  page.Offset,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStarted handles the get_started tool invocation
func (s *Server) handleGetStarted(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	started, err := s.gateway.GetStarted(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to build getting-started overview", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"title":    started.Title,
		"overview": started.Overview,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListCategories handles the list_categories tool invocation
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := s.gateway.Categories(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list categories", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"categories": categories,
		"count":      len(categories),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleReadDoc handles the read_doc tool invocation
func (s *Server) handleReadDoc(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	docPath, ok := args["path"].(string)
	if !ok || docPath == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	content, err := s.gateway.Read(ctx, docPath)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, newMCPError(ErrorCodeDocNotFound, "document not found", map[string]interface{}{
				"path": docPath,
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "failed to read document", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"path":    docPath,
		"content": content,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleRescanDocs handles the rescan_docs tool invocation
func (s *Server) handleRescanDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	if err := s.gateway.Rescan(ctx); err != nil {
		return nil, newMCPError(ErrorCodeRescanFailed, "rescan failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"rescanned":   true,
		"duration_ms": time.Since(start).Milliseconds(),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a string array parameter, skipping non-string items
func getStringSlice(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
