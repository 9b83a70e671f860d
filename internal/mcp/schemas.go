package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchDocsTool returns the tool definition for search_docs
func searchDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_docs",
		Description: "Search project documentation with free text and structured filters",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-form search phrase matched against names, descriptions, keywords, and content",
				},
				"framework": map[string]interface{}{
					"type":        "string",
					"description": "Restrict results to documents for one framework",
					"enum":        []string{"nestjs", "nuxt", "angular"},
				},
				"slice": map[string]interface{}{
					"type":        "string",
					"description": "Slice or unit name matched against document names",
				},
				"phase": map[string]interface{}{
					"type":        "string",
					"description": "Development lifecycle phase",
					"enum":        []string{"initialization", "scaffolding", "implementation", "testing", "maintenance"},
				},
				"feature": map[string]interface{}{
					"type":        "string",
					"description": "Feature keyword (e.g. auth, validation, caching)",
				},
				"context": map[string]interface{}{
					"type":        "string",
					"description": "What part of the stack the caller is working on",
					"enum":        []string{"api", "ui", "fullstack"},
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Exact category name, as returned by list_categories",
				},
				"tags": map[string]interface{}{
					"type":        "array",
					"description": "Tags matched against document tags",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-50)",
					"default":     5,
					"minimum":     1,
					"maximum":     50,
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Number of results to skip for pagination",
					"default":     0,
					"minimum":     0,
				},
			},
		},
	}
}

// getStartedTool returns the tool definition for get_started
func getStartedTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_started",
		Description: "Get an onboarding overview of the documentation set for new project work",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// listCategoriesTool returns the tool definition for list_categories
func listCategoriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_categories",
		Description: "List all documentation categories across local and remote sources",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// readDocTool returns the tool definition for read_doc
func readDocTool() mcp.Tool {
	return mcp.Tool{
		Name:        "read_doc",
		Description: "Read the full content of a single document by its path",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Document path as returned by search_docs (relative to the docs root)",
				},
			},
			Required: []string{"path"},
		},
	}
}

// rescanDocsTool returns the tool definition for rescan_docs
func rescanDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "rescan_docs",
		Description: "Rebuild the documentation indexes, picking up added, changed, and removed files",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
