package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchQuestionsTool returns the tool definition for search_questions
func searchQuestionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_questions",
		Description: "Search the question bank. Returns up to 5 ranked matches, or the single closest question flagged as a fallback when nothing matches",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text query, matched case-insensitively against question text and options",
				},
			},
			Required: []string{"query"},
		},
	}
}

// listQuestionsTool returns the tool definition for list_questions
func listQuestionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_questions",
		Description: "List every question in the bank in display form, in corpus order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Only return questions in this derived category",
					"enum":        []string{"conditionals", "loops", "functions-and-classes", "data-structures", "exception-handling", "basic-syntax"},
				},
				"difficulty": map[string]interface{}{
					"type":        "string",
					"description": "Only return questions of this derived difficulty",
					"enum":        []string{"easy", "medium", "hard"},
				},
			},
		},
	}
}

// questionStatsTool returns the tool definition for question_stats
func questionStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "question_stats",
		Description: "Count questions by type, derived category and derived difficulty",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// reloadCorpusTool returns the tool definition for reload_corpus
func reloadCorpusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "reload_corpus",
		Description: "Reload the question bank from its configured source and swap it in atomically",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// importQuestionsTool returns the tool definition for import_questions
func importQuestionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "import_questions",
		Description: "Import JSON question files into the question database",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"paths": map[string]interface{}{
					"type":        "array",
					"description": "Absolute paths to JSON question files, imported in this order",
					"items": map[string]interface{}{
						"type": "string",
					},
					"minItems": 1,
				},
				"replace": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, replace the stored questions instead of appending",
					"default":     false,
				},
			},
			Required: []string{"paths"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report the loaded corpus and question database statistics",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
