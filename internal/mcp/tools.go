package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/quizsearch-mcp/internal/corpus"
	"github.com/dshills/quizsearch-mcp/internal/importer"
	"github.com/dshills/quizsearch-mcp/internal/storage"
	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodeImportInProgress = -32002 // Another import is already running
	ErrorCodeEmptyQuery       = -32004 // Query parameter is empty
	ErrorCodeReloadInProgress = -32005 // Another reload is already running
	ErrorCodeNothingToImport  = -32006 // None of the given files could be read
)

// handleSearchQuestions handles the search_questions tool invocation
func (s *Server) handleSearchQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	// The engine answers a blank query with an empty list; reporting it
	// as an error is this layer's job.
	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	results := s.searcher.Search(query)

	response := map[string]interface{}{
		"results":  results,
		"count":    len(results),
		"fallback": len(results) > 0 && results[0].IsFallback,
		"status":   "success",
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListQuestions handles the list_questions tool invocation
func (s *Server) handleListQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	category := getStringDefault(args, "category", "")
	difficulty := getStringDefault(args, "difficulty", "")

	questions := make([]types.FormattedQuestion, 0)
	for _, q := range s.searcher.FormatAll() {
		if category != "" && q.Category != category {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		questions = append(questions, q)
	}

	response := map[string]interface{}{
		"questions": questions,
		"count":     len(questions),
		"status":    "success",
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleQuestionStats handles the question_stats tool invocation
func (s *Server) handleQuestionStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := s.searcher.Stats()

	response := map[string]interface{}{
		"total_count":    stats.TotalCount,
		"question_types": stats.QuestionTypes,
		"categories":     stats.Categories,
		"difficulties":   stats.Difficulties,
		"status":         "success",
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleReloadCorpus handles the reload_corpus tool invocation
func (s *Server) handleReloadCorpus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := s.reload(ctx)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatJSON(corpusSummary(c, true))), nil
}

// reload swaps in a fresh corpus from the configured source
func (s *Server) reload(ctx context.Context) (*corpus.Corpus, error) {
	c, err := s.holder.Reload(ctx, s.source)
	if errors.Is(err, corpus.ErrReloadInProgress) {
		return nil, newMCPError(ErrorCodeReloadInProgress, "corpus reload already in progress", nil)
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "reload failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return c, nil
}

// handleImportQuestions handles the import_questions tool invocation
func (s *Server) handleImportQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	paths, ok := getStringSlice(args, "paths")
	if !ok || len(paths) == 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "paths parameter is required", map[string]interface{}{
			"param":  "paths",
			"reason": "missing, empty, or not a list of strings",
		})
	}

	for _, p := range paths {
		if err := validatePath(p); err != nil {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
				"param":  "paths",
				"path":   p,
				"reason": err.Error(),
			})
		}
	}

	config := &importer.Config{
		Replace: getBoolDefault(args, "replace", false),
	}

	stats, err := s.importer.ImportFiles(ctx, paths, config)
	switch {
	case errors.Is(err, importer.ErrImportInProgress):
		return nil, newMCPError(ErrorCodeImportInProgress, "import already in progress", nil)
	case errors.Is(err, importer.ErrNothingReadable):
		return nil, newMCPError(ErrorCodeNothingToImport, "none of the files could be read", map[string]interface{}{
			"errors": stats.ErrorMessages,
		})
	case err != nil:
		return nil, newMCPError(ErrorCodeInternalError, "import failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"imported":           true,
		"files_read":         stats.FilesRead,
		"files_failed":       stats.FilesFailed,
		"questions_imported": stats.QuestionsImported,
		"replaced":           stats.Replaced,
		"duration_ms":        stats.Duration.Milliseconds(),
	}
	if len(stats.ErrorMessages) > 0 {
		response["errors"] = stats.ErrorMessages
	}

	// A database-backed corpus picks up the import right away.
	if s.config.CorpusSource == SourceSQLite {
		c, err := s.reload(ctx)
		if err != nil {
			return nil, err
		}
		response["corpus"] = corpusSummary(c, true)
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.storage.GetStatus(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	db := map[string]interface{}{
		"questions_count": status.QuestionsCount,
		"imports_count":   status.ImportsCount,
		"schema_version":  status.SchemaVersion,
		"size_mb":         fmt.Sprintf("%.2f", status.DatabaseSizeMB),
		"build_mode":      storage.BuildMode,
		"driver":          storage.DriverName,
	}
	if status.LastImport != nil {
		db["last_import"] = map[string]interface{}{
			"source":          status.LastImport.Source,
			"replaced":        status.LastImport.Replaced,
			"questions_count": status.LastImport.QuestionsCount,
			"imported_at":     status.LastImport.ImportedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	response := map[string]interface{}{
		"corpus_source": s.config.CorpusSource,
		"corpus":        corpusSummary(s.holder.Current(), false),
		"database":      db,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// corpusSummary describes a snapshot for tool responses
func corpusSummary(c *corpus.Corpus, reloaded bool) map[string]interface{} {
	summary := map[string]interface{}{
		"count":       c.Len(),
		"generation":  c.Generation(),
		"source":      c.Source(),
		"placeholder": c.Source() == corpus.PlaceholderSource,
		"loaded_at":   c.LoadedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
	if reloaded {
		summary["reloaded"] = true
	}
	return summary
}

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

// validatePath checks that a question file exists and is readable
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}

	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	if info.IsDir() {
		return ErrIsDirectory
	}

	f, err := os.Open(path)
	if err != nil {
		return ErrPathNotReadable
	}
	_ = f.Close()

	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
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

// getStringSlice extracts a list of strings; ok is false if any element
// is not a string
func getStringSlice(args map[string]interface{}, key string) ([]string, bool) {
	switch val := args[key].(type) {
	case []string:
		return val, true
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrIsDirectory     = errors.New("path is a directory, not a question file")
	ErrUnknownSource   = errors.New("unknown corpus source")
)
