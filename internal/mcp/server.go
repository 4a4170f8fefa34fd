package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/quizsearch-mcp/internal/corpus"
	"github.com/dshills/quizsearch-mcp/internal/importer"
	"github.com/dshills/quizsearch-mcp/internal/searcher"
	"github.com/dshills/quizsearch-mcp/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "quizsearch-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default location for the database
	DefaultDBPath = "~/.quizsearch"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	config   Config
	storage  storage.Storage
	importer *importer.Importer
	holder   *corpus.Holder
	source   corpus.Source
	searcher *searcher.Searcher
}

// DatabaseFile resolves dbPath, creating the directory if needed, and
// returns the path of the SQLite file inside it. The default location
// expands to the user's home directory.
func DatabaseFile(dbPath string) (string, error) {
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".quizsearch")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create database directory: %w", err)
	}
	return filepath.Join(dbPath, "quizsearch.db"), nil
}

// NewServer creates a new MCP server instance and loads the initial corpus
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dbFile, err := DatabaseFile(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Load the corpus once; later loads go through reload_corpus
	source := newSource(cfg, store, dbFile)
	holder := corpus.NewHolder(corpus.Load(context.Background(), source))

	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		config:   cfg,
		storage:  store,
		importer: importer.New(store),
		holder:   holder,
		source:   source,
		searcher: searcher.NewSearcherWithCacheSize(holder, cfg.CacheSize),
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.Close() }()
	return server.ServeStdio(s.mcp)
}

// Close releases the database
func (s *Server) Close() error {
	return s.storage.Close()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(searchQuestionsTool(), s.handleSearchQuestions)
	s.mcp.AddTool(listQuestionsTool(), s.handleListQuestions)
	s.mcp.AddTool(questionStatsTool(), s.handleQuestionStats)
	s.mcp.AddTool(reloadCorpusTool(), s.handleReloadCorpus)
	s.mcp.AddTool(importQuestionsTool(), s.handleImportQuestions)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)

	return nil
}
