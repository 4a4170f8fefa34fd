package storage

import (
	"context"
	"time"

	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// Storage defines the interface for persisting the question corpus
type Storage interface {
	// Question operations
	ReplaceQuestions(ctx context.Context, records []types.QuestionRecord) error
	AppendQuestions(ctx context.Context, records []types.QuestionRecord) error
	ListQuestions(ctx context.Context) ([]types.QuestionRecord, error)
	CountQuestions(ctx context.Context) (int, error)

	// Import bookkeeping
	ImportQuestions(ctx context.Context, records []types.QuestionRecord, run *ImportRun) error
	RecordImport(ctx context.Context, run *ImportRun) error
	LastImport(ctx context.Context) (*ImportRun, error)

	// Status operations
	GetStatus(ctx context.Context) (*Status, error)

	// Database operations
	Close() error
}

// ImportRun records one bulk load of questions into the database
type ImportRun struct {
	ID             int64
	Source         string // Comma-separated source files
	Replaced       bool   // Whether the run replaced the existing corpus
	QuestionsCount int
	ImportedAt     time.Time
}

// Status contains statistics about the stored corpus
type Status struct {
	QuestionsCount int
	ImportsCount   int
	LastImport     *ImportRun // Nil if nothing was imported yet
	DatabaseSizeMB float64
	SchemaVersion  string
}
