package importer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/quizsearch-mcp/internal/corpus"
	"github.com/dshills/quizsearch-mcp/internal/storage"
	"github.com/dshills/quizsearch-mcp/pkg/types"
)

var (
	// ErrImportInProgress is returned when another import is running
	ErrImportInProgress = errors.New("import already in progress")
	// ErrNoPaths is returned when ImportFiles is called without files
	ErrNoPaths = errors.New("no question files given")
	// ErrNothingReadable is returned when every file failed to decode
	ErrNothingReadable = errors.New("none of the question files could be read")
)

// Importer coordinates the import pipeline: decode files -> store
type Importer struct {
	storage storage.Storage
	mu      sync.Mutex // held for the duration of an import
}

// Config contains configuration for an import
type Config struct {
	Workers int  // Number of concurrent decoders (default: runtime.NumCPU())
	Replace bool // Replace the stored corpus instead of appending to it
}

// Statistics contains statistics about the import operation
type Statistics struct {
	FilesRead         int
	FilesFailed       int
	QuestionsImported int
	Replaced          bool
	Duration          time.Duration
	ErrorMessages     []string
}

// New creates a new Importer instance
func New(storage storage.Storage) *Importer {
	return &Importer{storage: storage}
}

// ImportFiles decodes paths concurrently and writes their questions to
// storage in one call. Questions keep the order of paths, then the order
// within each file. Files that cannot be read are skipped and reported in
// the statistics.
func (imp *Importer) ImportFiles(ctx context.Context, paths []string, config *Config) (*Statistics, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	if !imp.mu.TryLock() {
		return nil, ErrImportInProgress
	}
	defer imp.mu.Unlock()

	if config == nil {
		config = &Config{}
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	startTime := time.Now()
	stats := &Statistics{
		Replaced:      config.Replace,
		ErrorMessages: make([]string, 0),
	}

	decoded, err := decodeFiles(ctx, paths, workers, stats)
	if err != nil {
		return nil, err
	}
	if stats.FilesRead == 0 {
		return stats, fmt.Errorf("%w: %s", ErrNothingReadable, strings.Join(stats.ErrorMessages, "; "))
	}

	// Questions and their import run commit together, so stored rows
	// always have a run on record.
	run := &storage.ImportRun{
		Source:         strings.Join(paths, ","),
		Replaced:       config.Replace,
		QuestionsCount: len(decoded),
	}
	if err := imp.storage.ImportQuestions(ctx, decoded, run); err != nil {
		return nil, fmt.Errorf("failed to store questions: %w", err)
	}
	stats.QuestionsImported = len(decoded)

	stats.Duration = time.Since(startTime)
	log.Printf("importer: imported %d questions from %d files (%d failed) in %s",
		stats.QuestionsImported, stats.FilesRead, stats.FilesFailed, stats.Duration)
	return stats, nil
}

// decodeFiles reads every path with at most workers files in flight and
// concatenates the results in path order.
func decodeFiles(ctx context.Context, paths []string, workers int, stats *Statistics) ([]types.QuestionRecord, error) {
	results := make([][]types.QuestionRecord, len(paths))
	failures := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns slot i, so no locking is needed.
			results[i], failures[i] = corpus.ReadFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []types.QuestionRecord
	for i, path := range paths {
		if failures[i] != nil {
			stats.FilesFailed++
			stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", path, failures[i]))
			continue
		}
		stats.FilesRead++
		records = append(records, results[i]...)
	}

	if records == nil {
		records = []types.QuestionRecord{}
	}
	return records, nil
}
