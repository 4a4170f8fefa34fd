package mcp

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/quizsearch-mcp/internal/searcher"
)

// Corpus source kinds
const (
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// Config holds server configuration
type Config struct {
	DBPath              string // Directory holding the SQLite database
	QuestionsPath       string // Primary question file
	LegacyQuestionsPath string // Older export, used when QuestionsPath is missing
	CorpusSource        string // SourceFile or SourceSQLite
	CacheSize           int    // Search result cache entries; 0 disables
}

// DefaultConfig returns the configuration used when no environment is set
func DefaultConfig() Config {
	return Config{
		DBPath:              DefaultDBPath,
		QuestionsPath:       "database.json",
		LegacyQuestionsPath: "data/questions.json",
		CorpusSource:        SourceFile,
		CacheSize:           searcher.DefaultCacheSize,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to DefaultConfig for anything unset:
//   - QUIZSEARCH_DB_PATH
//   - QUIZSEARCH_QUESTIONS_PATH
//   - QUIZSEARCH_LEGACY_QUESTIONS_PATH
//   - QUIZSEARCH_CORPUS_SOURCE (file, sqlite)
//   - QUIZSEARCH_CACHE_SIZE
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("QUIZSEARCH_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("QUIZSEARCH_QUESTIONS_PATH"); v != "" {
		cfg.QuestionsPath = v
	}
	if v := os.Getenv("QUIZSEARCH_LEGACY_QUESTIONS_PATH"); v != "" {
		cfg.LegacyQuestionsPath = v
	}
	if v := os.Getenv("QUIZSEARCH_CORPUS_SOURCE"); v != "" {
		cfg.CorpusSource = strings.ToLower(v)
	}
	if v := os.Getenv("QUIZSEARCH_CACHE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid QUIZSEARCH_CACHE_SIZE %q: %w", v, err)
		}
		cfg.CacheSize = size
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for unusable values
func (c Config) Validate() error {
	switch c.CorpusSource {
	case SourceFile, SourceSQLite:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownSource, c.CorpusSource, SourceFile, SourceSQLite)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must be >= 0, got %d", c.CacheSize)
	}
	return nil
}
