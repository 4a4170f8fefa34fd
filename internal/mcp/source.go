package mcp

import (
	"context"
	"errors"

	"github.com/dshills/quizsearch-mcp/internal/corpus"
	"github.com/dshills/quizsearch-mcp/internal/storage"
	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// sqliteSource loads the corpus from the question database. A database
// that has never been imported into counts as a missing source, so the
// placeholder corpus is served; an import of zero questions is an
// explicitly empty corpus.
type sqliteSource struct {
	store storage.Storage
	path  string
}

func (s *sqliteSource) Load(ctx context.Context) ([]types.QuestionRecord, error) {
	if _, err := s.store.LastImport(ctx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, corpus.ErrSourceNotFound
		}
		return nil, err
	}
	return s.store.ListQuestions(ctx)
}

func (s *sqliteSource) String() string {
	return "sqlite:" + s.path
}

// newSource picks the corpus source named by cfg
func newSource(cfg Config, store storage.Storage, dbFile string) corpus.Source {
	if cfg.CorpusSource == SourceSQLite {
		return &sqliteSource{store: store, path: dbFile}
	}

	paths := []string{cfg.QuestionsPath}
	if cfg.LegacyQuestionsPath != "" {
		paths = append(paths, cfg.LegacyQuestionsPath)
	}
	return corpus.NewFileSource(paths...)
}
