package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/quizsearch-mcp/internal/searcher"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"QUIZSEARCH_DB_PATH",
			"QUIZSEARCH_QUESTIONS_PATH",
			"QUIZSEARCH_LEGACY_QUESTIONS_PATH",
			"QUIZSEARCH_CORPUS_SOURCE",
			"QUIZSEARCH_CACHE_SIZE",
		} {
			t.Setenv(key, "")
		}

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, "database.json", cfg.QuestionsPath)
		assert.Equal(t, "data/questions.json", cfg.LegacyQuestionsPath)
		assert.Equal(t, SourceFile, cfg.CorpusSource)
		assert.Equal(t, searcher.DefaultCacheSize, cfg.CacheSize)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("QUIZSEARCH_DB_PATH", "/tmp/qs")
		t.Setenv("QUIZSEARCH_QUESTIONS_PATH", "/data/db.json")
		t.Setenv("QUIZSEARCH_LEGACY_QUESTIONS_PATH", "/data/old.json")
		t.Setenv("QUIZSEARCH_CORPUS_SOURCE", "SQLite")
		t.Setenv("QUIZSEARCH_CACHE_SIZE", "0")

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Config{
			DBPath:              "/tmp/qs",
			QuestionsPath:       "/data/db.json",
			LegacyQuestionsPath: "/data/old.json",
			CorpusSource:        SourceSQLite,
			CacheSize:           0,
		}, cfg)
	})

	t.Run("bad cache size", func(t *testing.T) {
		t.Setenv("QUIZSEARCH_CACHE_SIZE", "lots")
		_, err := ConfigFromEnv()
		assert.Error(t, err)
	})

	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("QUIZSEARCH_CACHE_SIZE", "")
		t.Setenv("QUIZSEARCH_CORPUS_SOURCE", "postgres")
		_, err := ConfigFromEnv()
		assert.ErrorIs(t, err, ErrUnknownSource)
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.CacheSize = -1
	assert.Error(t, cfg.Validate())
}
