package searcher

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/quizsearch-mcp/internal/corpus"
	"github.com/dshills/quizsearch-mcp/internal/formatter"
	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// DefaultCacheSize is the number of result lists kept by NewSearcher
const DefaultCacheSize = 1000

// unknownType is the stats bucket for records without a question type
const unknownType = "unknown"

// CorpusProvider supplies the corpus snapshot to search. *corpus.Holder
// implements it.
type CorpusProvider interface {
	Current() *corpus.Corpus
}

// cacheKey ties a cached result to one corpus snapshot, so a reload can
// never serve stale results.
type cacheKey struct {
	generation uint64
	query      [32]byte
}

// Searcher answers queries against the provider's current corpus
type Searcher struct {
	corpus CorpusProvider
	cache  *lru.Cache[cacheKey, []types.ScoredQuestion] // nil when disabled
}

// NewSearcher creates a Searcher with a DefaultCacheSize result cache
func NewSearcher(provider CorpusProvider) *Searcher {
	return NewSearcherWithCacheSize(provider, DefaultCacheSize)
}

// NewSearcherWithCacheSize creates a Searcher whose result cache holds
// size entries. A size of zero or less disables caching.
func NewSearcherWithCacheSize(provider CorpusProvider, size int) *Searcher {
	s := &Searcher{corpus: provider}
	if size > 0 {
		cache, err := lru.New[cacheKey, []types.ScoredQuestion](size)
		if err != nil {
			// This should never happen with valid size parameter
			panic(fmt.Sprintf("failed to create LRU cache: %v", err))
		}
		s.cache = cache
	}
	return s
}

// Search ranks the current corpus against query. See Rank for the result
// contract. The returned slice is owned by the caller.
func (s *Searcher) Search(query string) []types.ScoredQuestion {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []types.ScoredQuestion{}
	}

	c := s.corpus.Current()
	if s.cache == nil {
		return rank(trimmed, c.All())
	}

	key := cacheKey{generation: c.Generation(), query: sha256.Sum256([]byte(trimmed))}
	if cached, ok := s.cache.Get(key); ok {
		return cloneResults(cached)
	}

	results := rank(trimmed, c.All())
	s.cache.Add(key, cloneResults(results))
	return results
}

// FormatAll formats every record of the current corpus, in corpus order
func (s *Searcher) FormatAll() []types.FormattedQuestion {
	c := s.corpus.Current()
	out := make([]types.FormattedQuestion, 0, c.Len())
	for _, r := range c.All() {
		out = append(out, formatter.Format(r))
	}
	return out
}

// Stats counts the current corpus by question type, category and
// difficulty.
func (s *Searcher) Stats() *types.Stats {
	stats := types.NewStats()
	for _, f := range s.FormatAll() {
		stats.TotalCount++

		qType := f.QuestionType
		if qType == "" {
			qType = unknownType
		}
		stats.QuestionTypes[qType]++
		stats.Categories[f.Category]++
		stats.Difficulties[f.Difficulty]++
	}
	return stats
}

// Generation reports the snapshot the next search will run against
func (s *Searcher) Generation() uint64 {
	return s.corpus.Current().Generation()
}

// cloneResults deep-copies results so cached entries stay immutable
func cloneResults(results []types.ScoredQuestion) []types.ScoredQuestion {
	out := make([]types.ScoredQuestion, len(results))
	for i, r := range results {
		r.Keywords = slices.Clone(r.Keywords)
		r.Options = slices.Clone(r.Options)
		r.FullQuestion.OptionsList = slices.Clone(r.FullQuestion.OptionsList)
		out[i] = r
	}
	return out
}
