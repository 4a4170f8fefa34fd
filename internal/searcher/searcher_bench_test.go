package searcher

import (
	"fmt"
	"testing"

	"github.com/dshills/quizsearch-mcp/internal/corpus"
	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// generateCorpus builds n varied questions for benchmarking
func generateCorpus(n int) []types.QuestionRecord {
	texts := []string{
		"What is the output of print(len([1, 2, 3]))?",
		"Which statement correctly opens a file for reading?",
		"A dict comprehension creates a new dictionary.",
		"Explain the difference between a list and a tuple.",
		"What happens when an exception is raised inside a try block?",
	}

	records := make([]types.QuestionRecord, n)
	for i := range records {
		records[i] = types.QuestionRecord{
			ID:             fmt.Sprint(i),
			QuestionType:   "single-choice",
			QuestionNumber: fmt.Sprint(i),
			QuestionText:   texts[i%len(texts)],
			Options:        []string{"A. first", "B. second", "C. third", "D. fourth"},
			Answer:         "A",
		}
	}
	return records
}

func BenchmarkRank(b *testing.B) {
	for _, size := range []int{100, 1000, 5000} {
		records := generateCorpus(size)
		b.Run(fmt.Sprintf("corpus=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Rank("list tuple difference", records)
			}
		})
	}
}

func BenchmarkSearch_Cached(b *testing.B) {
	s := NewSearcher(corpus.NewHolder(corpus.New(generateCorpus(1000), "bench")))
	_ = s.Search("list tuple difference")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Search("list tuple difference")
	}
}

func BenchmarkSearch_Fallback(b *testing.B) {
	s := NewSearcherWithCacheSize(corpus.NewHolder(corpus.New(generateCorpus(1000), "bench")), 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Search("zzqqxx")
	}
}
