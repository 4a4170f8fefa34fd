package searcher

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/dshills/quizsearch-mcp/internal/formatter"
	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// MaxResults bounds the number of matches returned by a search
const MaxResults = 5

// Rank scores records against query and returns at most MaxResults
// matches, best first. When nothing matches, the single best-scoring
// record is returned with IsFallback set. An empty (or blank) query and
// an empty corpus both return an empty slice.
func Rank(query string, records []types.QuestionRecord) []types.ScoredQuestion {
	return rank(query, slices.All(records))
}

func rank(query string, records iter.Seq2[int, types.QuestionRecord]) []types.ScoredQuestion {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []types.ScoredQuestion{}
	}
	q := prepareQuery(trimmed)

	var all, matches []types.ScoredQuestion
	for _, r := range records {
		f := formatter.Format(r)
		total, original := q.score(f.Content)

		sq := types.ScoredQuestion{
			FormattedQuestion: f,
			Score:             total,
			OriginalScore:     original,
		}
		all = append(all, sq)
		if original > 0 {
			matches = append(matches, sq)
		}
	}

	if len(matches) > 0 {
		sortByScore(matches)
		if len(matches) > MaxResults {
			matches = matches[:MaxResults]
		}
		return matches
	}

	if len(all) == 0 {
		return []types.ScoredQuestion{}
	}

	sortByScore(all)
	best := all[0]
	best.IsFallback = true
	return []types.ScoredQuestion{best}
}

// sortByScore orders by descending Score; ties keep corpus order
func sortByScore(results []types.ScoredQuestion) {
	slices.SortStableFunc(results, func(a, b types.ScoredQuestion) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
