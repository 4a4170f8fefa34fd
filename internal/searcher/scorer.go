package searcher

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/quizsearch-mcp/internal/formatter"
	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// Signal weights
const (
	exactMatchBonus   = 10
	wordMatchBonus    = 3
	keywordMatchBonus = 2
	charOverlapWeight = 0.1
	wordFreqWeight    = 0.5
	minTokenLength    = 2
)

// preparedQuery holds the query-side work shared by every record
type preparedQuery struct {
	lower    string
	tokens   []string // whitespace tokens with at least minTokenLength characters
	keywords []string // ScoringKeywords present in the query
}

// prepareQuery lower-cases and tokenizes an already trimmed query
func prepareQuery(trimmed string) preparedQuery {
	lower := strings.ToLower(trimmed)

	var tokens []string
	for _, tok := range strings.Fields(lower) {
		if utf8.RuneCountInString(tok) >= minTokenLength {
			tokens = append(tokens, tok)
		}
	}

	var keywords []string
	for _, kw := range formatter.ScoringKeywords {
		if strings.Contains(lower, kw) {
			keywords = append(keywords, kw)
		}
	}

	return preparedQuery{lower: lower, tokens: tokens, keywords: keywords}
}

// score returns the total score and the discrete-signal part for content
func (q preparedQuery) score(content string) (float64, int) {
	lower := strings.ToLower(content)

	original := 0
	if strings.Contains(lower, q.lower) {
		original += exactMatchBonus
	}
	// Repeated query tokens count once per occurrence in the query.
	for _, tok := range q.tokens {
		if strings.Contains(lower, tok) {
			original += wordMatchBonus
		}
	}
	for _, kw := range q.keywords {
		if strings.Contains(lower, kw) {
			original += keywordMatchBonus
		}
	}

	// Every character of the query counts, repeats and spaces included.
	chars := 0
	for _, r := range q.lower {
		if strings.ContainsRune(lower, r) {
			chars++
		}
	}
	freq := 0
	for _, tok := range q.tokens {
		freq += strings.Count(lower, tok)
	}
	fuzzy := charOverlapWeight*float64(chars) + wordFreqWeight*float64(freq)

	return float64(original) + fuzzy, original
}

// Score computes the relevance of a formatted question for query. It
// returns the total score and the original score (discrete signals only).
// The query is trimmed first; callers should not score an empty query.
func Score(query string, f types.FormattedQuestion) (float64, int) {
	return prepareQuery(strings.TrimSpace(query)).score(f.Content)
}
