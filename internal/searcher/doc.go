// Package searcher implements relevance ranking over the question corpus.
//
// # Basic Usage
//
//	s := searcher.NewSearcher(holder) // holder is a *corpus.Holder
//
//	for _, r := range s.Search("for loop") {
//	    fmt.Printf("%s (score: %.2f, match: %d)\n", r.Title, r.Score, r.OriginalScore)
//	}
//
// # Scoring
//
// Every record is formatted, then scored against the trimmed, lower-cased
// query using its formatted content (question text plus rendered
// options). Four signals are summed:
//
//	exact substring   +10 if the whole query occurs in the content
//	word overlap      +3 per query token (>= 2 chars) found in the content
//	keyword overlap   +2 per scoring keyword found in both query and content
//	fuzzy similarity  0.1 per query character present in the content
//	                  + 0.5 per occurrence of each query token in the content
//
// The first three form OriginalScore. A record is a match only when
// OriginalScore > 0; the fuzzy part orders near-misses and breaks ties.
//
// # Ranking
//
//   - Blank query: empty result, nothing is scored
//   - Matches found: best MaxResults matches by Score, ties in corpus order
//   - No matches: the single best record, flagged IsFallback
//   - Empty corpus: empty result
//
// Cost is linear in corpus size; there is no index.
//
// # Caching
//
// Result lists are kept in an LRU cache keyed by corpus generation and
// query, so a corpus reload is visible to the very next search. Callers
// always receive their own copy.
package searcher
