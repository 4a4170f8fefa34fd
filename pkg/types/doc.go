// Package types provides shared type definitions for the quiz search server.
//
// # Core Types
//
// QuestionRecord is a raw exam question as stored in a corpus source:
//
//	record := types.QuestionRecord{
//	    ID:             "42",
//	    QuestionType:   "single-choice",
//	    QuestionNumber: "2",
//	    QuestionText:   "Which keyword starts a loop?",
//	    Options:        []string{"A. if", "B. for", "C. def", "D. class"},
//	    Answer:         "B",
//	}
//
// Records decode leniently from JSON. Ids, numbers and answers may be
// strings, numbers, booleans or null; a missing or non-array "options"
// becomes an empty slice. Nothing in a malformed record causes it to be
// dropped.
//
// FormattedQuestion is the derived, presentation-ready form (title,
// content with rendered options, answer text, category, difficulty,
// keywords). ScoredQuestion adds the relevance scores:
//
//	result.OriginalScore // discrete signals only; > 0 means "match"
//	result.Score         // OriginalScore + fuzzy similarity
//	result.IsFallback    // best-effort result when nothing matched
//
// Stats aggregates a corpus by question type, category and difficulty.
package types
