package types

import "errors"

// Domain errors for type validation
var (
	// Scored result errors
	ErrEmptyQuestionID       = errors.New("question ID cannot be empty")
	ErrNegativeOriginalScore = errors.New("original score must be >= 0")
	ErrScoreBelowOriginal    = errors.New("score must be >= original score")
	ErrFallbackWithMatch     = errors.New("fallback result cannot have a positive original score")
)
