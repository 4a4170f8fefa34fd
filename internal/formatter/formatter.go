package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// Format derives the presentation form of a record. It is a pure function
// of its input and never fails.
func Format(r types.QuestionRecord) types.FormattedQuestion {
	content := RenderContent(r.QuestionText, r.Options)
	lower := strings.ToLower(content)

	return types.FormattedQuestion{
		ID:         r.QuestionType + "_" + r.QuestionNumber,
		RecordID:   r.ID,
		Title:      r.QuestionType + " " + r.QuestionNumber,
		Content:    content,
		AnswerText: RenderAnswer(r.QuestionType, r.Answer, r.Options),
		Category:   Categorize(lower),
		Difficulty: Difficulty(r.QuestionType, content),
		Keywords:   ExtractKeywords(lower),

		QuestionType:     r.QuestionType,
		QuestionNumber:   r.QuestionNumber,
		OriginalQuestion: r.QuestionText,
		Options:          cloneOptions(r.Options),
		OriginalAnswer:   r.Answer,
		FullQuestion: types.FullQuestion{
			QuestionText:   r.QuestionText,
			OptionsList:    cloneOptions(r.Options),
			CorrectAnswer:  r.Answer,
			QuestionType:   r.QuestionType,
			QuestionNumber: r.QuestionNumber,
		},
	}
}

// RenderContent joins the question text and its options block, then drops
// trailing whitespace.
func RenderContent(text string, options []string) string {
	var b strings.Builder
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}

	if len(options) > 0 {
		b.WriteString(optionsHeader)
		for _, opt := range options {
			b.WriteString(opt)
			b.WriteByte('\n')
		}
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// RenderAnswer produces the human-readable answer line
func RenderAnswer(questionType, answer string, options []string) string {
	if IsTrueFalse(questionType) {
		if answer == "True" {
			return answerPrefix + answerCorrect
		}
		return answerPrefix + answerIncorrect
	}

	if IsSingleChoice(questionType) {
		if opt, ok := optionForLetter(answer, options); ok {
			return answerPrefix + answer + " - " + strings.TrimPrefix(opt, answer+". ")
		}
	}

	return answerPrefix + answer
}

// optionForLetter resolves a single upper-case letter to its option,
// A being the first.
func optionForLetter(answer string, options []string) (string, bool) {
	if len(answer) != 1 || answer[0] < 'A' || answer[0] > 'Z' {
		return "", false
	}

	idx := int(answer[0] - 'A')
	if idx >= len(options) {
		return "", false
	}
	return options[idx], true
}

// Categorize applies the category decision list to lower-cased content
func Categorize(lowerContent string) string {
	for _, rule := range categoryRules {
		if containsAny(lowerContent, rule.Terms) {
			return rule.Label
		}
	}
	return CategoryBasicSyntax
}

// Difficulty grades a question by type and rendered content length in
// characters.
func Difficulty(questionType, content string) string {
	if IsTrueFalse(questionType) {
		return DifficultyEasy
	}

	switch n := utf8.RuneCountInString(content); {
	case n > hardLengthFrom:
		return DifficultyHard
	case n > mediumLengthFrom:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// ExtractKeywords returns the ExtractionKeywords present in lower-cased
// content, in vocabulary order.
func ExtractKeywords(lowerContent string) []string {
	keywords := make([]string, 0)
	for _, kw := range ExtractionKeywords {
		if strings.Contains(lowerContent, kw) {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// IsTrueFalse reports whether questionType denotes a true/false item
func IsTrueFalse(questionType string) bool {
	return trueFalseTypes[questionType]
}

// IsSingleChoice reports whether questionType denotes a single-choice item
func IsSingleChoice(questionType string) bool {
	return singleChoiceTypes[questionType]
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func cloneOptions(options []string) []string {
	out := make([]string, len(options))
	copy(out, options)
	return out
}
