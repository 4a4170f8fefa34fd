package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/quizsearch-mcp/pkg/types"
)

func trueFalseRecord() types.QuestionRecord {
	return types.QuestionRecord{
		ID:             "1",
		QuestionType:   "true-false",
		QuestionNumber: "1",
		QuestionText:   "Lists are mutable in Python.",
		Options:        []string{},
		Answer:         "True",
	}
}

func singleChoiceRecord() types.QuestionRecord {
	return types.QuestionRecord{
		ID:             "2",
		QuestionType:   "single-choice",
		QuestionNumber: "2",
		QuestionText:   "Which keyword starts a loop?",
		Options:        []string{"A. if", "B. for", "C. def", "D. class"},
		Answer:         "B",
	}
}

func TestFormat_TrueFalse(t *testing.T) {
	f := Format(trueFalseRecord())

	assert.Equal(t, "true-false_1", f.ID)
	assert.Equal(t, "1", f.RecordID)
	assert.Equal(t, "true-false 1", f.Title)
	assert.Equal(t, "Lists are mutable in Python.", f.Content)
	assert.Equal(t, "answer: correct", f.AnswerText)
	assert.Equal(t, CategoryDataStructures, f.Category)
	assert.Equal(t, DifficultyEasy, f.Difficulty)
	assert.Equal(t, []string{"list", "in", "is"}, f.Keywords)
	assert.Equal(t, "True", f.OriginalAnswer)
	assert.Equal(t, "Lists are mutable in Python.", f.FullQuestion.QuestionText)
}

func TestFormat_SingleChoice(t *testing.T) {
	f := Format(singleChoiceRecord())

	assert.Equal(t, "single-choice 2", f.Title)
	assert.Equal(t, "Which keyword starts a loop?\n\n选项：\nA. if\nB. for\nC. def\nD. class", f.Content)
	assert.Equal(t, "answer: B - for", f.AnswerText)
	assert.Equal(t, CategoryConditionals, f.Category)
	assert.Equal(t, DifficultyEasy, f.Difficulty)
	assert.Equal(t, []string{"if", "for", "def", "class", "as", "or"}, f.Keywords)
	assert.Equal(t, []string{"A. if", "B. for", "C. def", "D. class"}, f.Options)
	assert.Equal(t, "B", f.FullQuestion.CorrectAnswer)
}

func TestFormat_Idempotent(t *testing.T) {
	r := singleChoiceRecord()
	assert.Equal(t, Format(r), Format(r))
}

func TestFormat_DoesNotAliasOptions(t *testing.T) {
	r := singleChoiceRecord()
	f := Format(r)
	f.Options[0] = "changed"
	f.FullQuestion.OptionsList[1] = "changed"

	assert.Equal(t, "A. if", r.Options[0])
	assert.Equal(t, "B. for", r.Options[1])
}

func TestFormat_EmptyRecord(t *testing.T) {
	f := Format(types.QuestionRecord{})

	assert.Equal(t, "_", f.ID)
	assert.Equal(t, " ", f.Title)
	assert.Equal(t, "", f.Content)
	assert.Equal(t, "answer: ", f.AnswerText)
	assert.Equal(t, CategoryBasicSyntax, f.Category)
	assert.Equal(t, DifficultyEasy, f.Difficulty)
	assert.NotNil(t, f.Keywords)
	assert.Empty(t, f.Keywords)
	assert.NotNil(t, f.Options)
}

func TestRenderContent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		options []string
		want    string
	}{
		{"no options", "What is 1+1?", nil, "What is 1+1?"},
		{"existing newline kept once", "What is 1+1?\n", nil, "What is 1+1?"},
		{"trailing whitespace trimmed", "Pick one  \n\n", []string{"A. x", "B. y  "}, "Pick one  \n\n\n选项：\nA. x\nB. y"},
		{"leading whitespace kept", "  indented", nil, "  indented"},
		{"options in order", "Q", []string{"B. second", "A. first"}, "Q\n\n选项：\nB. second\nA. first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderContent(tt.text, tt.options))
		})
	}
}

func TestRenderAnswer(t *testing.T) {
	options := []string{"A. if", "B. for", "C. def", "D. class"}

	tests := []struct {
		name         string
		questionType string
		answer       string
		options      []string
		want         string
	}{
		{"true-false true", "true-false", "True", nil, "answer: correct"},
		{"true-false false", "true-false", "False", nil, "answer: incorrect"},
		{"true-false lowercase is not True", "true-false", "true", nil, "answer: incorrect"},
		{"true-false chinese label", "判断题", "True", nil, "answer: correct"},
		{"single-choice letter", "single-choice", "C", options, "answer: C - def"},
		{"single-choice chinese label", "单选题", "A", options, "answer: A - if"},
		{"single-choice letter out of range", "single-choice", "E", options, "answer: E"},
		{"single-choice no options", "single-choice", "A", nil, "answer: A"},
		{"single-choice lowercase letter", "single-choice", "b", options, "answer: b"},
		{"single-choice multi letter", "single-choice", "AB", options, "answer: AB"},
		{"single-choice unlabelled option", "single-choice", "B", []string{"x", "y"}, "answer: B - y"},
		{"free form", "free-form", "use a dict", nil, "answer: use a dict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderAnswer(tt.questionType, tt.answer, tt.options))
		})
	}
}

func TestCategorize_PriorityOrder(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"if x in a list", CategoryConditionals},
		{"while the loop runs over a dict", CategoryLoops},
		{"class with a tuple field", CategoryFunctionsClasses},
		{"a tuple holds values", CategoryDataStructures},
		{"try something risky", CategoryExceptionHandling},
		{"print hello", CategoryBasicSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.content))
		})
	}
}

func TestDifficulty(t *testing.T) {
	long := strings.Repeat("x", 201)
	medium := strings.Repeat("x", 101)

	assert.Equal(t, DifficultyEasy, Difficulty("true-false", long))
	assert.Equal(t, DifficultyHard, Difficulty("free-form", long))
	assert.Equal(t, DifficultyMedium, Difficulty("free-form", medium))
	assert.Equal(t, DifficultyEasy, Difficulty("free-form", strings.Repeat("x", 100)))

	// Length is measured in characters, not bytes.
	assert.Equal(t, DifficultyEasy, Difficulty("free-form", strings.Repeat("题", 60)))
}

func TestVocabulariesHaveNoDuplicates(t *testing.T) {
	for name, vocab := range map[string][]string{
		"scoring":    ScoringKeywords,
		"extraction": ExtractionKeywords,
	} {
		seen := make(map[string]bool, len(vocab))
		for _, kw := range vocab {
			require.False(t, seen[kw], "%s vocabulary repeats %q", name, kw)
			require.Equal(t, strings.ToLower(kw), kw, "%s vocabulary entry %q must be lower-case", name, kw)
			seen[kw] = true
		}
	}
}
