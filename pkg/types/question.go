package types

import (
	"encoding/json"
	"slices"
	"strings"
)

// QuestionRecord is a single exam question as loaded from a corpus source.
// Records are never mutated once loaded.
type QuestionRecord struct {
	ID             string   `json:"id"`
	QuestionType   string   `json:"question_type"`
	QuestionNumber string   `json:"question_number"`
	QuestionText   string   `json:"question"`
	Options        []string `json:"options"`
	Answer         string   `json:"answer"`
}

// rawQuestionRecord mirrors the loose on-disk shape. Every field may be
// absent, null, or of an unexpected JSON type.
type rawQuestionRecord struct {
	ID             json.RawMessage `json:"id"`
	QuestionType   json.RawMessage `json:"question_type"`
	QuestionNumber json.RawMessage `json:"question_number"`
	Question       json.RawMessage `json:"question"`
	QuestionText   json.RawMessage `json:"question_text"`
	Options        json.RawMessage `json:"options"`
	Answer         json.RawMessage `json:"answer"`
}

// UnmarshalJSON decodes a record leniently: missing or malformed fields
// become empty values instead of errors. Only input that is not a JSON
// object at all is rejected.
func (r *QuestionRecord) UnmarshalJSON(data []byte) error {
	var raw rawQuestionRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	text := looseString(raw.Question)
	if text == "" {
		text = looseString(raw.QuestionText)
	}

	*r = QuestionRecord{
		ID:             looseString(raw.ID),
		QuestionType:   looseString(raw.QuestionType),
		QuestionNumber: looseString(raw.QuestionNumber),
		QuestionText:   text,
		Options:        looseStrings(raw.Options),
		Answer:         looseString(raw.Answer),
	}
	return nil
}

// Clone returns a copy that shares no memory with r.
func (r QuestionRecord) Clone() QuestionRecord {
	r.Options = slices.Clone(r.Options)
	return r
}

// looseString renders any JSON scalar as text. Booleans use the
// capitalised True/False spelling that answer keys are written in.
func looseString(msg json.RawMessage) string {
	if len(msg) == 0 {
		return ""
	}

	var v interface{}
	dec := json.NewDecoder(strings.NewReader(string(msg)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return ""
	}

	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "True"
		}
		return "False"
	case json.Number:
		return val.String()
	default:
		// Objects and arrays have no sensible scalar form.
		return ""
	}
}

func looseStrings(msg json.RawMessage) []string {
	if len(msg) == 0 {
		return []string{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(msg, &items); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, looseString(item))
	}
	return out
}

// FullQuestion preserves the raw record fields for consumers that need
// to re-render a question themselves.
type FullQuestion struct {
	QuestionText   string   `json:"question_text"`
	OptionsList    []string `json:"options_list"`
	CorrectAnswer  string   `json:"correct_answer"`
	QuestionType   string   `json:"question_type"`
	QuestionNumber string   `json:"question_number"`
}

// FormattedQuestion is the presentation-ready form of a QuestionRecord.
// It is derived on every call and never cached.
type FormattedQuestion struct {
	ID         string   `json:"id"` // {question_type}_{question_number}
	RecordID   string   `json:"record_id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	AnswerText string   `json:"answer"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Keywords   []string `json:"keywords"`

	QuestionType     string       `json:"question_type"`
	QuestionNumber   string       `json:"question_number"`
	OriginalQuestion string       `json:"original_question"`
	Options          []string     `json:"options"`
	OriginalAnswer   string       `json:"original_answer"`
	FullQuestion     FullQuestion `json:"full_question"`
}

// ScoredQuestion is a FormattedQuestion ranked against a query.
type ScoredQuestion struct {
	FormattedQuestion

	// Score is OriginalScore plus the fuzzy similarity signals.
	Score float64 `json:"score"`
	// OriginalScore sums the discrete match signals only. A record is a
	// match when it is positive.
	OriginalScore int `json:"original_score"`
	// IsFallback marks the single best-effort result returned when no
	// record matched.
	IsFallback bool `json:"is_fallback,omitempty"`
}

// Validate checks the scoring invariants of a ranked result
func (sq *ScoredQuestion) Validate() error {
	if sq.ID == "" {
		return ErrEmptyQuestionID
	}

	if sq.OriginalScore < 0 {
		return ErrNegativeOriginalScore
	}

	if sq.Score < float64(sq.OriginalScore) {
		return ErrScoreBelowOriginal
	}

	if sq.IsFallback && sq.OriginalScore > 0 {
		return ErrFallbackWithMatch
	}

	return nil
}

// Stats aggregates the corpus by raw question type and by the derived
// category and difficulty.
type Stats struct {
	TotalCount    int            `json:"total_count"`
	QuestionTypes map[string]int `json:"question_types"`
	Categories    map[string]int `json:"categories"`
	Difficulties  map[string]int `json:"difficulties"`
}

// NewStats returns an empty Stats with initialised maps
func NewStats() *Stats {
	return &Stats{
		QuestionTypes: make(map[string]int),
		Categories:    make(map[string]int),
		Difficulties:  make(map[string]int),
	}
}
