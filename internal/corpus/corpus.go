package corpus

import (
	"context"
	"errors"
	"iter"
	"log"
	"sync/atomic"
	"time"

	"github.com/dshills/quizsearch-mcp/pkg/types"
)

var (
	// ErrSourceNotFound is returned by a source that has nothing to load
	ErrSourceNotFound = errors.New("corpus source not found")
	// ErrReloadInProgress is returned when another reload holds the lock
	ErrReloadInProgress = errors.New("corpus reload already in progress")
)

// PlaceholderSource labels the built-in corpus used when loading fails
const PlaceholderSource = "placeholder"

// generations hands out a distinct number to every snapshot built in this
// process so caches can key on it.
var generations atomic.Uint64

// Corpus is an immutable, ordered snapshot of question records
type Corpus struct {
	records    []types.QuestionRecord
	generation uint64
	source     string
	loadedAt   time.Time
}

// New builds a snapshot from records. The records are copied, so the
// caller may reuse its slice.
func New(records []types.QuestionRecord, source string) *Corpus {
	owned := make([]types.QuestionRecord, len(records))
	for i, r := range records {
		owned[i] = r.Clone()
	}

	return &Corpus{
		records:    owned,
		generation: generations.Add(1),
		source:     source,
		loadedAt:   time.Now(),
	}
}

// Len returns the number of records
func (c *Corpus) Len() int {
	return len(c.records)
}

// All iterates the records in corpus order without copying the snapshot.
// Yielded records must be treated as read-only.
func (c *Corpus) All() iter.Seq2[int, types.QuestionRecord] {
	return func(yield func(int, types.QuestionRecord) bool) {
		for i, r := range c.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Records returns a deep copy of the records in corpus order
func (c *Corpus) Records() []types.QuestionRecord {
	out := make([]types.QuestionRecord, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// Generation identifies this snapshot. It is unique within the process.
func (c *Corpus) Generation() uint64 {
	return c.generation
}

// Source describes where the records came from
func (c *Corpus) Source() string {
	return c.source
}

// LoadedAt returns when the snapshot was built
func (c *Corpus) LoadedAt() time.Time {
	return c.loadedAt
}

// Placeholder returns the built-in record set used when no source loads
func Placeholder() []types.QuestionRecord {
	return []types.QuestionRecord{
		{
			ID:             "1",
			QuestionType:   "free-form",
			QuestionNumber: "1",
			QuestionText:   "How do you define a string variable in Python?",
			Options:        []string{},
			Answer:         "Wrap the text in single or double quotes, e.g. name = 'Python'",
		},
	}
}

// Load reads src into a new snapshot. It never fails: on any source error
// the placeholder set is used instead. A source that yields an empty
// slice produces an empty corpus.
func Load(ctx context.Context, src Source) *Corpus {
	records, err := src.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrSourceNotFound) {
			log.Printf("corpus: no question source found, using placeholder questions")
		} else {
			log.Printf("corpus: failed to load questions: %v, using placeholder questions", err)
		}
		return New(Placeholder(), PlaceholderSource)
	}

	c := New(records, describe(src))
	log.Printf("corpus: loaded %d questions from %s", c.Len(), c.Source())
	return c
}
