package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/quizsearch-mcp/pkg/types"
)

// Source supplies the ordered question records for a corpus
type Source interface {
	Load(ctx context.Context) ([]types.QuestionRecord, error)
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func(ctx context.Context) ([]types.QuestionRecord, error)

// Load calls f(ctx)
func (f SourceFunc) Load(ctx context.Context) ([]types.QuestionRecord, error) {
	return f(ctx)
}

// describe labels a source for logs and snapshot metadata
func describe(src Source) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", src)
}

// FileSource loads questions from the first existing file in Paths.
// Earlier paths take priority, so a current export can shadow a legacy
// one.
type FileSource struct {
	Paths []string

	// loaded records the path chosen by the last successful Load
	loaded string
}

// NewFileSource creates a FileSource over paths, in priority order
func NewFileSource(paths ...string) *FileSource {
	return &FileSource{Paths: paths}
}

// Load implements Source
func (fs *FileSource) Load(ctx context.Context) ([]types.QuestionRecord, error) {
	for _, path := range fs.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		fs.loaded = path
		return records, nil
	}

	return nil, fmt.Errorf("%w: tried %s", ErrSourceNotFound, strings.Join(fs.Paths, ", "))
}

func (fs *FileSource) String() string {
	if fs.loaded != "" {
		return fs.loaded
	}
	return "file:" + strings.Join(fs.Paths, ",")
}

// ReadFile decodes a question file
func ReadFile(path string) ([]types.QuestionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return records, nil
}

// legacyFile is the older export shape, {"questions": [...]}
type legacyFile struct {
	Questions []types.QuestionRecord `json:"questions"`
}

// Decode reads a question file. Both a bare JSON array of records and the
// legacy {"questions": [...]} object are accepted. The result is never nil
// on success, even for an empty file body such as "[]".
func Decode(r io.Reader) ([]types.QuestionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty question file")
	}

	switch data[0] {
	case '[':
		records := make([]types.QuestionRecord, 0)
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		var legacy legacyFile
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, err
		}
		if legacy.Questions == nil {
			return []types.QuestionRecord{}, nil
		}
		return legacy.Questions, nil
	default:
		return nil, fmt.Errorf("unexpected question file start %q", data[0])
	}
}
