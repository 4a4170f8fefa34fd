package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/quizsearch-mcp/internal/storage"
	"github.com/dshills/quizsearch-mcp/pkg/types"
)

func setupTestStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func writeQuestions(t *testing.T, dir, name string, ids ...string) string {
	t.Helper()
	body := "["
	for i, id := range ids {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"id": %q, "question_type": "free-form", "question_number": %q, "question": "question %s"}`, id, id, id)
	}
	body += "]"

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func storedIDs(t *testing.T, store storage.Storage) []string {
	t.Helper()
	records, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func TestImportFiles_PreservesFileOrder(t *testing.T) {
	store := setupTestStorage(t)
	dir := t.TempDir()

	var paths []string
	var want []string
	for i := 0; i < 8; i++ {
		a, b := fmt.Sprintf("%d-a", i), fmt.Sprintf("%d-b", i)
		paths = append(paths, writeQuestions(t, dir, fmt.Sprintf("part%d.json", i), a, b))
		want = append(want, a, b)
	}

	stats, err := New(store).ImportFiles(context.Background(), paths, &Config{Workers: 3, Replace: true})
	require.NoError(t, err)

	assert.Equal(t, 8, stats.FilesRead)
	assert.Equal(t, 0, stats.FilesFailed)
	assert.Equal(t, 16, stats.QuestionsImported)
	assert.True(t, stats.Replaced)
	assert.Equal(t, want, storedIDs(t, store))

	run, err := store.LastImport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, run.QuestionsCount)
	assert.True(t, run.Replaced)
}

func TestImportFiles_AppendAndReplace(t *testing.T) {
	store := setupTestStorage(t)
	dir := t.TempDir()
	imp := New(store)
	ctx := context.Background()

	_, err := imp.ImportFiles(ctx, []string{writeQuestions(t, dir, "a.json", "1")}, nil)
	require.NoError(t, err)
	_, err = imp.ImportFiles(ctx, []string{writeQuestions(t, dir, "b.json", "2")}, &Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, storedIDs(t, store))

	_, err = imp.ImportFiles(ctx, []string{writeQuestions(t, dir, "c.json", "3")}, &Config{Replace: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, storedIDs(t, store))
}

func TestImportFiles_SkipsUnreadableFiles(t *testing.T) {
	store := setupTestStorage(t)
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`[{"id": `), 0o644))

	paths := []string{
		writeQuestions(t, dir, "good.json", "1"),
		filepath.Join(dir, "missing.json"),
		broken,
	}

	stats, err := New(store).ImportFiles(context.Background(), paths, &Config{Replace: true})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesRead)
	assert.Equal(t, 2, stats.FilesFailed)
	assert.Len(t, stats.ErrorMessages, 2)
	assert.Equal(t, []string{"1"}, storedIDs(t, store))
}

func TestImportFiles_NothingReadable(t *testing.T) {
	store := setupTestStorage(t)
	require.NoError(t, store.ReplaceQuestions(context.Background(), []types.QuestionRecord{{ID: "kept"}}))

	_, err := New(store).ImportFiles(context.Background(),
		[]string{filepath.Join(t.TempDir(), "missing.json")}, &Config{Replace: true})
	assert.ErrorIs(t, err, ErrNothingReadable)

	// The stored corpus is untouched.
	assert.Equal(t, []string{"kept"}, storedIDs(t, store))
}

func TestImportFiles_NoPaths(t *testing.T) {
	_, err := New(setupTestStorage(t)).ImportFiles(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNoPaths)
}

func TestImportFiles_Canceled(t *testing.T) {
	store := setupTestStorage(t)
	path := writeQuestions(t, t.TempDir(), "a.json", "1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(store).ImportFiles(ctx, []string{path}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, storedIDs(t, store))
}

// blockingStorage stalls ImportQuestions until released
type blockingStorage struct {
	storage.Storage
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStorage) ImportQuestions(ctx context.Context, records []types.QuestionRecord, run *storage.ImportRun) error {
	close(b.entered)
	<-b.release
	return b.Storage.ImportQuestions(ctx, records, run)
}

func TestImportFiles_InProgress(t *testing.T) {
	store := &blockingStorage{
		Storage: setupTestStorage(t),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	imp := New(store)
	path := writeQuestions(t, t.TempDir(), "a.json", "1")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := imp.ImportFiles(context.Background(), []string{path}, &Config{Replace: true})
		assert.NoError(t, err)
	}()

	<-store.entered
	_, err := imp.ImportFiles(context.Background(), []string{path}, &Config{Replace: true})
	assert.ErrorIs(t, err, ErrImportInProgress)

	close(store.release)
	wg.Wait()
}

// failingStorage rejects every write
type failingStorage struct {
	storage.Storage
}

func (failingStorage) ImportQuestions(ctx context.Context, records []types.QuestionRecord, run *storage.ImportRun) error {
	return errors.New("disk full")
}

func TestImportFiles_StorageError(t *testing.T) {
	imp := New(failingStorage{Storage: setupTestStorage(t)})
	path := writeQuestions(t, t.TempDir(), "a.json", "1")

	_, err := imp.ImportFiles(context.Background(), []string{path}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
