package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/quizsearch-mcp/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite benefits from single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// querier is an interface that both *sql.DB and *sql.Tx implement
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// withTx runs fn inside a transaction, committing on success
func (s *SQLiteStorage) withTx(ctx context.Context, fn func(q querier) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Question operations

// insertQuestionsWithQuerier appends records in slice order
func (s *SQLiteStorage) insertQuestionsWithQuerier(ctx context.Context, q querier, records []types.QuestionRecord) error {
	query := `
		INSERT INTO questions (record_id, question_type, question_number, question_text, options, answer)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i, r := range records {
		options := r.Options
		if options == nil {
			options = []string{}
		}
		encoded, err := json.Marshal(options)
		if err != nil {
			return fmt.Errorf("failed to encode options of question %d: %w", i, err)
		}

		if _, err := q.ExecContext(ctx, query,
			r.ID, r.QuestionType, r.QuestionNumber, r.QuestionText, string(encoded), r.Answer); err != nil {
			return fmt.Errorf("failed to insert question %d: %w", i, err)
		}
	}
	return nil
}

// ReplaceQuestions swaps the stored corpus for records in one transaction
func (s *SQLiteStorage) ReplaceQuestions(ctx context.Context, records []types.QuestionRecord) error {
	return s.withTx(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx, "DELETE FROM questions"); err != nil {
			return fmt.Errorf("failed to clear questions: %w", err)
		}
		return s.insertQuestionsWithQuerier(ctx, q, records)
	})
}

// AppendQuestions adds records after the existing corpus
func (s *SQLiteStorage) AppendQuestions(ctx context.Context, records []types.QuestionRecord) error {
	return s.withTx(ctx, func(q querier) error {
		return s.insertQuestionsWithQuerier(ctx, q, records)
	})
}

// ListQuestions returns every stored question in corpus order
func (s *SQLiteStorage) ListQuestions(ctx context.Context) ([]types.QuestionRecord, error) {
	query := `
		SELECT record_id, question_type, question_number, question_text, options, answer
		FROM questions
		ORDER BY position
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]types.QuestionRecord, 0)
	for rows.Next() {
		var r types.QuestionRecord
		var options string
		if err := rows.Scan(&r.ID, &r.QuestionType, &r.QuestionNumber, &r.QuestionText, &options, &r.Answer); err != nil {
			return nil, err
		}

		// A damaged options column degrades to no options rather than
		// losing the question.
		if err := json.Unmarshal([]byte(options), &r.Options); err != nil || r.Options == nil {
			r.Options = []string{}
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// CountQuestions returns the number of stored questions
func (s *SQLiteStorage) CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count)
	return count, err
}

// Import operations

// ImportQuestions writes records and the run that produced them in one
// transaction. run.Replaced selects replace or append; ID and ImportedAt
// are filled in.
func (s *SQLiteStorage) ImportQuestions(ctx context.Context, records []types.QuestionRecord, run *ImportRun) error {
	return s.withTx(ctx, func(q querier) error {
		if run.Replaced {
			if _, err := q.ExecContext(ctx, "DELETE FROM questions"); err != nil {
				return fmt.Errorf("failed to clear questions: %w", err)
			}
		}
		if err := s.insertQuestionsWithQuerier(ctx, q, records); err != nil {
			return err
		}
		return s.recordImportWithQuerier(ctx, q, run)
	})
}

// RecordImport stores an import run, filling in ID and ImportedAt
func (s *SQLiteStorage) RecordImport(ctx context.Context, run *ImportRun) error {
	return s.recordImportWithQuerier(ctx, s.db, run)
}

func (s *SQLiteStorage) recordImportWithQuerier(ctx context.Context, q querier, run *ImportRun) error {
	importedAt := run.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now()
	}

	result, err := q.ExecContext(ctx, `
		INSERT INTO import_runs (source, replaced, questions_count, imported_at)
		VALUES (?, ?, ?, ?)
	`, run.Source, run.Replaced, run.QuestionsCount, importedAt)
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	run.ID = id
	run.ImportedAt = importedAt
	return nil
}

// LastImport returns the most recent import run
func (s *SQLiteStorage) LastImport(ctx context.Context) (*ImportRun, error) {
	run := &ImportRun{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, replaced, questions_count, imported_at
		FROM import_runs
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&run.ID, &run.Source, &run.Replaced, &run.QuestionsCount, &run.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Status operations

// GetStatus reports corpus and database statistics
func (s *SQLiteStorage) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{}

	count, err := s.CountQuestions(ctx)
	if err != nil {
		return nil, err
	}
	status.QuestionsCount = count

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM import_runs").Scan(&status.ImportsCount); err != nil {
		return nil, err
	}

	last, err := s.LastImport(ctx)
	switch {
	case err == nil:
		status.LastImport = last
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	version, err := currentVersion(ctx, s.db)
	if err != nil {
		return nil, err
	}
	status.SchemaVersion = version.String()

	// Calculate database size
	var pageCount, pageSize int
	err = s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			status.DatabaseSizeMB = float64(pageCount*pageSize) / (1024 * 1024)
		}
	}

	return status, nil
}
