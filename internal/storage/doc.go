// Package storage provides SQLite-based persistence for the question corpus.
//
// The database is one of the corpus sources the server can load from; the
// search engine itself never touches it. The storage layer manages:
//   - Questions, in corpus order
//   - Import runs (what was loaded, when, and how many questions)
//
// # Database Schema
//
// Tables:
//   - schema_version: Applied migrations (semantic versions)
//   - questions: One row per question; options stored as a JSON array
//   - import_runs: Bulk import history
//
// # Basic Usage
//
//	db, err := storage.NewSQLiteStorage("~/.quizsearch/quizsearch.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	// Replace the whole corpus atomically
//	err = db.ReplaceQuestions(ctx, records)
//
//	// Read it back in the same order
//	records, err := db.ListQuestions(ctx)
//
// ListQuestions matches corpus.SourceFunc, so the database plugs straight
// into a corpus holder:
//
//	holder.Reload(ctx, corpus.SourceFunc(db.ListQuestions))
//
// # Build Modes
//
// The default build uses modernc.org/sqlite (pure Go). Building with the
// sqlite_cgo tag switches to github.com/mattn/go-sqlite3.
package storage
