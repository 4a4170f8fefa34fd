// Command quizimport loads question files into the quizsearch database
// without going through the MCP server.
//
//	quizimport [-db DIR] [-replace] [-workers N] FILE...
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/dshills/quizsearch-mcp/internal/importer"
	"github.com/dshills/quizsearch-mcp/internal/mcp"
	"github.com/dshills/quizsearch-mcp/internal/storage"
)

func main() {
	dbPath := flag.String("db", os.Getenv("QUIZSEARCH_DB_PATH"), "database directory (default ~/.quizsearch)")
	replace := flag.Bool("replace", false, "replace the stored corpus instead of appending")
	workers := flag.Int("workers", 0, "files decoded concurrently (default: number of CPUs)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)

	if err := run(*dbPath, flag.Args(), *replace, *workers); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func run(dbPath string, paths []string, replace bool, workers int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dbFile, err := mcp.DatabaseFile(dbPath)
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(dbFile)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		abs = append(abs, a)
	}

	stats, err := importer.New(store).ImportFiles(ctx, abs, &importer.Config{
		Workers: workers,
		Replace: replace,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d questions from %d files\n", stats.QuestionsImported, stats.FilesRead)
	for _, msg := range stats.ErrorMessages {
		fmt.Printf("  skipped: %s\n", msg)
	}

	status, err := store.GetStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Database: %s (%d questions, schema %s)\n", dbFile, status.QuestionsCount, status.SchemaVersion)
	return nil
}
