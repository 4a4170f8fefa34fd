// Package importer loads question files into the SQLite corpus store.
//
// Files are decoded concurrently, bounded by Config.Workers, and written
// in a single storage call so the stored corpus never shows a half-done
// import:
//
//	imp := importer.New(store)
//	stats, err := imp.ImportFiles(ctx, []string{"part1.json", "part2.json"}, &importer.Config{
//	    Replace: true,
//	})
//
// Questions keep the order of the given files. A file that cannot be read
// is skipped and reported in Statistics.ErrorMessages; the import fails
// only if no file could be read. Only one import runs at a time per
// Importer; a concurrent call returns ErrImportInProgress.
package importer
