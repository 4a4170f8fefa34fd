// Package corpus holds the in-memory question corpus.
//
// A Corpus is an immutable snapshot of question records. Nothing in this
// module mutates a snapshot after it is built; a reload builds a new one
// and swaps the reference held by a Holder:
//
//	h := corpus.NewHolder(corpus.Load(ctx, corpus.NewFileSource("database.json", "data/questions.json")))
//
//	c := h.Current() // consistent for the whole search
//
//	if _, err := h.Reload(ctx, src); errors.Is(err, corpus.ErrReloadInProgress) {
//	    // someone else is reloading
//	}
//
// Load never fails. When the source is missing or broken the built-in
// placeholder questions are served, so searches always have a corpus to
// work on. Only a source that explicitly returns zero records yields an
// empty corpus.
package corpus
