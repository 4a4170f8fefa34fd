package corpus

import (
	"context"
	"sync/atomic"
)

// Holder owns the current corpus snapshot. Readers always observe one
// complete snapshot; reloads replace the whole reference at once.
type Holder struct {
	current atomic.Pointer[Corpus]
	reload  ReloadLock
}

// NewHolder creates a holder serving c. A nil c is replaced by an empty
// corpus.
func NewHolder(c *Corpus) *Holder {
	if c == nil {
		c = New(nil, "empty")
	}
	h := &Holder{}
	h.current.Store(c)
	return h
}

// Current returns the snapshot in effect
func (h *Holder) Current() *Corpus {
	return h.current.Load()
}

// Swap installs c and returns the previous snapshot
func (h *Holder) Swap(c *Corpus) *Corpus {
	return h.current.Swap(c)
}

// Reload loads src into a fresh snapshot and swaps it in. Only one reload
// runs at a time; a concurrent call fails fast with ErrReloadInProgress.
func (h *Holder) Reload(ctx context.Context, src Source) (*Corpus, error) {
	if !h.reload.TryAcquire() {
		return nil, ErrReloadInProgress
	}
	defer h.reload.Release()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := Load(ctx, src)
	h.current.Store(c)
	return c, nil
}
