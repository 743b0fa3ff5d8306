package ldharvest

import "github.com/cespare/xxhash/v2"

// Deduper suppresses repeated records within a single run. Identity keys are
// folded to 64-bit xxhash values so the seen set stays compact even on large
// sites. State lives only on the instance; a new run starts from an empty
// set.
//
// Deduper is not safe for concurrent use. The pipeline processes records
// strictly in sequence, so none is needed.
type Deduper struct {
	seen map[uint64]struct{}
}

// NewDeduper returns an empty run-scoped Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[uint64]struct{})}
}

// Admit marks the key as seen and reports whether this was its first
// occurrence in the run.
func (d *Deduper) Admit(key string) bool {
	h := xxhash.Sum64String(key)
	if _, ok := d.seen[h]; ok {
		return false
	}
	d.seen[h] = struct{}{}
	return true
}

// Len returns the number of distinct keys admitted so far.
func (d *Deduper) Len() int {
	return len(d.seen)
}
