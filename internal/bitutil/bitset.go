package bitutil

import "sync/atomic"

// Bitset is a fixed-size, word-parallel atomic bitset used by the
// single-locale reference BFS kernels as their visited set: one CAS loop
// per bit, the same mechanism FetchOr uses for whole-word merges.
type Bitset struct {
	words []uint64
}

// NewBitset allocates a bitset able to address bits [0,n).
func NewBitset(n int) *Bitset {
	return &Bitset{words: make([]uint64, (n+63)/64)}
}

// TestAndSet atomically sets bit i and reports whether it was already set.
// This is the linearization point a single-locale kernel uses in place of
// the distributed kernels' per-node roaring-bitmap visited set.
func (b *Bitset) TestAndSet(i int) bool {
	word := i / 64
	mask := uint64(1) << uint(i%64)
	for {
		old := atomic.LoadUint64(&b.words[word])
		if old&mask != 0 {
			return true
		}
		if atomic.CompareAndSwapUint64(&b.words[word], old, old|mask) {
			return false
		}
	}
}

// Test reports whether bit i is set, without modifying it.
func (b *Bitset) Test(i int) bool {
	word := i / 64
	mask := uint64(1) << uint(i%64)
	return atomic.LoadUint64(&b.words[word])&mask != 0
}
