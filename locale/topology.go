// Package locale implements the block-distribution arithmetic and the
// DistributedArray of spec §4.1: a dense 1-D array partitioned in
// contiguous, near-equal blocks across N nodes ("locales"), with
// pure-arithmetic owner and range queries.
package locale

import "fmt"

// ID identifies one participating node.
type ID int

// Topology is the fixed set of N locales a run distributes arrays across.
// It carries no data of its own — only the arithmetic for turning a length
// and an index into an owning node and a local range.
type Topology struct {
	n int
}

// NewTopology returns a topology of n locales. n must be positive.
func NewTopology(n int) Topology {
	if n <= 0 {
		panic(fmt.Sprintf("locale: topology size must be positive, got %d", n))
	}
	return Topology{n: n}
}

// N returns the number of participating locales.
func (t Topology) N() int { return t.n }

// blockBounds returns the base block size and the number of nodes that get
// one extra element, for a length distributed across t.n nodes.
func (t Topology) blockBounds(length int) (base, rem int) {
	return length / t.n, length % t.n
}

// LocalRange returns the index range [lo,hi) of length resident on node.
// Blocks differ in size by at most one; nodes beyond length's needs get an
// empty range.
func (t Topology) LocalRange(length int, node ID) (lo, hi int) {
	if length <= 0 || int(node) < 0 || int(node) >= t.n {
		return 0, 0
	}
	base, rem := t.blockBounds(length)
	boundary := rem * (base + 1)
	if int(node) < rem {
		lo = int(node) * (base + 1)
		hi = lo + base + 1
		return
	}
	lo = boundary + (int(node)-rem)*base
	hi = lo + base
	return
}

// OwnerOf returns the node owning index i, and false ("none") if length is
// zero or i is out of range.
func (t Topology) OwnerOf(length, i int) (ID, bool) {
	if length <= 0 || i < 0 || i >= length {
		return 0, false
	}
	base, rem := t.blockBounds(length)
	boundary := rem * (base + 1)
	if i < boundary {
		return ID(i / (base + 1)), true
	}
	return ID(rem + (i-boundary)/base), true
}
