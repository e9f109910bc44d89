package bfs

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/tingshowliu/distbfs/locale"
)

// visitedSet is the distributed kernels' visited[] bitmap (spec §4.5): one
// compact roaring bitmap per node, guarded by its own mutex, holding only
// the entries that node owns. A roaring bitmap keeps the sparse early
// frontiers of a Graph500-scale BFS cheap relative to a dense []bool of
// length V replicated per node.
type visitedSet struct {
	topo locale.Topology
	n    int
	mus  []sync.Mutex
	bits []*roaring64.Bitmap
}

func newVisitedSet(topo locale.Topology, n int) *visitedSet {
	vs := &visitedSet{
		topo: topo,
		n:    n,
		mus:  make([]sync.Mutex, topo.N()),
		bits: make([]*roaring64.Bitmap, topo.N()),
	}
	for i := range vs.bits {
		vs.bits[i] = roaring64.New()
	}
	return vs
}

// TestAndSet is the atomic test-and-set of spec §4.2/§4.5: it marks u
// visited and reports whether it was already set. u's lock is the one its
// owner node holds, matching "visited[] is per-node-local for entries this
// node owns" (spec §5).
func (vs *visitedSet) TestAndSet(u int) bool {
	node, ok := vs.topo.OwnerOf(vs.n, u)
	if !ok {
		panic("bfs: TestAndSet: vertex out of range")
	}
	vs.mus[node].Lock()
	defer vs.mus[node].Unlock()
	key := uint64(u)
	if vs.bits[node].Contains(key) {
		return true
	}
	vs.bits[node].Add(key)
	return false
}

// Test reports whether u has been visited, without modifying it.
func (vs *visitedSet) Test(u int) bool {
	node, ok := vs.topo.OwnerOf(vs.n, u)
	if !ok {
		panic("bfs: Test: vertex out of range")
	}
	vs.mus[node].Lock()
	defer vs.mus[node].Unlock()
	return vs.bits[node].Contains(uint64(u))
}
