package locale

import "sync"

// DistributedArray is a dense array of length L, block-distributed across a
// Topology. Storage for all blocks lives in a single backing slice; At/Set
// stand in for what, on real hardware, would be a one-sided remote memory
// operation — here they are linearized with a single array-wide lock, which
// is enough to satisfy the per-index linearizability spec §4.1 requires
// without pretending to model real RDMA latency.
type DistributedArray[T any] struct {
	topo Topology
	n    int
	mu   sync.RWMutex
	data []T
}

// NewDistributedArray allocates a zero-valued distributed array of length n
// over topo.
func NewDistributedArray[T any](topo Topology, n int) *DistributedArray[T] {
	return &DistributedArray[T]{topo: topo, n: n, data: make([]T, n)}
}

// Len returns the array's fixed length.
func (d *DistributedArray[T]) Len() int { return d.n }

// Topo returns the topology this array is distributed over.
func (d *DistributedArray[T]) Topo() Topology { return d.topo }

// OwnerOf returns the node owning index i.
func (d *DistributedArray[T]) OwnerOf(i int) (ID, bool) { return d.topo.OwnerOf(d.n, i) }

// LocalRange returns the index range resident on node.
func (d *DistributedArray[T]) LocalRange(node ID) (lo, hi int) { return d.topo.LocalRange(d.n, node) }

// LocalSlice returns direct access to node's resident block. The caller
// must not retain it past the array's next structural change (there is
// none post-construction for the graphs this package backs).
func (d *DistributedArray[T]) LocalSlice(node ID) []T {
	lo, hi := d.LocalRange(node)
	return d.data[lo:hi]
}

// At returns the value at index i.
func (d *DistributedArray[T]) At(i int) T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.data[i]
}

// Set writes the value at index i.
func (d *DistributedArray[T]) Set(i int, v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data[i] = v
}

// Fill sets every element to v.
func (d *DistributedArray[T]) Fill(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.data {
		d.data[i] = v
	}
}

// Snapshot returns a copy of the full logical array, gathering every
// node's block into one slice — the distributed equivalent of a
// replicate-to-caller read.
func (d *DistributedArray[T]) Snapshot() []T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]T, len(d.data))
	copy(out, d.data)
	return out
}

// Assign copies every element of src into d. The two arrays must be
// conformant: same length and topology.
func (d *DistributedArray[T]) Assign(src *DistributedArray[T]) {
	if src.n != d.n {
		panic("locale: Assign requires conformant arrays")
	}
	srcSnap := src.Snapshot()
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.data, srcSnap)
}

// ScanSum returns a new slice holding the inclusive prefix sum of vals, in
// ascending index order; vals itself is not modified.
func ScanSum(vals []int) []int {
	out := make([]int, len(vals))
	sum := 0
	for i, v := range vals {
		sum += v
		out[i] = sum
	}
	return out
}
