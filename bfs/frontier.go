package bfs

import "sync"

// frontier is one node's replicated frontier buffer (spec §4.5): written by
// many local tasks and by incoming sink callbacks from remote nodes, so it
// must be thread-safe. A plain mutex-guarded slice is the simplest
// implementation that satisfies that shared-resource policy.
type frontier struct {
	mu   sync.Mutex
	vals []int
}

func (f *frontier) push(v int) {
	f.mu.Lock()
	f.vals = append(f.vals, v)
	f.mu.Unlock()
}

func (f *frontier) pushAll(vs []int) {
	if len(vs) == 0 {
		return
	}
	f.mu.Lock()
	f.vals = append(f.vals, vs...)
	f.mu.Unlock()
}

// drain empties the frontier and returns what it held.
func (f *frontier) drain() []int {
	f.mu.Lock()
	vals := f.vals
	f.vals = nil
	f.mu.Unlock()
	return vals
}

func (f *frontier) size() int {
	f.mu.Lock()
	n := len(f.vals)
	f.mu.Unlock()
	return n
}

// nodeState is the per-locale replicated state a BFS call threads through
// the kernel: two alternating frontier buffers. spec §9 asks that this
// become an explicit field of a context value with one instance per node
// in a per-node registry, rather than a module-scope replicated global —
// runState below is that registry.
type nodeState struct {
	frontiers [2]*frontier
}

func newNodeState() *nodeState {
	return &nodeState{frontiers: [2]*frontier{{}, {}}}
}

// runState is the per-node registry for one BFS call. Two concurrent BFS
// calls must never share a runState (spec §9).
type runState struct {
	nodes []*nodeState
}

func newRunState(n int) *runState {
	nodes := make([]*nodeState, n)
	for i := range nodes {
		nodes[i] = newNodeState()
	}
	return &runState{nodes: nodes}
}

// totalFrontierSize sums the size of every node's frontier at idx — the
// global reduction the aggregated kernels use to detect termination.
func (r *runState) totalFrontierSize(idx int) int {
	total := 0
	for _, ns := range r.nodes {
		total += ns.frontiers[idx].size()
	}
	return total
}
