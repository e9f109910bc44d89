package bfs

import (
	"context"
	"fmt"

	"github.com/tingshowliu/distbfs/graph"
	"github.com/tingshowliu/distbfs/internal/bitutil"
)

// BFSLevelReference is the non-aggregated single-locale level BFS of spec
// §4.5: same frontier shape as BFSLevel, but visited is a plain atomic
// bitset and every discovered vertex is written directly — no destination
// buffering. This is the ground truth BFSLevel must agree with.
func BFSLevelReference(ctx context.Context, g *graph.VertexCentricGraph, source int) ([]int, error) {
	v := g.NumVertices()
	level := make([]int, v)
	for i := range level {
		level[i] = -1
	}
	if v == 0 {
		return level, nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("%w: source %d out of [0,%d)", ErrArgument, source, v)
	}

	visited := bitutil.NewBitset(v)
	visited.TestAndSet(source)
	level[source] = 0

	fa := func(_, v int) bool { return !visited.TestAndSet(v) }
	cond := func(v int) bool { return !visited.Test(v) }
	engine := newEdgeMapEngine(g, fa, cond)

	frontier := newSparseSubset([]int{source})
	curLevel := 0
	for frontier.size() > 0 {
		curLevel++
		next, err := engine.run(ctx, frontier)
		if err != nil {
			return nil, err
		}
		for _, u := range next.toSeq() {
			level[u] = curLevel
		}
		frontier = next
	}
	return level, nil
}

// BFSParentReference is the non-aggregated single-locale parent BFS of
// spec §4.5, the ground truth BFSParent must agree with. The winner of a
// race to claim a child is still decided by the atomic test-and-set on
// visited, matching the receiving-side decision aggregation makes.
func BFSParentReference(ctx context.Context, g *graph.VertexCentricGraph, source int) ([]int, error) {
	v := g.NumVertices()
	parent := make([]int, v)
	for i := range parent {
		parent[i] = -1
	}
	if v == 0 {
		return parent, nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("%w: source %d out of [0,%d)", ErrArgument, source, v)
	}

	visited := bitutil.NewBitset(v)
	visited.TestAndSet(source)
	parent[source] = source

	fa := func(u, v int) bool {
		if visited.TestAndSet(v) {
			return false
		}
		parent[v] = u
		return true
	}
	cond := func(v int) bool { return !visited.Test(v) }
	engine := newEdgeMapEngine(g, fa, cond)

	frontier := newSparseSubset([]int{source})
	for frontier.size() > 0 {
		next, err := engine.run(ctx, frontier)
		if err != nil {
			return nil, err
		}
		frontier = next
	}
	return parent, nil
}
