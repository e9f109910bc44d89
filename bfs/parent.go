package bfs

import (
	"context"
	"fmt"

	"github.com/tingshowliu/distbfs/aggregate"
	"github.com/tingshowliu/distbfs/graph"
	"github.com/tingshowliu/distbfs/internal/partask"
	"github.com/tingshowliu/distbfs/locale"
)

// BFSParent is the distributed parent BFS with aggregation (spec §4.5): the
// returned array holds each vertex's BFS-tree parent, -1 if unreached, and
// source itself for source. Unlike BFSLevel, the winner is decided entirely
// at the receiving side — the sending side emits one (child,parent) pair
// per outgoing arc unconditionally.
func BFSParent(ctx context.Context, g *graph.VertexCentricGraph, source int, opts ...Option) (*locale.DistributedArray[int], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := g.NumVertices()
	parent := locale.NewDistributedArray[int](g.Topo, v)
	if v == 0 {
		return parent, nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("%w: source %d out of [0,%d)", ErrArgument, source, v)
	}

	parent.Fill(-1)
	visited := newVisitedSet(g.Topo, v)
	rs := newRunState(g.Topo.N())

	visited.TestAndSet(source)
	parent.Set(source, source)

	srcOwner := g.OwnerOf(source)
	rs.nodes[srcOwner].frontiers[0].push(source)

	curIdx := 0
	for rs.totalFrontierSize(curIdx) > 0 {
		nextIdx := 1 - curIdx
		sink := &parentSink{rs: rs, nextIdx: nextIdx, visited: visited, parent: parent}

		err := partask.Group(ctx, g.Topo.N(), func(ctx context.Context, n int) error {
			vals := rs.nodes[n].frontiers[curIdx].drain()
			return partask.Chunks(ctx, vals, func(ctx context.Context, chunk []int) error {
				agg, err := aggregate.New[childParent](g.Topo.N(), sink, o.cfg, o.log)
				if err != nil {
					return err
				}
				for _, u := range chunk {
					for _, nb := range g.Neighbors(u) {
						agg.Put(int(g.OwnerOf(nb)), childParent{Child: nb, Parent: u})
					}
				}
				agg.Flush()
				return nil
			})
		})
		if err != nil {
			return nil, err
		}

		o.log.Debug().Int("frontier", rs.totalFrontierSize(nextIdx)).Msg("bfs parent round")
		curIdx = nextIdx
	}
	return parent, nil
}
