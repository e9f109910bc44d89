// Package bfs implements the distributed BFS kernels of spec §4.5: two
// vertex-centric variants (level, parent) with destination-side
// aggregation, plus non-aggregated single-locale reference kernels that
// define ground truth.
package bfs

import (
	"context"
	"fmt"

	"github.com/tingshowliu/distbfs/aggregate"
	"github.com/tingshowliu/distbfs/graph"
	"github.com/tingshowliu/distbfs/internal/partask"
	"github.com/tingshowliu/distbfs/locale"
)

// BFSLevel is the distributed level BFS with aggregation (spec §4.5): the
// returned array holds each vertex's distance from source, or -1 if
// unreached.
func BFSLevel(ctx context.Context, g *graph.VertexCentricGraph, source int, opts ...Option) (*locale.DistributedArray[int], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := g.NumVertices()
	level := locale.NewDistributedArray[int](g.Topo, v)
	if v == 0 {
		return level, nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("%w: source %d out of [0,%d)", ErrArgument, source, v)
	}

	level.Fill(-1)
	visited := newVisitedSet(g.Topo, v)
	rs := newRunState(g.Topo.N())

	srcOwner := g.OwnerOf(source)
	rs.nodes[srcOwner].frontiers[0].push(source)

	curIdx := 0
	curLevel := 0
	for rs.totalFrontierSize(curIdx) > 0 {
		nextIdx := 1 - curIdx
		sink := &levelSink{rs: rs, nextIdx: nextIdx}

		err := partask.Group(ctx, g.Topo.N(), func(ctx context.Context, n int) error {
			vals := rs.nodes[n].frontiers[curIdx].drain()
			return partask.Chunks(ctx, vals, func(ctx context.Context, chunk []int) error {
				agg, err := aggregate.New[int](g.Topo.N(), sink, o.cfg, o.log)
				if err != nil {
					return err
				}
				for _, u := range chunk {
					if visited.TestAndSet(u) {
						continue
					}
					level.Set(u, curLevel)
					for _, nb := range g.Neighbors(u) {
						agg.Put(int(g.OwnerOf(nb)), nb)
					}
				}
				agg.Flush()
				return nil
			})
		})
		if err != nil {
			return nil, err
		}

		o.log.Debug().Int("level", curLevel).Int("frontier", rs.totalFrontierSize(nextIdx)).Msg("bfs level round")
		curIdx = nextIdx
		curLevel++
	}
	return level, nil
}
