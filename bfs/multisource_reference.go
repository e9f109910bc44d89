package bfs

import "github.com/tingshowliu/distbfs/graph"

// SeedArrival records that a seed reached a vertex at a given round,
// mirroring the teacher's Sentry — renamed since "sentry" described the
// C++ origin's role, not what the value holds.
type SeedArrival struct {
	Seed, Round int
}

// MultiSourceBFSReference is the sequential, unbounded ground truth for
// MultiSourceBFS, adapted from the teacher's SequentialBFS: for every seed
// independently it tracks the shortest distance to each vertex, folding
// the per-seed minimum into an overall nearest-seed distance, and records
// every seed's arrival round at every vertex it reaches.
func MultiSourceBFSReference(g *graph.VertexCentricGraph, seeds []int) (dist []int, arrivals [][]SeedArrival) {
	n := g.NumVertices()
	const inf = 1 << 30

	dist = make([]int, n)
	for i := range dist {
		dist[i] = inf
	}
	arrivals = make([][]SeedArrival, n)

	distBySeed := make([][]int, len(seeds))
	for si := range seeds {
		distBySeed[si] = make([]int, n)
		for v := range distBySeed[si] {
			distBySeed[si][v] = inf
		}
	}

	type item struct{ v, si, d int }
	queue := make([]item, 0, n)

	for si, s := range seeds {
		distBySeed[si][s] = 0
		if dist[s] > 0 {
			dist[s] = 0
		}
		arrivals[s] = append(arrivals[s], SeedArrival{Seed: si, Round: 0})
		queue = append(queue, item{s, si, 0})
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		nd := cur.d + 1
		for _, v := range g.Neighbors(cur.v) {
			if nd < distBySeed[cur.si][v] {
				distBySeed[cur.si][v] = nd
				if nd < dist[v] {
					dist[v] = nd
				}
				arrivals[v] = append(arrivals[v], SeedArrival{Seed: cur.si, Round: nd})
				queue = append(queue, item{v, cur.si, nd})
			}
		}
	}

	for v := range dist {
		if dist[v] == inf {
			dist[v] = -1
		}
	}
	return dist, arrivals
}
