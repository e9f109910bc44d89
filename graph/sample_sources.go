package graph

import (
	"math/rand/v2"
	"sort"
)

// SampleSources draws up to k batches of setSize candidate BFS source
// vertices ("one-hop stars": a random center with at least setSize
// neighbors plus setSize-1 of those neighbors), adapted from the teacher's
// graphutils.SelectSeeds1. Fewer than k batches are returned when fewer
// than k vertices have degree at least setSize. It is not
// part of the External API spec.md names, but a natural companion for an
// embedder picking trial sources for repeated BFS runs.
func SampleSources(g *VertexCentricGraph, k, setSize int) [][]int {
	n := g.NumVertices()
	if n == 0 || k <= 0 || setSize <= 0 {
		return nil
	}

	ord := rand.Perm(n)
	getOrder := make([]int, n)
	for i, v := range ord {
		getOrder[v] = i
	}

	var candidates []int
	for _, v := range ord {
		if len(g.Neighbors(v)) >= setSize {
			candidates = append(candidates, v)
		}
	}

	batches := make([][]int, 0, k)
	for _, center := range candidates {
		if len(batches) == k {
			break
		}
		batch := make([]int, 0, setSize)
		batch = append(batch, center)

		neigh := append([]int(nil), g.Neighbors(center)...)
		sort.Slice(neigh, func(i, j int) bool {
			return getOrder[neigh[i]] < getOrder[neigh[j]]
		})
		for _, u := range neigh {
			if u == center {
				continue
			}
			batch = append(batch, u)
			if len(batch) == setSize {
				break
			}
		}
		for len(batch) < setSize {
			batch = append(batch, center)
		}
		batches = append(batches, batch)
	}
	return batches
}
