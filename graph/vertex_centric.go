package graph

import (
	"context"
	"fmt"

	"github.com/tingshowliu/distbfs/internal/partask"
	"github.com/tingshowliu/distbfs/locale"
)

// VertexCentricGraph is the adjacency view of spec §3/§4.4: one neighbor
// list per vertex, block-distributed by vertex, so a vertex's entire
// adjacency is local to its single owner node. It holds its own copy of
// vertexMapper and never references the EdgeCentricGraph it was derived
// from (spec §9, "cycles in ownership: none required").
type VertexCentricGraph struct {
	Topo   locale.Topology
	Mapper []int64
	Adj    [][]int
}

// NewVertexCentricGraph derives a vertex-centric adjacency view from an
// edge-centric CSR graph: each vertex's CSR row becomes its own owned copy
// of its neighbor list.
func NewVertexCentricGraph(ctx context.Context, ecg *EdgeCentricGraph) (*VertexCentricGraph, error) {
	v := ecg.NumVertices()
	adj := make([][]int, v)
	err := partask.Group(ctx, v, func(_ context.Context, u int) error {
		nbrs := ecg.Neighbors(u)
		own := make([]int, len(nbrs))
		copy(own, nbrs)
		adj[u] = own
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph: deriving vertex-centric view: %w", err)
	}
	mapper := make([]int64, len(ecg.Mapper))
	copy(mapper, ecg.Mapper)
	return &VertexCentricGraph{Topo: ecg.Topo, Mapper: mapper, Adj: adj}, nil
}

// NumVertices returns V.
func (g *VertexCentricGraph) NumVertices() int { return len(g.Mapper) }

// NumEdges returns the total arc count across all adjacency lists.
func (g *VertexCentricGraph) NumEdges() int {
	m := 0
	for _, nbrs := range g.Adj {
		m += len(nbrs)
	}
	return m
}

// Neighbors returns a reference to u's local neighbor list.
func (g *VertexCentricGraph) Neighbors(u int) []int { return g.Adj[u] }

// OwnerOf returns the single node owning u's adjacency.
func (g *VertexCentricGraph) OwnerOf(u int) locale.ID {
	id, ok := g.Topo.OwnerOf(len(g.Adj), u)
	if !ok {
		panic(fmt.Sprintf("graph: OwnerOf: vertex %d out of range", u))
	}
	return id
}

// ExternalID returns the external label for an internal vertex id.
func (g *VertexCentricGraph) ExternalID(internal int) int64 { return g.Mapper[internal] }

// InternalID returns the internal id for an external label, if present.
func (g *VertexCentricGraph) InternalID(external int64) (int, bool) {
	return internalOf(g.Mapper, external)
}
