package graph

import "github.com/tingshowliu/distbfs/locale"

// EdgeCentricGraph is the CSR view of spec §3/§4.4: src, dst and seg all
// block-distributed by edge index, plus the replicated vertexMapper and
// edgeRangesPerLocale summary.
type EdgeCentricGraph struct {
	Topo   locale.Topology
	Src    []int
	Dst    []int
	Seg    []int
	Mapper []int64
	Ranges []EdgeRange
}

// NumVertices returns V, the length of the vertex mapper.
func (g *EdgeCentricGraph) NumVertices() int { return len(g.Mapper) }

// NumEdges returns E, the arc count.
func (g *EdgeCentricGraph) NumEdges() int { return len(g.Dst) }

// Neighbors returns u's neighbor slice, dst[seg[u]:seg[u+1]).
func (g *EdgeCentricGraph) Neighbors(u int) []int {
	return g.Dst[g.Seg[u]:g.Seg[u+1]]
}

// NeighborsLocal clips u's neighbor range to the portion resident on node,
// for callers iterating only the arcs whose source-index block lives there.
func (g *EdgeCentricGraph) NeighborsLocal(u int, node locale.ID) []int {
	lo, hi := g.Topo.LocalRange(len(g.Dst), node)
	start, end := g.Seg[u], g.Seg[u+1]
	if start < lo {
		start = lo
	}
	if end > hi {
		end = hi
	}
	if start >= end {
		return nil
	}
	return g.Dst[start:end]
}

// FindLocs returns every node whose edge block contains some portion of
// u's neighbor list. u may span multiple consecutive nodes.
func (g *EdgeCentricGraph) FindLocs(u int) []locale.ID {
	var locs []locale.ID
	for _, r := range g.Ranges {
		if r.Lo == -1 {
			continue
		}
		if u >= r.Lo && u <= r.Hi {
			locs = append(locs, r.Node)
		}
	}
	return locs
}

// ExternalID returns the external label for an internal vertex id.
func (g *EdgeCentricGraph) ExternalID(internal int) int64 { return g.Mapper[internal] }

// InternalID returns the internal id for an external label, if present.
func (g *EdgeCentricGraph) InternalID(external int64) (int, bool) {
	return internalOf(g.Mapper, external)
}
