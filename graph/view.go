package graph

// View is satisfied by both EdgeCentricGraph and VertexCentricGraph,
// backing the External API's numVertices/numEdges (spec §6).
type View interface {
	NumVertices() int
	NumEdges() int
}

// NumVertices returns V for either graph view.
func NumVertices(v View) int { return v.NumVertices() }

// NumEdges returns E for either graph view.
func NumEdges(v View) int { return v.NumEdges() }
