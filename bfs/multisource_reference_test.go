package bfs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultiSourceBFSAgreesWithinRadius checks that MultiSourceBFS's bounded
// distances agree with the unbounded sequential reference for every vertex
// the reference itself places within radius.
func TestMultiSourceBFSAgreesWithinRadius(t *testing.T) {
	src := []int64{0, 1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 8, 9, 9, 10, 10, 10, 9}
	dst := []int64{0, 2, 3, 4, 4, 5, 9, 6, 7, 7, 8, 9, 9, 9, 11, 12, 15, 10}
	g := buildVCG(t, 3, src, dst)

	a, ok := g.InternalID(1)
	require.True(t, ok)
	b, ok := g.InternalID(9)
	require.True(t, ok)
	seeds := []int{a, b}
	radius := 3

	wantDist, _ := MultiSourceBFSReference(g, seeds)
	got, err := MultiSourceBFS(context.Background(), g, seeds, radius)
	require.NoError(t, err)

	for v := 0; v < g.NumVertices(); v++ {
		if wantDist[v] == -1 || wantDist[v] >= radius {
			continue
		}
		assert.Equal(t, uint64(wantDist[v]), got.Dist[v], "vertex %d", v)
	}
}
