package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRangeCoversLengthExactly(t *testing.T) {
	topo := NewTopology(4)
	const length = 13 // not evenly divisible by 4

	total := 0
	prevHi := 0
	for n := 0; n < topo.N(); n++ {
		lo, hi := topo.LocalRange(length, ID(n))
		assert.Equal(t, prevHi, lo, "blocks must be contiguous")
		assert.GreaterOrEqual(t, hi, lo)
		total += hi - lo
		prevHi = hi
	}
	assert.Equal(t, length, total)
	assert.Equal(t, length, prevHi)
}

func TestLocalRangeBlockSizesDifferByAtMostOne(t *testing.T) {
	topo := NewTopology(5)
	const length = 23

	sizes := make([]int, topo.N())
	for n := 0; n < topo.N(); n++ {
		lo, hi := topo.LocalRange(length, ID(n))
		sizes[n] = hi - lo
	}
	minS, maxS := sizes[0], sizes[0]
	for _, s := range sizes {
		if s < minS {
			minS = s
		}
		if s > maxS {
			maxS = s
		}
	}
	assert.LessOrEqual(t, maxS-minS, 1)
}

func TestOwnerOfAgreesWithLocalRange(t *testing.T) {
	topo := NewTopology(4)
	const length = 37

	for i := 0; i < length; i++ {
		owner, ok := topo.OwnerOf(length, i)
		require.True(t, ok)
		lo, hi := topo.LocalRange(length, owner)
		assert.True(t, i >= lo && i < hi, "owner's range must bracket i=%d", i)
	}
}

func TestZeroLengthArrayHasNoOwner(t *testing.T) {
	topo := NewTopology(4)
	_, ok := topo.OwnerOf(0, 0)
	assert.False(t, ok)
	for n := 0; n < topo.N(); n++ {
		lo, hi := topo.LocalRange(0, ID(n))
		assert.Equal(t, 0, lo)
		assert.Equal(t, 0, hi)
	}
}

func TestArrayShorterThanTopologyLeavesNodesEmpty(t *testing.T) {
	topo := NewTopology(8)
	const length = 3

	nonEmpty := 0
	for n := 0; n < topo.N(); n++ {
		lo, hi := topo.LocalRange(length, ID(n))
		if hi > lo {
			nonEmpty++
		}
	}
	assert.Equal(t, length, nonEmpty)
}

func TestDistributedArrayAtSetRoundTrip(t *testing.T) {
	topo := NewTopology(3)
	arr := NewDistributedArray[int](topo, 10)
	arr.Fill(-1)
	for i := 0; i < 10; i++ {
		arr.Set(i, i*i)
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, i*i, arr.At(i))
	}
}

func TestDistributedArrayAssignRequiresConformant(t *testing.T) {
	topo := NewTopology(2)
	a := NewDistributedArray[int](topo, 5)
	b := NewDistributedArray[int](topo, 6)
	assert.Panics(t, func() { a.Assign(b) })
}
