package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortSrcDstIsLexicographic(t *testing.T) {
	src := []int64{5, -3, 5, 0, -3, 2}
	dst := []int64{1, 9, -1, 0, 2, 2}

	outSrc, outDst := sortSrcDst(src, dst)
	for i := 1; i < len(outSrc); i++ {
		if outSrc[i] == outSrc[i-1] {
			assert.LessOrEqual(t, outDst[i-1], outDst[i])
		} else {
			assert.Less(t, outSrc[i-1], outSrc[i])
		}
	}

	// Conservation: same multiset of pairs, just reordered.
	type pair struct{ s, d int64 }
	before := make([]pair, len(src))
	after := make([]pair, len(outSrc))
	for i := range src {
		before[i] = pair{src[i], dst[i]}
		after[i] = pair{outSrc[i], outDst[i]}
	}
	sort.Slice(before, func(i, j int) bool {
		if before[i].s != before[j].s {
			return before[i].s < before[j].s
		}
		return before[i].d < before[j].d
	})
	sort.Slice(after, func(i, j int) bool {
		if after[i].s != after[j].s {
			return after[i].s < after[j].s
		}
		return after[i].d < after[j].d
	})
	assert.Equal(t, before, after)
}

func TestSortSrcDstEmpty(t *testing.T) {
	outSrc, outDst := sortSrcDst(nil, nil)
	assert.Empty(t, outSrc)
	assert.Empty(t, outDst)
}

func TestPassesForRoundsUpToKnownCounts(t *testing.T) {
	assert.Equal(t, 4, passesFor(1))
	assert.Equal(t, 4, passesFor(64))
	assert.Equal(t, 8, passesFor(65))
	assert.Equal(t, 16, passesFor(129))
}
