package graph

import "github.com/tingshowliu/distbfs/locale"

// symmetrize concatenates (src,dst) with its reverse (dst,src), producing
// the undirected arc set of spec §4.3 step 1.
func symmetrize(src, dst []int64) (outSrc, outDst []int64) {
	n := len(src)
	outSrc = make([]int64, 2*n)
	outDst = make([]int64, 2*n)
	copy(outSrc[:n], src)
	copy(outSrc[n:], dst)
	copy(outDst[:n], dst)
	copy(outDst[n:], src)
	return
}

// removeSelfLoops drops indices where src[i] == dst[i], using a boolean
// mask and a prefix-sum compaction as spec §4.3 step 3 prescribes.
func removeSelfLoops(src, dst []int64) (outSrc, outDst []int64) {
	n := len(src)
	truth := make([]bool, n)
	cnt := 0
	for i := 0; i < n; i++ {
		if src[i] != dst[i] {
			truth[i] = true
			cnt++
		}
	}
	iv := make([]int, n)
	sum := 0
	for i := 0; i < n; i++ {
		if truth[i] {
			sum++
		}
		iv[i] = sum
	}
	outSrc = make([]int64, cnt)
	outDst = make([]int64, cnt)
	for i := 0; i < n; i++ {
		if truth[i] {
			outSrc[iv[i]-1] = src[i]
			outDst[iv[i]-1] = dst[i]
		}
	}
	return
}

// dedupe retains the first index of each run of equal (src,dst) tuples in
// an already-sorted sequence, again via mask-plus-prefix-sum compaction
// (spec §4.3 step 4).
func dedupe(src, dst []int64) (outSrc, outDst []int64) {
	n := len(src)
	if n == 0 {
		return append([]int64(nil), src...), append([]int64(nil), dst...)
	}
	truth := make([]bool, n)
	truth[0] = true
	cnt := 1
	for i := 1; i < n; i++ {
		if src[i] != src[i-1] || dst[i] != dst[i-1] {
			truth[i] = true
			cnt++
		}
	}
	iv := make([]int, n)
	sum := 0
	for i := 0; i < n; i++ {
		if truth[i] {
			sum++
		}
		iv[i] = sum
	}
	outSrc = make([]int64, cnt)
	outDst = make([]int64, cnt)
	for i := 0; i < n; i++ {
		if truth[i] {
			outSrc[iv[i]-1] = src[i]
			outDst[iv[i]-1] = dst[i]
		}
	}
	return
}

// buildVertexMapper computes the sorted, duplicate-free set of every value
// appearing in src or dst — the vertexMapper of spec §3, built by the same
// radix-sort machinery as the main edge sort rather than a separate
// algorithm.
func buildVertexMapper(src, dst []int64) []int64 {
	n := len(src)
	combined := make([]int64, n+len(dst))
	copy(combined, src)
	copy(combined[n:], dst)

	if len(combined) == 0 {
		return nil
	}

	perm := make([]int, len(combined))
	for i := range perm {
		perm[i] = i
	}
	keys := make([]uint64, len(combined))
	for i, v := range combined {
		keys[i] = signAdjustedKey(v)
	}
	passes := passesFor(combinedBitWidth(combined, nil))
	perm = radixSortPerm(keys, perm, passes)

	mapper := make([]int64, 0, len(combined))
	for i, idx := range perm {
		v := combined[idx]
		if i == 0 || v != mapper[len(mapper)-1] {
			mapper = append(mapper, v)
		}
	}
	return mapper
}

// internalOf binary-searches the strictly increasing vertexMapper for
// external, returning its internal id.
func internalOf(mapper []int64, external int64) (int, bool) {
	lo, hi := 0, len(mapper)
	for lo < hi {
		mid := (lo + hi) / 2
		if mapper[mid] < external {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(mapper) && mapper[lo] == external {
		return lo, true
	}
	return 0, false
}

// renumber substitutes each external label in vals with its internal id
// from mapper. Every value in vals is required to appear in mapper; a miss
// indicates a builder bug (mapper was not built from a superset of vals).
func renumber(vals []int64, mapper []int64) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		idx, ok := internalOf(mapper, v)
		if !ok {
			panic("graph: renumber: value absent from vertex mapper")
		}
		out[i] = idx
	}
	return out
}

// buildSeg computes the CSR offset array from a renumbered, source-sorted
// src array: seg[0]=0, seg[u+1]-seg[u] is u's out-degree (spec §4.3 step 6).
func buildSeg(intSrc []int, v int) []int {
	seg := make([]int, v+1)
	for _, u := range intSrc {
		seg[u+1]++
	}
	for u := 0; u < v; u++ {
		seg[u+1] += seg[u]
	}
	return seg
}

// EdgeRange is one node's contribution to edgeRangesPerLocale: the range of
// internal source vertex ids whose arcs fall in that node's edge block
// (spec §4.3 step 7), or (-1,-1) if the node's block is empty.
type EdgeRange struct {
	Lo   int
	Node locale.ID
	Hi   int
}

// buildEdgeRanges computes, for every locale, the range of internal source
// ids its edge block covers.
func buildEdgeRanges(intSrc []int, topo locale.Topology) []EdgeRange {
	ranges := make([]EdgeRange, topo.N())
	for node := 0; node < topo.N(); node++ {
		lo, hi := topo.LocalRange(len(intSrc), locale.ID(node))
		if lo >= hi {
			ranges[node] = EdgeRange{Lo: -1, Node: locale.ID(node), Hi: -1}
			continue
		}
		ranges[node] = EdgeRange{Lo: intSrc[lo], Node: locale.ID(node), Hi: intSrc[hi-1]}
	}
	return ranges
}

// validateCSR checks the result invariants spec §4.3 requires: seg starts
// at zero, is non-decreasing, and seg[V] equals the arc count.
func validateCSR(seg []int, e int) error {
	v := len(seg) - 1
	if v < 0 {
		return nil
	}
	if seg[0] != 0 {
		return wrapInvariant("seg[0] != 0")
	}
	for u := 0; u < v; u++ {
		if seg[u] > seg[u+1] {
			return wrapInvariant("seg is not non-decreasing")
		}
	}
	if seg[v] != e {
		return wrapInvariant("seg[V] != E")
	}
	return nil
}

func wrapInvariant(msg string) error {
	return &invariantError{msg: msg}
}

type invariantError struct{ msg string }

func (e *invariantError) Error() string { return "graph: invariant violation: " + e.msg }

func (e *invariantError) Unwrap() error { return ErrInvariantViolation }
