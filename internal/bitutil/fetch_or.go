// Package bitutil provides small atomic bit-manipulation primitives shared
// by the single-locale reference BFS kernels.
package bitutil

import "sync/atomic"

// FetchOr atomically ORs mask into *addr and returns once the update has
// taken effect, retrying under contention from concurrent writers.
func FetchOr(addr *uint64, mask uint64) {
	for {
		old := atomic.LoadUint64(addr)
		newVal := old | mask
		if atomic.CompareAndSwapUint64(addr, old, newVal) {
			return
		}
	}
}
