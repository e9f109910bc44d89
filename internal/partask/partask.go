// Package partask is the per-node parallel tasking runtime described in
// spec §5: BFS inner loops over local frontier elements are task-parallel,
// bounded by the node's CPU count rather than one goroutine per element.
//
// It generalizes the teacher's parlay_go helpers (Append, PackIndex) and the
// raw sync.WaitGroup fan-out in ligra_light[_parallel].go's VertexSubset.Apply
// into a single bounded, error-propagating primitive backed by
// golang.org/x/sync/errgroup.
package partask

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workers returns the task-group width for n units of work: one goroutine
// per logical CPU available to this process — narrowed to the scheduler
// affinity mask's count where the kernel exposes one, since that can be
// tighter than GOMAXPROCS under a cgroup CPU quota — but never more than
// the work available.
func workers(n int) int {
	w := runtime.GOMAXPROCS(0)
	if quota, ok := cpuQuota(); ok && quota > 0 && quota < w {
		w = quota
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Group runs fn(i) for each i in [0,n), bounded to one task per CPU, and
// returns the first error encountered (cancelling the rest via ctx).
func Group(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(n))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return fn(gctx, i) })
	}
	return g.Wait()
}

// Chunks splits vals into one contiguous chunk per task and runs fn over
// each chunk in parallel. This is the shape the BFS kernels use: one
// aggregator per task, the task owning a contiguous slice of the frontier
// for the duration of a round.
func Chunks(ctx context.Context, vals []int, fn func(ctx context.Context, chunk []int) error) error {
	n := len(vals)
	if n == 0 {
		return nil
	}
	w := workers(n)
	size := (n + w - 1) / w
	return Group(ctx, w, func(ctx context.Context, t int) error {
		lo := t * size
		hi := lo + size
		if hi > n {
			hi = n
		}
		if lo >= hi {
			return nil
		}
		return fn(ctx, vals[lo:hi])
	})
}

// Append copies src into dst in parallel chunks, mirroring the teacher's
// parlay_go.Append.
func Append(ctx context.Context, src, dst []int) error {
	n := len(src)
	if n == 0 {
		return nil
	}
	w := workers(n)
	size := (n + w - 1) / w
	return Group(ctx, w, func(_ context.Context, t int) error {
		lo := t * size
		hi := lo + size
		if hi > n {
			hi = n
		}
		if lo >= hi {
			return nil
		}
		copy(dst[lo:hi], src[lo:hi])
		return nil
	})
}

// PackIndex returns, in ascending order, the indices of the set entries of
// dense, computed in parallel chunks. Mirrors the teacher's
// parlay_go.PackIndex.
func PackIndex(ctx context.Context, dense []bool) ([]int, error) {
	n := len(dense)
	if n == 0 {
		return nil, nil
	}
	w := workers(n)
	size := (n + w - 1) / w
	locals := make([][]int, w)
	err := Group(ctx, w, func(_ context.Context, t int) error {
		lo := t * size
		hi := lo + size
		if hi > n {
			hi = n
		}
		if lo >= hi {
			return nil
		}
		var local []int
		for i := lo; i < hi; i++ {
			if dense[i] {
				local = append(local, i)
			}
		}
		locals[t] = local
		return nil
	})
	if err != nil {
		return nil, err
	}
	total := 0
	for _, l := range locals {
		total += len(l)
	}
	out := make([]int, 0, total)
	for _, l := range locals {
		out = append(out, l...)
	}
	return out, nil
}
