// Package aggregate implements the destination-side buffered communicator
// of spec §4.2: a per-task Aggregator that coalesces many small put(dstNode,
// value) operations into few large remote transfers, amortizing the
// per-message latency a one-sided put would otherwise pay on every call.
package aggregate

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

// ErrRemoteBufferAlloc is returned when a per-destination scratch buffer
// cannot be allocated — fatal to the BFS call that triggered it (spec §7).
var ErrRemoteBufferAlloc = errors.New("aggregate: remote buffer allocation failed")

// Sink is the destination-side half of an aggregator: it applies a flushed
// batch of values, arriving in bulk at node `at`, to local state.
type Sink[T any] interface {
	Consume(at int, values []T)
}

// Aggregator is held by exactly one task for the duration of one BFS round.
// It is not safe for concurrent use by multiple goroutines — callers give
// each parallel task its own instance, matching spec §4.5's "one aggregator
// per task".
type Aggregator[T any] struct {
	cfg   Config
	sink  Sink[T]
	log   zerolog.Logger
	lBuf  [][]T
	idx   []int
	yield int
}

// New allocates an aggregator with one scratch buffer per destination node.
// n is the number of destination nodes (locales) the aggregator may target.
func New[T any](n int, sink Sink[T], cfg Config, log zerolog.Logger) (*Aggregator[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: non-positive destination count %d", ErrRemoteBufferAlloc, n)
	}
	if cfg.BufferCapacity <= 0 {
		return nil, fmt.Errorf("%w: non-positive buffer capacity %d", ErrRemoteBufferAlloc, cfg.BufferCapacity)
	}
	if cfg.YieldFrequency <= 0 {
		return nil, fmt.Errorf("%w: non-positive yield frequency %d", ErrRemoteBufferAlloc, cfg.YieldFrequency)
	}
	a := &Aggregator[T]{
		cfg:   cfg,
		sink:  sink,
		log:   log,
		lBuf:  make([][]T, n),
		idx:   make([]int, n),
		yield: cfg.YieldFrequency,
	}
	for i := range a.lBuf {
		a.lBuf[i] = make([]T, cfg.BufferCapacity)
	}
	return a, nil
}

// Put enqueues v for destination node dst. When dst's buffer fills, Put
// ships it as a single bulk transfer and has the sink consume it; otherwise
// it decrements the yield counter and, on reaching zero, yields the
// goroutine so sibling tasks on this node get a chance to drain buffers
// targeted at them (spec §4.2, §5 — the deadlock-avoidance measure).
func (a *Aggregator[T]) Put(dst int, v T) {
	buf := a.lBuf[dst]
	buf[a.idx[dst]] = v
	a.idx[dst]++
	if a.idx[dst] == len(buf) {
		a.flushOne(dst)
		return
	}
	a.yield--
	if a.yield == 0 {
		runtime.Gosched()
		a.yield = a.cfg.YieldFrequency
	}
}

// flushOne ships dst's buffer, if non-empty, as one bulk transfer.
func (a *Aggregator[T]) flushOne(dst int) {
	n := a.idx[dst]
	if n == 0 {
		return
	}
	batch := make([]T, n)
	copy(batch, a.lBuf[dst][:n])
	a.log.Debug().Int("dst", dst).Int("count", n).Msg("aggregator flush")
	a.sink.Consume(dst, batch)
	a.idx[dst] = 0
}

// Flush drains every non-empty destination buffer. After Flush returns,
// every (dst,v) previously Put has been applied at dst (spec §4.2's
// conservation invariant).
func (a *Aggregator[T]) Flush() {
	for dst := range a.lBuf {
		a.flushOne(dst)
	}
}
