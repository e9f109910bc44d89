package bfs

import "github.com/tingshowliu/distbfs/locale"

// childParent is the ParentSink payload of spec §4.2: an arc's destination
// vertex paired with the discoverer that is offering to be its parent.
type childParent struct {
	Child  int
	Parent int
}

// levelSink implements aggregate.Sink[int]: on arrival, every id in a
// flushed batch is pushed onto the receiving node's next-level frontier.
// Duplicates are tolerated here and filtered later, at dequeue, by the
// visited bitmap (spec §4.2).
type levelSink struct {
	rs      *runState
	nextIdx int
}

func (s *levelSink) Consume(at int, values []int) {
	s.rs.nodes[at].frontiers[s.nextIdx].pushAll(values)
}

// parentSink implements aggregate.Sink[childParent]: the atomic
// test-and-set on visited[child] happens here, at the receiving side, so
// the parent write happens at most once and always on child's owner
// (spec §4.2).
type parentSink struct {
	rs      *runState
	nextIdx int
	visited *visitedSet
	parent  *locale.DistributedArray[int]
}

func (s *parentSink) Consume(at int, values []childParent) {
	var won []int
	for _, cp := range values {
		if s.visited.TestAndSet(cp.Child) {
			continue
		}
		s.parent.Set(cp.Child, cp.Parent)
		won = append(won, cp.Child)
	}
	s.rs.nodes[at].frontiers[s.nextIdx].pushAll(won)
}
