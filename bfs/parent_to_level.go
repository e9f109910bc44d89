package bfs

import "github.com/tingshowliu/distbfs/locale"

// ParentToLevel re-derives a level array from a parent array by running a
// second BFS seeded at source, discovering frontiers in breadth order from
// the parent-induced tree (spec §4.5). Used to check P2: parentToLevel
// ∘ bfsParent == bfsLevel, pointwise.
func ParentToLevel(parent *locale.DistributedArray[int], source int) *locale.DistributedArray[int] {
	v := parent.Len()
	level := locale.NewDistributedArray[int](parent.Topo(), v)
	if v == 0 {
		return level
	}
	level.Fill(-1)

	children := make([][]int, v)
	for u := 0; u < v; u++ {
		p := parent.At(u)
		if p == -1 || u == source {
			continue
		}
		children[p] = append(children[p], u)
	}

	level.Set(source, 0)
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		lu := level.At(u)
		for _, c := range children[u] {
			level.Set(c, lu+1)
			queue = append(queue, c)
		}
	}
	return level
}
