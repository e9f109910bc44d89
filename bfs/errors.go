package bfs

import "errors"

// Error taxonomy per spec §7, scoped to the BFS kernels.
var (
	ErrArgument = errors.New("bfs: argument error")
)
