package graph

import "errors"

// Error taxonomy per spec §7. ConstructionError and ArgumentError are things
// an embedder can trigger by misuse and are always returned, never panicked.
// InvariantViolation indicates a builder bug; Build returns it as an error
// too rather than panicking, since an embedder may want to report it rather
// than crash.
var (
	ErrConstruction       = errors.New("graph: construction error")
	ErrInvariantViolation = errors.New("graph: invariant violation")
	ErrArgument           = errors.New("graph: argument error")
)
