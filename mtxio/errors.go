// Package mtxio implements the engine's external input readers: the
// Matrix Market coordinate format spec §6 names as the benchmark driver's
// interface, plus the teacher's binary CSR formats kept as an additional
// loader convenience (spec §3, "Supplemented features").
package mtxio

import "errors"

// ErrFormat reports malformed input: a missing or unparseable header,
// a short line, a byte-count mismatch. Always returned, never panicked —
// file parsing is a boundary the caller controls (spec §7).
var ErrFormat = errors.New("mtxio: malformed input")
