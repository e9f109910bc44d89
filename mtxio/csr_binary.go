package mtxio

import (
	"encoding/binary"
	"fmt"
	"os"
)

// ReadCSRBinary loads the teacher's ad hoc binary CSR format, kept as a
// loader convenience alongside the spec-mandated Matrix Market reader
// (spec §3). Layout: n (uint64), m (uint64), sizes (uint64), then n+1
// uint64 offsets and m uint32 neighbor ids. Unlike the teacher's
// ReadGraphFromBin, a size mismatch is a returned error, not a silent
// zero-value return.
func ReadCSRBinary(path string, opts ...Option) (offsets []uint64, edges []uint32, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mtxio: open %s: %w", path, err)
	}
	defer f.Close()

	var n, m, sizes uint64
	if err = binary.Read(f, binary.LittleEndian, &n); err != nil {
		return nil, nil, fmt.Errorf("%w: reading n: %v", ErrFormat, err)
	}
	if err = binary.Read(f, binary.LittleEndian, &m); err != nil {
		return nil, nil, fmt.Errorf("%w: reading m: %v", ErrFormat, err)
	}
	if err = binary.Read(f, binary.LittleEndian, &sizes); err != nil {
		return nil, nil, fmt.Errorf("%w: reading sizes: %v", ErrFormat, err)
	}
	o.log.Debug().Uint64("n", n).Uint64("m", m).Uint64("sizes", sizes).Msg("csr binary header")

	expected := (n+1)*8 + m*4 + 3*8
	if sizes != expected {
		return nil, nil, fmt.Errorf("%w: declared size %d, expected %d", ErrFormat, sizes, expected)
	}

	offsets = make([]uint64, n+1)
	if err = binary.Read(f, binary.LittleEndian, &offsets); err != nil {
		return nil, nil, fmt.Errorf("%w: reading offsets: %v", ErrFormat, err)
	}

	edges = make([]uint32, m)
	if err = binary.Read(f, binary.LittleEndian, &edges); err != nil {
		return nil, nil, fmt.Errorf("%w: reading edges: %v", ErrFormat, err)
	}

	return offsets, edges, nil
}

// ReadBytePD loads the teacher's "bytepd" binary format: n (uint64), m
// (uint64), a per-vertex degree array (n uint64s), then m uint64 neighbor
// ids. CSR offsets are recovered from the degree array by prefix sum.
func ReadBytePD(path string, opts ...Option) (offsets []uint64, edges []uint64, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mtxio: open %s: %w", path, err)
	}
	defer f.Close()

	var n, m uint64
	if err = binary.Read(f, binary.LittleEndian, &n); err != nil {
		return nil, nil, fmt.Errorf("%w: reading n: %v", ErrFormat, err)
	}
	if err = binary.Read(f, binary.LittleEndian, &m); err != nil {
		return nil, nil, fmt.Errorf("%w: reading m: %v", ErrFormat, err)
	}
	o.log.Debug().Uint64("n", n).Uint64("m", m).Msg("bytepd header")

	degree := make([]uint64, n)
	if err = binary.Read(f, binary.LittleEndian, &degree); err != nil {
		return nil, nil, fmt.Errorf("%w: reading degree array: %v", ErrFormat, err)
	}

	offsets = make([]uint64, n+1)
	var sum uint64
	for i, d := range degree {
		offsets[i] = sum
		sum += d
	}
	offsets[n] = sum
	if sum != m {
		return nil, nil, fmt.Errorf("%w: degree array sums to %d, header declared m=%d", ErrFormat, sum, m)
	}

	edges = make([]uint64, m)
	if err = binary.Read(f, binary.LittleEndian, &edges); err != nil {
		return nil, nil, fmt.Errorf("%w: reading edges: %v", ErrFormat, err)
	}

	return offsets, edges, nil
}
