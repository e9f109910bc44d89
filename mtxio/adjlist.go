package mtxio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadAdjList parses one-line-per-source adjacency-list text ("u v1 v2
// ...") into (src,dst) arc pairs, the shape graph.Builder.Build consumes.
// Adapted from the teacher's graphutils.ReadAdjList, which built a [][]int
// directly and panicked on a malformed token; here malformed input is a
// returned error instead (spec §7: "no error is silently swallowed").
func ReadAdjList(r io.Reader) (src, dst []int64, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tok := strings.Fields(line)
		u, perr := strconv.ParseInt(tok[0], 10, 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: source vertex %q: %v", ErrFormat, tok[0], perr)
		}
		for _, s := range tok[1:] {
			v, perr := strconv.ParseInt(s, 10, 64)
			if perr != nil {
				return nil, nil, fmt.Errorf("%w: neighbor %q of vertex %d: %v", ErrFormat, s, u, perr)
			}
			src = append(src, u)
			dst = append(dst, v)
		}
	}
	if serr := sc.Err(); serr != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFormat, serr)
	}
	return src, dst, nil
}
