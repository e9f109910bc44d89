package mtxio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCoordinate parses the Matrix Market coordinate format spec §6 names
// as the engine's external input: leading '%' comment lines are skipped,
// the first remaining line gives "rows cols entries", and each following
// line gives either "u v" (unweighted) or "u v w" (weighted — the weight is
// read and discarded, since this engine's BFS kernels are unweighted).
func ReadCoordinate(r io.Reader, opts ...Option) (src, dst []int64, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	entries := 0
	headerSeen := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, nil, fmt.Errorf("%w: header line %q does not carry rows cols entries", ErrFormat, line)
		}
		entries, err = strconv.Atoi(fields[2])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: header entries count %q: %v", ErrFormat, fields[2], err)
		}
		o.log.Debug().Str("rows", fields[0]).Str("cols", fields[1]).Int("entries", entries).Msg("matrix market header")
		headerSeen = true
		break
	}
	if !headerSeen {
		return nil, nil, fmt.Errorf("%w: no header line found", ErrFormat)
	}

	src = make([]int64, 0, entries)
	dst = make([]int64, 0, entries)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%w: entry line %q has fewer than 2 fields", ErrFormat, line)
		}
		u, perr := strconv.ParseInt(fields[0], 10, 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: entry source %q: %v", ErrFormat, fields[0], perr)
		}
		v, perr := strconv.ParseInt(fields[1], 10, 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: entry destination %q: %v", ErrFormat, fields[1], perr)
		}
		src = append(src, u)
		dst = append(dst, v)
	}
	if serr := sc.Err(); serr != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFormat, serr)
	}
	if len(src) != entries {
		return nil, nil, fmt.Errorf("%w: header declared %d entries, found %d", ErrFormat, entries, len(src))
	}
	return src, dst, nil
}
