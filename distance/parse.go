// SPDX-License-Identifier: MIT

package distance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token positions in "<A> to <B> = <n>".
const (
	tokFrom = 0
	tokTo   = 2
	tokDist = 4

	lineTokens = 5
)

// ParseLine parses a single "<A> to <B> = <n>" line.
//
// Errors:
//   - ErrMalformedLine: token count is not 5, or the keywords are not "to" and "=".
//   - ErrBadDistance:   the distance is not a non-negative integer fitting in 32 bits.
//   - ErrSelfLoop:      A and B are the same city.
func ParseLine(line string) (Edge, error) {
	f := strings.Fields(line)
	if len(f) != lineTokens {
		return Edge{}, fmt.Errorf("%w: want %d tokens, got %d", ErrMalformedLine, lineTokens, len(f))
	}
	if f[1] != "to" || f[3] != "=" {
		return Edge{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	d, err := strconv.ParseUint(f[tokDist], 10, 32)
	if err != nil {
		return Edge{}, fmt.Errorf("%w: %q", ErrBadDistance, f[tokDist])
	}
	if f[tokFrom] == f[tokTo] {
		return Edge{}, fmt.Errorf("%w: %q", ErrSelfLoop, f[tokFrom])
	}

	return Edge{From: f[tokFrom], To: f[tokTo], Length: Distance(d)}, nil
}

// ParseEdges reads every edge from r. Blank lines are skipped; the first bad
// line aborts the parse with its 1-based line number attached.
func ParseEdges(r io.Reader) ([]Edge, error) {
	var (
		edges []Edge
		lineN int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineN++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		e, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineN, err)
		}
		e.Line = lineN
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("distance: read input: %w", err)
	}
	if len(edges) == 0 {
		return nil, ErrEmptyInput
	}

	return edges, nil
}
