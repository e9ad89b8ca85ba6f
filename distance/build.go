// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"os"
)

// Build assigns identifiers to every city named in edges and returns the
// validated distance table.
//
// Stage 1: collect distinct names in first-seen order (From before To).
// Stage 2: write both directions of every edge; duplicates overwrite.
// Stage 3: Validate (completeness and symmetry).
//
// Complexity: O(E + N²).
func Build(edges []Edge) (*Table, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyInput
	}

	// Stage 1: name registry.
	var (
		names []string
		seen  = make(map[string]struct{})
	)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, e := range edges {
		add(e.From)
		add(e.To)
	}
	if len(names) > MaxCities {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyCities, len(names), MaxCities)
	}

	// Stage 2: symmetric fill.
	t := newTable(names)
	for _, e := range edges {
		a, b := t.index[e.From], t.index[e.To]
		if a == b {
			return nil, fmt.Errorf("line %d: %w: %q", e.Line, ErrSelfLoop, e.From)
		}
		t.put(a, b, e.Length)
	}

	// Stage 3: post-condition.
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Load reads and parses the edge file at path and builds its table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distance: open input: %w", err)
	}
	defer f.Close()

	edges, err := ParseEdges(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return Build(edges)
}

// FromMatrix builds a table from city names and a square distance matrix
// where rows[a][b] is the distance from names[a] to names[b]. The diagonal
// must be zero. It is the constructor for tables that do not come from text,
// including the single-city table that no edge list can express.
//
// Errors: ErrEmptyInput, ErrTooManyCities, ErrMalformedLine (shape or
// duplicate/empty names), ErrSelfLoop (non-zero diagonal), ErrAsymmetric.
func FromMatrix(names []string, rows [][]Distance) (*Table, error) {
	n := len(names)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n > MaxCities {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyCities, n, MaxCities)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d names, %d rows", ErrMalformedLine, n, len(rows))
	}

	t := newTable(append([]string(nil), names...))
	if len(t.index) != n {
		return nil, fmt.Errorf("%w: duplicate city name", ErrMalformedLine)
	}
	var a, b int
	for a = 0; a < n; a++ {
		if names[a] == "" {
			return nil, fmt.Errorf("%w: empty city name at %d", ErrMalformedLine, a)
		}
		if len(rows[a]) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrMalformedLine, a, len(rows[a]), n)
		}
		if rows[a][a] != 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrSelfLoop, names[a], rows[a][a])
		}
		for b = 0; b < n; b++ {
			if a == b {
				continue
			}
			i := a*n + b
			t.w[i] = rows[a][b]
			t.known[i] = true
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}
