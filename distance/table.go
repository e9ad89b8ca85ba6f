// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
)

// MaxCities is the largest number of distinct cities a Table can hold;
// every identifier must fit in a CityID.
const MaxCities = math.MaxUint8 + 1

// CityID is a dense city identifier in [0, N).
type CityID uint8

// Distance is a leg or route length. Parsed legs fit in 32 bits, so the sum
// of up to MaxCities-1 legs never overflows.
type Distance uint64

// Infinity is larger than any reachable route length. It seeds minimization.
const Infinity Distance = math.MaxUint64

// Edge is one parsed input line.
type Edge struct {
	From   string
	To     string
	Length Distance
	Line   int // 1-based source line, 0 when not parsed from a reader
}

// Table is a complete symmetric distance table over N named cities.
// It is immutable once returned by Build.
//
// Storage follows the lvlath matrix.Dense layout: one flat row-major buffer
// indexed as row*n+col, with integer distances in place of float64 and a
// parallel presence slice instead of +Inf for missing entries.
//
// Every method except Leg accepts a nil *Table: accessors return zero
// values and checked methods return ErrNilTable.
type Table struct {
	n     int               // number of cities
	names []string          // names[id] = city name
	index map[string]CityID // name -> id
	w     []Distance        // row-major n×n, w[a*n+b]
	known []bool            // known[a*n+b] is set once (a,b) was written
}

// newTable allocates an empty table for the given names, in id order.
// Complexity: O(n²) time and memory.
func newTable(names []string) *Table {
	n := len(names)
	t := &Table{
		n:     n,
		names: names,
		index: make(map[string]CityID, n),
		w:     make([]Distance, n*n),
		known: make([]bool, n*n),
	}
	for i, name := range names {
		t.index[name] = CityID(i)
	}

	return t
}

// put writes both directions of an edge.
func (t *Table) put(a, b CityID, d Distance) {
	ia := int(a)*t.n + int(b)
	ib := int(b)*t.n + int(a)
	t.w[ia], t.w[ib] = d, d
	t.known[ia], t.known[ib] = true, true
}

// Len returns the number of cities.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return t.n
}

// Names returns a copy of the city names in identifier order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, t.n)
	copy(out, t.names)

	return out
}

// Name returns the name of city id, or "" when id is out of range.
func (t *Table) Name(id CityID) string {
	if t == nil || int(id) >= t.n {
		return ""
	}

	return t.names[id]
}

// ID returns the identifier assigned to name.
func (t *Table) ID(name string) (CityID, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	id, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("ID(%q): %w", name, ErrUnknownCity)
	}

	return id, nil
}

// At returns the distance between two distinct cities.
// Complexity: O(1).
func (t *Table) At(a, b CityID) (Distance, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	if int(a) >= t.n || int(b) >= t.n {
		return 0, fmt.Errorf("At(%d,%d): %w", a, b, ErrUnknownCity)
	}
	if a == b {
		return 0, fmt.Errorf("At(%d,%d): %w", a, b, ErrSelfLoop)
	}
	i := int(a)*t.n + int(b)
	if !t.known[i] {
		return 0, fmt.Errorf("At(%d,%d): %w", a, b, ErrIncompleteTable)
	}

	return t.w[i], nil
}

// Leg returns the distance between a and b without any checks.
// Callers must pass valid, distinct identifiers of a validated, non-nil
// table; it is the search hot path and panics otherwise.
func (t *Table) Leg(a, b CityID) Distance { return t.w[int(a)*t.n+int(b)] }

// Cities returns every identifier in ascending order.
func (t *Table) Cities() []CityID {
	if t == nil {
		return nil
	}
	out := make([]CityID, t.n)
	for i := range out {
		out[i] = CityID(i)
	}

	return out
}
