// SPDX-License-Identifier: MIT

package distance

import (
	"encoding/binary"
	"sort"

	"github.com/dchest/siphash"
)

// SipHash keys for Fingerprint. Changing them changes every fingerprint.
const (
	fpKey0 uint64 = 0x73616c65736d616e
	fpKey1 uint64 = 0x64697374616e6365
)

// canonicalEdge is one undirected edge with its endpoints in name order.
type canonicalEdge struct {
	lo, hi string
	d      Distance
}

// Fingerprint returns a SipHash-2-4 digest of the table contents.
//
// The digest covers every undirected edge as (lower name, higher name,
// distance), sorted by names, so it does not depend on the identifier
// assignment or on input line order. Two tables with the same cities and
// distances always share a fingerprint.
//
// Complexity: O(N² log N).
func (t *Table) Fingerprint() uint64 {
	if t == nil {
		return 0
	}
	edges := make([]canonicalEdge, 0, t.n*(t.n-1)/2)
	var i, j int
	for i = 0; i < t.n; i++ {
		for j = i + 1; j < t.n; j++ {
			lo, hi := t.names[i], t.names[j]
			if hi < lo {
				lo, hi = hi, lo
			}
			edges = append(edges, canonicalEdge{lo: lo, hi: hi, d: t.w[i*t.n+j]})
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].lo != edges[b].lo {
			return edges[a].lo < edges[b].lo
		}
		return edges[a].hi < edges[b].hi
	})

	var (
		buf []byte
		num [8]byte
	)
	for _, e := range edges {
		buf = append(buf, e.lo...)
		buf = append(buf, 0)
		buf = append(buf, e.hi...)
		buf = append(buf, 0)
		binary.LittleEndian.PutUint64(num[:], uint64(e.d))
		buf = append(buf, num[:]...)
	}
	// Cities without edges (N == 1) still contribute their name.
	if t.n == 1 {
		buf = append(buf, t.names[0]...)
	}

	return siphash.Hash(fpKey0, fpKey1, buf)
}
