// SPDX-License-Identifier: MIT

package distance

import "fmt"

// Validate checks the table post-conditions over every pair of distinct
// identifiers:
//   - the pair has a distance in both directions (ErrIncompleteTable);
//   - both directions agree (ErrAsymmetric).
//
// Build always calls Validate; it is exported so that tests and callers
// holding a Table can re-assert the invariant.
//
// Complexity: O(N²).
func (t *Table) Validate() error {
	if t == nil {
		return ErrNilTable
	}
	var (
		i, j   int
		ij, ji int
	)
	for i = 0; i < t.n; i++ {
		for j = i + 1; j < t.n; j++ {
			ij, ji = i*t.n+j, j*t.n+i
			if !t.known[ij] || !t.known[ji] {
				return fmt.Errorf("%w: %s and %s", ErrIncompleteTable, t.names[i], t.names[j])
			}
			if t.w[ij] != t.w[ji] {
				return fmt.Errorf("%w: %s-%s=%d, %s-%s=%d", ErrAsymmetric,
					t.names[i], t.names[j], t.w[ij], t.names[j], t.names[i], t.w[ji])
			}
		}
	}

	return nil
}
