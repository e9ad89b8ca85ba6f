package route

import (
	"fmt"

	"github.com/katalvlaran/salesman/distance"
)

// ValidateRoute checks that r is a permutation of every city in [0, n).
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(r []distance.CityID, n int) error {
	if len(r) != n {
		return fmt.Errorf("%w: %d of %d cities", ErrIncompleteRoute, len(r), n)
	}
	seen := make([]bool, n)
	for i, c := range r {
		if int(c) >= n {
			return fmt.Errorf("route[%d]=%d: %w", i, c, ErrCityOutOfRange)
		}
		if seen[c] {
			return fmt.Errorf("route[%d]=%d: %w", i, c, ErrDuplicateCity)
		}
		seen[c] = true
	}

	return nil
}

// Length returns the total length of route r over t: the sum of its N−1
// legs, with no closing leg back to the start.
func Length(t *distance.Table, r []distance.CityID) (distance.Distance, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	if err := ValidateRoute(r, t.Len()); err != nil {
		return 0, err
	}
	var total distance.Distance
	for i := 1; i < len(r); i++ {
		total += t.Leg(r[i-1], r[i])
	}

	return total, nil
}
