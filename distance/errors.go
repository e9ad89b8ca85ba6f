// SPDX-License-Identifier: MIT
// Package distance: sentinel error set.
//
// Every message is prefixed with "distance: ". Callers branch with
// errors.Is; context (line numbers, city names) is attached at the call site
// with fmt.Errorf("...: %w", ErrX).

package distance

import "errors"

var (
	// ErrMalformedLine is returned when a line does not have the shape
	// "<A> to <B> = <n>" (wrong token count or wrong keywords).
	ErrMalformedLine = errors.New("distance: malformed line")

	// ErrBadDistance is returned when the distance token is not a
	// non-negative base-10 integer, or exceeds 2³²−1 (4294967295). The cap
	// keeps the sum of up to MaxCities-1 legs within a Distance.
	ErrBadDistance = errors.New("distance: invalid distance")

	// ErrSelfLoop is returned for an edge from a city to itself, and by At
	// when asked for a self-distance (those are never stored).
	ErrSelfLoop = errors.New("distance: city connected to itself")

	// ErrEmptyInput is returned when the input holds no edges at all.
	ErrEmptyInput = errors.New("distance: no edges in input")

	// ErrTooManyCities is returned when the input names more than MaxCities
	// distinct cities.
	ErrTooManyCities = errors.New("distance: too many cities")

	// ErrIncompleteTable is returned by Validate when some pair of distinct
	// cities has no distance.
	ErrIncompleteTable = errors.New("distance: missing distance between cities")

	// ErrAsymmetric is returned by Validate when (a,b) and (b,a) disagree.
	ErrAsymmetric = errors.New("distance: table is not symmetric")

	// ErrUnknownCity is returned for an identifier outside [0, N) or a name
	// that was never seen in the input.
	ErrUnknownCity = errors.New("distance: unknown city")

	// ErrNilTable is returned when a nil *Table is used.
	ErrNilTable = errors.New("distance: nil table")
)
