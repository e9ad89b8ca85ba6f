package route

import "errors"

var (
	// ErrNilTable is returned when a nil *distance.Table is passed.
	ErrNilTable = errors.New("route: nil table")

	// ErrNothingToVisit is returned when the remaining-city set would be
	// empty: an empty table, or a prefix that already covers every city.
	ErrNothingToVisit = errors.New("route: no city left to visit")

	// ErrCityOutOfRange is returned for a prefix identifier outside [0, N).
	ErrCityOutOfRange = errors.New("route: city out of range")

	// ErrDuplicateCity is returned when a prefix or route visits a city twice.
	ErrDuplicateCity = errors.New("route: city visited twice")

	// ErrIncompleteRoute is returned by Length for a route that is not a
	// permutation of every city.
	ErrIncompleteRoute = errors.New("route: route does not cover every city")

	// ErrUnknownObjective is returned for an Objective outside {Minimize, Maximize}.
	ErrUnknownObjective = errors.New("route: unknown objective")

	// ErrPruningUnsupported is returned when before-leaf pruning is forced
	// for an objective where it could discard the optimum.
	ErrPruningUnsupported = errors.New("route: pruning unsupported for objective")

	// ErrInvariantViolation reports a broken search invariant. It indicates a
	// bug in the engine, never bad input.
	ErrInvariantViolation = errors.New("route: search invariant violated")
)
