package route

import "github.com/katalvlaran/salesman/distance"

// Objective selects which route length the search looks for.
type Objective uint8

const (
	// Minimize searches for the shortest route.
	Minimize Objective = iota
	// Maximize searches for the longest route.
	Maximize
)

// String implements fmt.Stringer.
func (o Objective) String() string {
	switch o {
	case Minimize:
		return "MIN"
	case Maximize:
		return "MAX"
	default:
		return "Objective(?)"
	}
}

// Seed is the best-known value before any route is complete: worse than
// every reachable length under the objective.
func (o Objective) Seed() distance.Distance {
	if o == Maximize {
		return 0
	}

	return distance.Infinity
}

// Better reports whether a is strictly better than b.
func (o Objective) Better(a, b distance.Distance) bool {
	if o == Maximize {
		return a > b
	}

	return a < b
}

func (o Objective) valid() bool { return o == Minimize || o == Maximize }

// PruneMode controls before-leaf pruning.
type PruneMode uint8

const (
	// PruneAuto prunes for Minimize and never for Maximize.
	PruneAuto PruneMode = iota
	// PruneNever always descends; every permutation reaches a leaf.
	PruneNever
	// PruneBeforeLeaf forces pruning; only valid with Minimize.
	PruneBeforeLeaf
)

// Options configures a search.
type Options struct {
	Objective Objective
	Pruning   PruneMode
}

// DefaultOptions returns the options for obj with automatic pruning.
func DefaultOptions(obj Objective) Options {
	return Options{Objective: obj, Pruning: PruneAuto}
}

// validate checks the options and resolves whether to prune.
func (o Options) validate() (prune bool, err error) {
	if !o.Objective.valid() {
		return false, ErrUnknownObjective
	}
	switch o.Pruning {
	case PruneAuto:
		return o.Objective == Minimize, nil
	case PruneNever:
		return false, nil
	case PruneBeforeLeaf:
		if o.Objective != Minimize {
			return false, ErrPruningUnsupported
		}
		return true, nil
	default:
		return false, ErrPruningUnsupported
	}
}

// Result is the outcome of one search.
type Result struct {
	Objective Objective
	// Length is the best route length, or the best-known value passed in
	// when no completion improves on it.
	Length distance.Distance
	// Leaves counts complete routes evaluated.
	Leaves uint64
	// Pruned counts branches skipped by before-leaf pruning.
	Pruned uint64
}
