package route

import (
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/salesman/distance"
)

// engine holds the search state shared by every frame of one traversal.
// The table is read-only; path and remaining are mutated in place and
// restored on backtrack.
type engine struct {
	t     *distance.Table
	n     int
	obj   Objective
	prune bool

	path      []distance.CityID // committed prefix, len(path) == depth
	remaining *bit.Set          // cities not on path
	left      int               // remaining.Size()

	leaves uint64
	pruned uint64

	err error // first invariant violation; stops the traversal
}

// fail records the first invariant violation.
func (e *engine) fail(format string, args ...interface{}) {
	if e.err == nil {
		e.err = fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
	}
}

// check asserts the frame preconditions at depth.
func (e *engine) check(depth int) bool {
	if e.left <= 0 {
		e.fail("depth %d: nothing left to visit", depth)
		return false
	}
	if len(e.path) != depth {
		e.fail("depth %d: path holds %d cities", depth, len(e.path))
		return false
	}
	if len(e.path)+e.left != e.n {
		e.fail("depth %d: %d on path + %d remaining != %d", depth, len(e.path), e.left, e.n)
		return false
	}
	if depth == 0 {
		return true
	}
	cur := e.path[depth-1]
	if e.remaining.Contains(int(cur)) {
		e.fail("depth %d: current city %d still remaining", depth, cur)
		return false
	}
	for _, c := range e.path[:depth-1] {
		if c == cur {
			e.fail("depth %d: city %d visited twice", depth, cur)
			return false
		}
	}

	return true
}

// adopt reports whether a child result may replace best unconditionally:
// a child is never worse than the value it was given.
func (e *engine) adopt(depth int, got, best distance.Distance) bool {
	if got != best && !e.obj.Better(got, best) {
		e.fail("depth %d: child returned %d, worse than %d", depth, got, best)
		return false
	}

	return true
}

// descend returns the best total achievable by completing the committed
// path through every remaining city; partial is the committed length. The
// result is never worse than best under the objective.
func (e *engine) descend(depth int, partial, best distance.Distance) distance.Distance {
	if !e.check(depth) {
		return best
	}

	var (
		atLeaf = e.left == 1
		c      int
		to     distance.CityID
		leg    distance.Distance
		total  distance.Distance
		got    distance.Distance
	)
	for c = 0; c < e.n; c++ {
		if !e.remaining.Contains(c) {
			continue
		}
		to = distance.CityID(c)

		// No incoming leg at the root.
		leg = 0
		if depth > 0 {
			leg = e.t.Leg(e.path[depth-1], to)
		}
		total = partial + leg

		if atLeaf {
			e.leaves++
			if e.obj.Better(total, best) {
				best = total
			}
			continue
		}

		if e.prune && !e.obj.Better(total, best) {
			e.pruned++
			continue
		}

		e.remaining.Delete(c)
		e.left--
		e.path = append(e.path, to)

		got = e.descend(depth+1, total, best)

		e.path = e.path[:depth]
		e.left++
		e.remaining.Add(c)

		if e.err != nil {
			return best
		}
		if !e.adopt(depth, got, best) {
			return best
		}
		best = got
	}

	return best
}

// Complete returns the best length of a route that starts with prefix and
// then visits every other city of t exactly once. best is the best-known
// value so far; the result is never worse than it under opts.Objective.
//
// Contracts:
//   - t is a validated table (distance.Build / distance.FromMatrix).
//   - prefix holds distinct identifiers in [0, N) and leaves at least one
//     city unvisited.
//
// Errors: ErrNilTable, ErrNothingToVisit, ErrCityOutOfRange,
// ErrDuplicateCity, ErrUnknownObjective, ErrPruningUnsupported,
// ErrInvariantViolation.
func Complete(t *distance.Table, prefix []distance.CityID, best distance.Distance, opts Options) (Result, error) {
	prune, err := opts.validate()
	if err != nil {
		return Result{}, err
	}
	if t == nil {
		return Result{}, ErrNilTable
	}
	n := t.Len()

	e := engine{
		t:         t,
		n:         n,
		obj:       opts.Objective,
		prune:     prune,
		path:      make([]distance.CityID, 0, n),
		remaining: new(bit.Set),
		left:      n,
	}
	for c := 0; c < n; c++ {
		e.remaining.Add(c)
	}

	// Commit the prefix and its length.
	var partial distance.Distance
	for i, c := range prefix {
		if int(c) >= n {
			return Result{}, fmt.Errorf("prefix[%d]=%d: %w", i, c, ErrCityOutOfRange)
		}
		if !e.remaining.Contains(int(c)) {
			return Result{}, fmt.Errorf("prefix[%d]=%d: %w", i, c, ErrDuplicateCity)
		}
		if i > 0 {
			partial += t.Leg(prefix[i-1], c)
		}
		e.remaining.Delete(int(c))
		e.left--
		e.path = append(e.path, c)
	}
	if e.left == 0 {
		return Result{}, ErrNothingToVisit
	}

	length := e.descend(len(e.path), partial, best)
	if e.err != nil {
		return Result{}, e.err
	}

	return Result{
		Objective: opts.Objective,
		Length:    length,
		Leaves:    e.leaves,
		Pruned:    e.pruned,
	}, nil
}

// Search returns the best route length over all of t under opts.
func Search(t *distance.Table, opts Options) (Result, error) {
	return Complete(t, nil, opts.Objective.Seed(), opts)
}

// MinMax runs two independent searches with default options and returns
// the shortest and longest route lengths.
func MinMax(t *distance.Table) (minLen, maxLen distance.Distance, err error) {
	lo, err := Search(t, DefaultOptions(Minimize))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", Minimize, err)
	}
	hi, err := Search(t, DefaultOptions(Maximize))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", Maximize, err)
	}

	return lo.Length, hi.Length, nil
}
