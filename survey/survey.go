// Package survey enumerates every route of a distance table without any
// pruning and summarizes the distribution of route lengths.
//
// It is the brute-force reference for package route: its Min and Max are
// computed by a different traversal (Heap's permutation algorithm) over the
// same table, so the two must always agree.
//
// Complexity: O(N!·N) time, O(N) memory. Limited to MaxCities cities.
package survey

import (
	"errors"
	"fmt"
	"io"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/salesman/distance"
)

// MaxCities bounds the table size; 10! routes is already 3.6M.
const MaxCities = 10

// relativeAccuracy is the quantile sketch accuracy.
const relativeAccuracy = 0.01

var (
	// ErrEmpty is returned for a nil or empty table.
	ErrEmpty = errors.New("survey: empty table")
	// ErrTooLarge is returned for tables with more than MaxCities cities.
	ErrTooLarge = errors.New("survey: too many cities")
)

// Quantiles reported by Run.
var quantiles = []float64{0.05, 0.50, 0.95}

// Report summarizes every route length of one table.
type Report struct {
	Cities int
	Routes uint64
	Min    distance.Distance
	Max    distance.Distance
	Mean   float64
	StdDev float64
	// P05, P50 and P95 are approximate (relative accuracy 1%).
	P05, P50, P95 float64
}

// Run visits every permutation of the cities of t and reports the exact
// extremes, mean and standard deviation, plus sketched quantiles.
func Run(t *distance.Table) (Report, error) {
	if t == nil || t.Len() == 0 {
		return Report{}, ErrEmpty
	}
	n := t.Len()
	if n > MaxCities {
		return Report{}, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxCities)
	}

	sketch, err := ddsketch.NewDefaultDDSketch(relativeAccuracy)
	if err != nil {
		return Report{}, err
	}
	var (
		st  stats.StreamStats
		rep = Report{Cities: n, Min: distance.Infinity}
	)

	visit := func(perm []distance.CityID) error {
		var total distance.Distance
		for i := 1; i < len(perm); i++ {
			total += t.Leg(perm[i-1], perm[i])
		}
		rep.Routes++
		if total < rep.Min {
			rep.Min = total
		}
		if total > rep.Max {
			rep.Max = total
		}
		st.Add(float64(total))
		return sketch.Add(float64(total))
	}

	// Heap's algorithm, iterative form: c[i] counts swaps done at level i.
	perm := t.Cities()
	c := make([]int, n)
	if err = visit(perm); err != nil {
		return Report{}, err
	}
	i := 1
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if err = visit(perm); err != nil {
				return Report{}, err
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}

	rep.Mean = st.Mean()
	// A single route has no spread; StreamStats would divide by zero.
	if rep.Routes > 1 {
		rep.StdDev = st.StdDev()
	}
	q, err := sketch.GetValuesAtQuantiles(quantiles)
	if err != nil {
		return Report{}, err
	}
	rep.P05, rep.P50, rep.P95 = q[0], q[1], q[2]

	return rep, nil
}

// Write prints r in a short human-readable form.
func (r Report) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"survey: %d cities, %d routes\n  min %d  max %d\n  mean %.2f  stddev %.2f\n  p05 %.0f  p50 %.0f  p95 %.0f\n",
		r.Cities, r.Routes, r.Min, r.Max, r.Mean, r.StdDev, r.P05, r.P50, r.P95)
	return err
}
