package route_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/route"
	"github.com/katalvlaran/salesman/survey"
)

const ukInput = `London to Dublin = 464
London to Belfast = 518
Dublin to Belfast = 141
`

func ukTable(t *testing.T) *distance.Table {
	t.Helper()
	edges, err := distance.ParseEdges(strings.NewReader(ukInput))
	require.NoError(t, err)
	tbl, err := distance.Build(edges)
	require.NoError(t, err)
	return tbl
}

// randomTable returns a complete symmetric table with legs in [0, 100).
func randomTable(t *testing.T, n int, seed int64) *distance.Table {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	names := make([]string, n)
	rows := make([][]distance.Distance, n)
	for i := range rows {
		names[i] = string(rune('A' + i))
		rows[i] = make([]distance.Distance, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := distance.Distance(rng.Intn(100))
			rows[i][j], rows[j][i] = d, d
		}
	}
	tbl, err := distance.FromMatrix(names, rows)
	require.NoError(t, err)
	return tbl
}

// lineTable places cities on a line at the given positions.
func lineTable(t *testing.T, pos ...int) *distance.Table {
	t.Helper()
	n := len(pos)
	names := make([]string, n)
	rows := make([][]distance.Distance, n)
	for i := range rows {
		names[i] = string(rune('P' + i))
		rows[i] = make([]distance.Distance, n)
		for j := range rows[i] {
			d := pos[i] - pos[j]
			if d < 0 {
				d = -d
			}
			rows[i][j] = distance.Distance(d)
		}
	}
	tbl, err := distance.FromMatrix(names, rows)
	require.NoError(t, err)
	return tbl
}

func TestSearch_UK(t *testing.T) {
	tbl := ukTable(t)

	lo, err := route.Search(tbl, route.DefaultOptions(route.Minimize))
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(605), lo.Length)
	assert.Equal(t, route.Minimize, lo.Objective)

	hi, err := route.Search(tbl, route.DefaultOptions(route.Maximize))
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(982), hi.Length)
	// Maximization never prunes: all 3! routes reach a leaf.
	assert.Equal(t, uint64(6), hi.Leaves)
	assert.Zero(t, hi.Pruned)

	minLen, maxLen, err := route.MinMax(tbl)
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(605), minLen)
	assert.Equal(t, distance.Distance(982), maxLen)
}

func TestSearch_SingleCity(t *testing.T) {
	tbl, err := distance.FromMatrix([]string{"Solo"}, [][]distance.Distance{{0}})
	require.NoError(t, err)

	minLen, maxLen, err := route.MinMax(tbl)
	require.NoError(t, err)
	assert.Zero(t, minLen)
	assert.Zero(t, maxLen)
}

func TestSearch_TwoCities(t *testing.T) {
	tbl, err := distance.FromMatrix([]string{"A", "B"}, [][]distance.Distance{{0, 42}, {42, 0}})
	require.NoError(t, err)

	minLen, maxLen, err := route.MinMax(tbl)
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(42), minLen)
	assert.Equal(t, distance.Distance(42), maxLen)
}

func TestSearch_PruningDoesNotChangeResults(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for seed := int64(0); seed < 5; seed++ {
			tbl := randomTable(t, n, seed*31+int64(n))

			pruned, err := route.Search(tbl, route.Options{Objective: route.Minimize, Pruning: route.PruneBeforeLeaf})
			require.NoError(t, err)
			full, err := route.Search(tbl, route.Options{Objective: route.Minimize, Pruning: route.PruneNever})
			require.NoError(t, err)
			require.Equal(t, full.Length, pruned.Length, "n=%d seed=%d", n, seed)
			require.Zero(t, full.Pruned)
			require.LessOrEqual(t, pruned.Leaves, full.Leaves)
		}
	}
}

func TestSearch_MatchesExhaustiveSurvey(t *testing.T) {
	for n := 1; n <= 7; n++ {
		tbl := randomTable(t, n, int64(1000+n))

		rep, err := survey.Run(tbl)
		require.NoError(t, err)

		minLen, maxLen, err := route.MinMax(tbl)
		require.NoError(t, err)
		assert.Equal(t, rep.Min, minLen, "n=%d", n)
		assert.Equal(t, rep.Max, maxLen, "n=%d", n)
	}
}

func TestSearch_BoundsEveryPermutation(t *testing.T) {
	tbl := randomTable(t, 5, 77)
	minLen, maxLen, err := route.MinMax(tbl)
	require.NoError(t, err)

	// Walk all 5! orderings by recursive swapping.
	perm := tbl.Cities()
	var walk func(k int)
	walk = func(k int) {
		if k == len(perm) {
			l, err := route.Length(tbl, perm)
			require.NoError(t, err)
			require.LessOrEqual(t, minLen, l)
			require.GreaterOrEqual(t, maxLen, l)
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)
}

func TestSearch_PruningSkipsBranches(t *testing.T) {
	tbl := lineTable(t, 0, 1, 2, 3, 10)

	res, err := route.Search(tbl, route.DefaultOptions(route.Minimize))
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(10), res.Length)
	assert.Positive(t, res.Pruned)
	assert.Less(t, res.Leaves, uint64(120))

	full, err := route.Search(tbl, route.Options{Objective: route.Minimize, Pruning: route.PruneNever})
	require.NoError(t, err)
	assert.Equal(t, uint64(120), full.Leaves)
	assert.Equal(t, res.Length, full.Length)
}

func TestSearch_Idempotent(t *testing.T) {
	tbl := randomTable(t, 6, 9)
	fp := tbl.Fingerprint()

	lo1, hi1, err := route.MinMax(tbl)
	require.NoError(t, err)
	lo2, hi2, err := route.MinMax(tbl)
	require.NoError(t, err)

	assert.Equal(t, lo1, lo2)
	assert.Equal(t, hi1, hi2)
	assert.Equal(t, fp, tbl.Fingerprint(), "search must not mutate the table")
}

func TestSearch_OptionErrors(t *testing.T) {
	tbl := ukTable(t)

	_, err := route.Search(tbl, route.Options{Objective: route.Maximize, Pruning: route.PruneBeforeLeaf})
	require.ErrorIs(t, err, route.ErrPruningUnsupported)

	_, err = route.Search(tbl, route.Options{Objective: route.Objective(7)})
	require.ErrorIs(t, err, route.ErrUnknownObjective)

	_, err = route.Search(tbl, route.Options{Objective: route.Minimize, Pruning: route.PruneMode(9)})
	require.ErrorIs(t, err, route.ErrPruningUnsupported)

	_, err = route.Search(nil, route.DefaultOptions(route.Minimize))
	require.ErrorIs(t, err, route.ErrNilTable)
}

func TestComplete_Prefix(t *testing.T) {
	tbl := ukTable(t) // London=0, Dublin=1, Belfast=2
	minOpts := route.DefaultOptions(route.Minimize)
	maxOpts := route.DefaultOptions(route.Maximize)

	res, err := route.Complete(tbl, []distance.CityID{0}, route.Minimize.Seed(), minOpts)
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(605), res.Length) // London-Dublin-Belfast

	res, err = route.Complete(tbl, []distance.CityID{0}, route.Maximize.Seed(), maxOpts)
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(659), res.Length) // London-Belfast-Dublin

	// Only one completion: Belfast-London-Dublin.
	res, err = route.Complete(tbl, []distance.CityID{2, 0}, route.Minimize.Seed(), minOpts)
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(982), res.Length)
	assert.Equal(t, uint64(1), res.Leaves)
}

func TestComplete_NeverWorseThanBestKnown(t *testing.T) {
	tbl := ukTable(t)

	res, err := route.Complete(tbl, nil, 100, route.DefaultOptions(route.Minimize))
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(100), res.Length)

	res, err = route.Complete(tbl, nil, 5000, route.DefaultOptions(route.Maximize))
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(5000), res.Length)

	res, err = route.Complete(tbl, nil, 700, route.DefaultOptions(route.Minimize))
	require.NoError(t, err)
	assert.Equal(t, distance.Distance(605), res.Length)
}

func TestComplete_PrefixErrors(t *testing.T) {
	tbl := ukTable(t)
	opts := route.DefaultOptions(route.Minimize)
	seed := route.Minimize.Seed()

	_, err := route.Complete(tbl, []distance.CityID{0, 0}, seed, opts)
	require.ErrorIs(t, err, route.ErrDuplicateCity)

	_, err = route.Complete(tbl, []distance.CityID{3}, seed, opts)
	require.ErrorIs(t, err, route.ErrCityOutOfRange)

	_, err = route.Complete(tbl, []distance.CityID{0, 1, 2}, seed, opts)
	require.ErrorIs(t, err, route.ErrNothingToVisit)
}

func TestObjective(t *testing.T) {
	assert.Equal(t, "MIN", route.Minimize.String())
	assert.Equal(t, "MAX", route.Maximize.String())
	assert.Equal(t, distance.Infinity, route.Minimize.Seed())
	assert.Zero(t, route.Maximize.Seed())

	assert.True(t, route.Minimize.Better(1, 2))
	assert.False(t, route.Minimize.Better(2, 2))
	assert.True(t, route.Maximize.Better(3, 2))
	assert.False(t, route.Maximize.Better(2, 2))
}
