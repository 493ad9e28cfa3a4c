package dfs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dfs"
)

// walkDistance sums route weights along path; -1 if a hop is missing.
func walkDistance(t testing.TB, g *core.Graph, path []string) int64 {
	t.Helper()
	var total int64
	for i := 0; i+1 < len(path); i++ {
		d, err := g.DistanceToNeighbor(path[i], path[i+1])
		require.NoError(t, err)
		if d == core.NoRoute {
			return -1
		}
		total += d
	}

	return total
}

func TestPathsWithMaxStops_Classic(t *testing.T) {
	g := buildClassic(t)
	paths, err := dfs.PathsWithMaxStops(g, "C", "C", 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"C", "D", "C"},
		{"C", "E", "B", "C"},
	}, paths)
	for _, p := range paths {
		assert.LessOrEqual(t, len(p)-1, 3)
		assert.NotEqual(t, int64(-1), walkDistance(t, g, p))
	}
}

func TestPathsWithExactStops_Classic(t *testing.T) {
	g := buildClassic(t)
	paths, err := dfs.PathsWithExactStops(g, "A", "C", 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{
		{"A", "B", "C", "D", "C"},
		{"A", "D", "C", "D", "C"},
		{"A", "D", "E", "B", "C"},
	}, paths)
	for _, p := range paths {
		assert.Len(t, p, 5, "exactly 4 stops")
	}
}

func TestPathsLessThanDistance_Classic(t *testing.T) {
	g := buildClassic(t)
	paths, err := dfs.PathsLessThanDistance(g, "C", "C", 30)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{
		{"C", "D", "C"},
		{"C", "E", "B", "C"},
		{"C", "E", "B", "C", "D", "C"},
		{"C", "D", "C", "E", "B", "C"},
		{"C", "D", "E", "B", "C"},
		{"C", "E", "B", "C", "E", "B", "C"},
		{"C", "E", "B", "C", "E", "B", "C", "E", "B", "C"},
	}, paths)
	for _, p := range paths {
		assert.Less(t, walkDistance(t, g, p), int64(30))
	}
}

func TestPaths_DeterministicOrder(t *testing.T) {
	g := buildClassic(t)
	first, err := dfs.PathsLessThanDistance(g, "C", "C", 30)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dfs.PathsLessThanDistance(g, "C", "C", 30)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPaths_UnknownStations(t *testing.T) {
	g := buildClassic(t)

	paths, err := dfs.PathsWithMaxStops(g, "Z", "C", 3)
	assert.ErrorIs(t, err, dfs.ErrStationNotFound)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)

	paths, err = dfs.PathsWithExactStops(g, "A", "Z", 3)
	assert.ErrorIs(t, err, dfs.ErrStationNotFound)
	assert.Empty(t, paths)

	paths, err = dfs.PathsLessThanDistance(g, "Z", "Z", 30)
	assert.ErrorIs(t, err, dfs.ErrStationNotFound)
	assert.Empty(t, paths)
}

func TestPaths_NilGraph(t *testing.T) {
	_, err := dfs.PathsWithMaxStops(nil, "A", "B", 1)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestPaths_NegativeBounds(t *testing.T) {
	g := buildClassic(t)

	_, err := dfs.PathsWithMaxStops(g, "A", "C", -1)
	assert.ErrorIs(t, err, dfs.ErrNegativeBound)

	_, err = dfs.PathsWithExactStops(g, "A", "C", -1)
	assert.ErrorIs(t, err, dfs.ErrNegativeBound)

	_, err = dfs.PathsLessThanDistance(g, "A", "C", -1)
	assert.ErrorIs(t, err, dfs.ErrNegativeBound)
}

func TestPaths_ZeroBoundsYieldNothing(t *testing.T) {
	g := buildClassic(t)

	paths, err := dfs.PathsWithMaxStops(g, "C", "C", 0)
	require.NoError(t, err)
	assert.Empty(t, paths, "the zero-hop start is never a result")

	paths, err = dfs.PathsWithExactStops(g, "A", "A", 0)
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = dfs.PathsLessThanDistance(g, "A", "B", 0)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPathsLessThanDistance_BoundIsStrict(t *testing.T) {
	g := buildClassic(t)
	// A→B is exactly 5: excluded at 5, included at 6.
	paths, err := dfs.PathsLessThanDistance(g, "A", "B", 5)
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = dfs.PathsLessThanDistance(g, "A", "B", 6)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}}, paths)
}

func TestPathsLessThanDistance_ZeroWeightLoopTerminates(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoute("A", "B", 0))
	require.NoError(t, g.AddRoute("B", "A", 0))
	require.NoError(t, g.AddRoute("B", "C", 1))

	paths, err := dfs.PathsLessThanDistance(g, "A", "C", 10)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, paths)

	// The round trip itself is still reported once.
	paths, err = dfs.PathsLessThanDistance(g, "A", "A", 10)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, paths)
}

func TestPaths_SelfRoute(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoute("A", "A", 1))

	paths, err := dfs.PathsWithMaxStops(g, "A", "A", 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "A"},
		{"A", "A", "A"},
		{"A", "A", "A", "A"},
	}, paths)
}

func TestPaths_MaxResults(t *testing.T) {
	g := buildClassic(t)
	paths, err := dfs.PathsLessThanDistance(g, "C", "C", 30, dfs.WithMaxResults(3))
	assert.ErrorIs(t, err, dfs.ErrResultLimit)
	assert.Len(t, paths, 3)
}

func TestPaths_OnPathHook(t *testing.T) {
	g := buildClassic(t)
	var seen [][]string
	paths, err := dfs.PathsWithMaxStops(g, "C", "C", 3, dfs.WithOnPath(func(p []string) error {
		seen = append(seen, p)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, paths, seen)

	boom := errors.New("boom")
	_, err = dfs.PathsWithMaxStops(g, "C", "C", 3, dfs.WithOnPath(func([]string) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestPaths_ContextCanceled(t *testing.T) {
	g := buildClassic(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := dfs.PathsWithExactStops(g, "A", "C", 4, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
}

func TestPathsLessThanDistance_HugeWeightsStayWithinBound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoute("A", "B", math.MaxInt64-1))
	require.NoError(t, g.AddRoute("B", "A", math.MaxInt64-1))

	paths, err := dfs.PathsLessThanDistance(g, "A", "A", math.MaxInt64)
	require.NoError(t, err)
	assert.Empty(t, paths, "A-B-A is longer than any int64 bound")

	paths, err = dfs.PathsLessThanDistance(g, "A", "B", math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}}, paths)

	// Stop-bounded walks ignore distance and still find the round trip.
	paths, err = dfs.PathsWithExactStops(g, "A", "A", 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, paths)
}
