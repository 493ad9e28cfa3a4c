// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, distances on the reference network,
// path reconstruction, self queries, MaxDistance and InfEdgeThreshold.
package dijkstra_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dijkstra"
)

// classic builds the five-station reference network.
func classic(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, r := range []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 5}, {"B", "C", 4}, {"C", "D", 8}, {"D", "C", 8}, {"D", "E", 6},
		{"A", "D", 5}, {"C", "E", 2}, {"E", "B", 3}, {"A", "E", 7},
	} {
		require.NoError(t, g.AddRoute(r.u, r.v, r.w))
	}

	return g
}

// pathDistance sums the weights along path, or returns -1 if a hop is missing.
func pathDistance(t testing.TB, g *core.Graph, path []string) int64 {
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

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph())
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestShortestPath_Validation(t *testing.T) {
	g := classic(t)

	_, err := dijkstra.ShortestPath(g, "", "A")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.ShortestPath(g, "A", "")
	assert.ErrorIs(t, err, dijkstra.ErrEmptyDestination)

	_, err = dijkstra.ShortestPath(g, "Z", "A")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(g, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestOptions_PanicOnBadValues(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Single-source distances.
// ------------------------------------------------------------------------

func TestDijkstra_ClassicDistances(t *testing.T) {
	g := classic(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev should be nil when ReturnPath=false")

	assert.Equal(t, map[string]int64{"A": 0, "B": 5, "C": 9, "D": 5, "E": 7}, dist)
}

func TestDijkstra_WithReturnPath(t *testing.T) {
	g := classic(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(9), dist["C"])
	assert.Equal(t, "B", prev["C"])
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, "", prev["A"])
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := classic(t)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["A"], "nothing reaches A")
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := classic(t)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(6))
	require.NoError(t, err)
	assert.Equal(t, int64(5), dist["B"])
	assert.Equal(t, int64(5), dist["D"])
	assert.Equal(t, int64(math.MaxInt64), dist["C"])
	assert.Equal(t, int64(math.MaxInt64), dist["E"])
}

func TestDijkstra_InfThresholdClosesRoutes(t *testing.T) {
	g := classic(t)
	// Close every route weighing 5 or more: A can only leave via nothing.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(math.MaxInt64), dist["B"])

	// From C, only C→E (2) and E→B (3) stay open; B→C (4) too.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("C"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["E"])
	assert.Equal(t, int64(5), dist["B"])
	assert.Equal(t, int64(math.MaxInt64), dist["D"])
}

// ------------------------------------------------------------------------
// 3. Single-pair shortest paths.
// ------------------------------------------------------------------------

func TestShortestPath_AtoC(t *testing.T) {
	g := classic(t)
	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, int64(9), res.Distance)
	assert.Equal(t, 2, res.Stops())
	assert.Equal(t, res.Distance, pathDistance(t, g, res.Path))
}

func TestShortestPath_CycleBackToSource(t *testing.T) {
	g := classic(t)
	res, err := dijkstra.ShortestPath(g, "B", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "E", "B"}, res.Path)
	assert.Equal(t, int64(9), res.Distance)
	assert.Equal(t, int64(9), pathDistance(t, g, res.Path))
}

func TestShortestPath_ZeroLengthSelfPath(t *testing.T) {
	g := classic(t)
	res, err := dijkstra.ShortestPath(g, "B", "B", dijkstra.WithZeroLengthSelfPath(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Path)
	assert.Equal(t, int64(0), res.Distance)
	assert.Equal(t, 0, res.Stops())
}

func TestShortestPath_NoCycle(t *testing.T) {
	g := classic(t)
	// No route enters A, so no cycle through A exists.
	_, err := dijkstra.ShortestPath(g, "A", "A")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := classic(t)
	_, err := dijkstra.ShortestPath(g, "B", "A")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_SelfRoute(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoute("A", "A", 2))
	require.NoError(t, g.AddRoute("A", "B", 1))
	require.NoError(t, g.AddRoute("B", "A", 4))

	res, err := dijkstra.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, res.Path)
	assert.Equal(t, int64(2), res.Distance)
}

func TestShortestPath_ZeroWeightRoutes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoute("A", "B", 0))
	require.NoError(t, g.AddRoute("B", "C", 0))
	require.NoError(t, g.AddRoute("A", "C", 1))

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, int64(0), res.Distance)
}

func TestShortestPath_SourceOptionIgnored(t *testing.T) {
	g := classic(t)
	res, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.Source("D"))
	require.NoError(t, err)
	assert.Equal(t, "A", res.Path[0])
}

func TestShortestPath_Idempotent(t *testing.T) {
	g := classic(t)
	first, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	second, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// An unrelated query is unaffected by the previous runs.
	res, err := dijkstra.ShortestPath(g, "D", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.Distance) // D→E→B
}

func TestShortestPath_ConcurrentQueries(t *testing.T) {
	g := classic(t)
	var wg sync.WaitGroup
	const workers = 32
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			res, err := dijkstra.ShortestPath(g, "A", "C")
			assert.NoError(t, err)
			assert.Equal(t, int64(9), res.Distance)
		}()
	}
	wg.Wait()
}

// ------------------------------------------------------------------------
// 4. Extreme weights.
// ------------------------------------------------------------------------

func TestShortestPath_OverflowingSumIsUnreachable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoute("A", "B", math.MaxInt64-1))
	require.NoError(t, g.AddRoute("B", "C", 10))

	_, err := dijkstra.ShortestPath(g, "A", "C")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	res, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), res.Distance)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	for id, d := range dist {
		assert.GreaterOrEqual(t, d, int64(0), "station %s", id)
	}
	assert.Equal(t, int64(math.MaxInt64), dist["C"])
}

func TestShortestPath_MaxWeightRouteIsOpenByDefault(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoute("A", "B", math.MaxInt64))

	res, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Path)
	assert.Equal(t, int64(math.MaxInt64), res.Distance)

	_, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithInfEdgeThreshold(math.MaxInt64))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath, "an explicit threshold still closes it")
}

func TestDefaultOptions_NoClosedRoutes(t *testing.T) {
	opts := dijkstra.DefaultOptions("A")
	assert.Zero(t, opts.InfEdgeThreshold)
	assert.Equal(t, int64(math.MaxInt64), opts.MaxDistance)
}
