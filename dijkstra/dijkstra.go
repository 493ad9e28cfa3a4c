// Package dijkstra implements Dijkstra's shortest-path algorithm on rail networks.
//
// Dijkstra computes the minimum-cost path from a source station to other
// reachable stations over non-negative route weights. It processes stations in
// order of increasing distance using a binary min-heap, relaxing routes and
// updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each station is finalized at most once.
//   - Each route relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and visited maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - All scratch state (tentative distance, predecessor, visited) lives in maps
//     owned by a single call. Stations never carry it, so nothing needs resetting
//     and concurrent queries on one graph do not interfere.
//   - The graph is read once through core.Graph.AdjacencyList(); the run works
//     on that snapshot.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries when popped (already visited).
//   - Negative weights cannot occur: core.Graph rejects them on insertion.
//   - Sums saturate: a route whose total would overflow int64 is not relaxed,
//     so overflowing paths never appear as (negative) shortest distances.
package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/railnet/core"
)

// Dijkstra computes shortest distances from the source station (Options.Source)
// to all other stations of g.
//
// Returns:
//
//   - dist: map from station ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Snapshot the graph and check the source exists in the snapshot
	adj := g.AdjacencyList()
	if _, ok := adj[cfg.Source]; !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 4) Run from the source with distance 0
	r := newRunner(adj, cfg)
	r.seedSource()
	r.process("")

	dist := r.distances()
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[string]string, len(adj))
	for v := range adj {
		prev[v] = r.prev[v]
	}

	return dist, prev, nil
}

// ShortestPath returns the cheapest path from source to destination.
//
// When source == destination the answer depends on Options.ZeroLengthSelfPath:
// the trivial path [source] (distance 0), or the cheapest cycle leaving and
// re-entering source through at least one route.
//
// Errors:
//   - ErrEmptySource, ErrEmptyDestination, ErrNilGraph.
//   - ErrVertexNotFound: source or destination is not a station of g.
//   - ErrNoPath: destination is unreachable (or no cycle exists).
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (*Result, error) {
	// 1) Build Options; the source argument wins over any Source option.
	cfg := DefaultOptions(source)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	cfg.Source = source

	// 2) Validate inputs
	if source == "" {
		return nil, ErrEmptySource
	}
	if destination == "" {
		return nil, ErrEmptyDestination
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	adj := g.AdjacencyList()
	if _, ok := adj[source]; !ok {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if _, ok := adj[destination]; !ok {
		return nil, fmt.Errorf("%w: destination %q", ErrVertexNotFound, destination)
	}

	// 3) Trivial self path, when configured
	cycle := source == destination
	if cycle && cfg.ZeroLengthSelfPath {
		return &Result{Path: []string{source}, Distance: 0}, nil
	}

	// 4) Run. A cycle search seeds the heap with the source's outgoing routes and
	//    leaves dist[source] at +∞, so the source can be reached (and relaxed) again.
	r := newRunner(adj, cfg)
	if cycle {
		r.seedCycle()
	} else {
		r.seedSource()
	}
	r.process(destination)

	// 5) Reconstruct
	if _, reached := r.dist[destination]; !reached {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, source, destination)
	}
	path, err := r.walkBack(source, destination)
	if err != nil {
		return nil, err
	}

	return &Result{Path: path, Distance: r.dist[destination]}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     map[string][]core.Edge // read-only snapshot of the graph
	options Options                // Configuration options (thresholds, etc.)
	dist    map[string]int64       // station ID → current best distance; absent = +∞
	prev    map[string]string      // station ID → predecessor on the best path
	visited map[string]bool        // finalized stations
	pq      *binaryheap.Heap       // min-heap of nodeItem ordered by dist
}

// nodeItem represents a station and its tentative distance at push time.
type nodeItem struct {
	id   string // station ID
	dist int64  // distance from source when pushed
}

// byDist orders nodeItems by ascending distance, then by ID for stable pops.
func byDist(a, b interface{}) int {
	x, y := a.(nodeItem), b.(nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.id < y.id:
		return -1
	case x.id > y.id:
		return 1
	}

	return 0
}

// newRunner allocates per-call scratch maps. Stations without a dist entry
// are at +∞; an entry may legitimately hold math.MaxInt64.
func newRunner(adj map[string][]core.Edge, cfg Options) *runner {
	V := len(adj)
	return &runner{
		adj:     adj,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      binaryheap.NewWith(byDist),
	}
}

// distances reports every station of the snapshot, unreached ones at math.MaxInt64.
func (r *runner) distances() map[string]int64 {
	out := make(map[string]int64, len(r.adj))
	var v string
	for v = range r.adj {
		if d, ok := r.dist[v]; ok {
			out[v] = d
		} else {
			out[v] = math.MaxInt64
		}
	}

	return out
}

// seedSource starts a regular run: dist[source] = 0.
func (r *runner) seedSource() {
	r.dist[r.options.Source] = 0
	r.pq.Push(nodeItem{id: r.options.Source, dist: 0})
}

// seedCycle starts a cycle run: every route leaving the source is relaxed
// from a base of 0, while the source itself stays at +∞.
func (r *runner) seedCycle() {
	src := r.options.Source
	var e core.Edge
	for _, e = range r.adj[src] {
		r.relaxEdge(src, e, 0)
	}
}

// process is the core loop. It repeatedly extracts the closest unvisited
// station and relaxes its outgoing routes.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable stations processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - target is non-empty and has just been finalized.
func (r *runner) process(target string) {
	var raw interface{}
	var item nodeItem
	var e core.Edge
	for !r.pq.Empty() {
		// 1) Pop the smallest-distance item from the heap.
		raw, _ = r.pq.Pop()
		item = raw.(nodeItem)

		// 2) Skip stale entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Nothing closer remains within the cap.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize.
		r.visited[item.id] = true
		if item.id == target {
			break
		}

		// 5) Relax all outgoing routes.
		for _, e = range r.adj[item.id] {
			r.relaxEdge(item.id, e, item.dist)
		}
	}
}

// relaxEdge tries to improve dist[e.To] through u at base distance d.
func (r *runner) relaxEdge(u string, e core.Edge, d int64) {
	// Closed routes are skipped entirely.
	if r.options.InfEdgeThreshold > 0 && e.Weight >= r.options.InfEdgeThreshold {
		return
	}
	newDist, ok := core.AddDistance(d, e.Weight)
	if !ok || newDist > r.options.MaxDistance {
		return
	}
	// Strictly better only; equal-cost alternatives keep the first predecessor.
	if cur, seen := r.dist[e.To]; seen && newDist >= cur {
		return
	}
	r.dist[e.To] = newDist
	r.prev[e.To] = u
	r.pq.Push(nodeItem{id: e.To, dist: newDist})
}

// walkBack follows prev links from destination to source and returns the path
// in source→destination order. For a cycle run the walk starts and ends at
// the source.
func (r *runner) walkBack(source, destination string) ([]string, error) {
	path := []string{destination}
	cur := destination
	// A simple path visits each station at most once, plus the repeated source of a cycle.
	for steps := 0; steps <= len(r.adj); steps++ {
		p := r.prev[cur]
		if p == "" {
			return nil, fmt.Errorf("%w: broken predecessor chain at %q", ErrNoPath, cur)
		}
		path = append(path, p)
		if p == source {
			slices.Reverse(path)

			return path, nil
		}
		cur = p
	}

	return nil, fmt.Errorf("%w: predecessor chain from %q does not reach %q", ErrNoPath, destination, source)
}
