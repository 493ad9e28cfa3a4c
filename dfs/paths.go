// File: paths.go
// Role: Bounded path enumeration (max stops, exact stops, less-than distance).
//
// All three enumerators share one backtracking walker over an adjacency
// snapshot and differ only in their bound:
//
//	variant                 prune when            record when (at destination, hops > 0)
//	PathsWithMaxStops       hops > maxStops       always
//	PathsWithExactStops     hops > numStops       hops == numStops
//	PathsLessThanDistance   dist >= maxDistance   always
//
// Stations may repeat (cycles are walked) and a walk continues past the
// destination, so C→D→C→D→C is a distinct result from C→D→C.
// source == destination asks for round trips; the zero-hop start is never a result.
//
// Zero-weight cycles would keep a distance-bounded walk from ever reaching its
// bound. A station re-entered at the same cumulative distance is therefore
// recorded but not expanded again.
//
// Neighbors are visited in ascending station ID order, so the result order is
// reproducible for a fixed graph.
//
// Complexity: exponential in the bound for dense graphs (the number of walks
// grows as d^k); memory O(k) for the walk plus the collected results.

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/railnet/core"
)

// errStopWalk unwinds the recursion once the result cap is hit.
var errStopWalk = errors.New("dfs: stop walk")

// pathBound decides pruning and acceptance for one enumeration variant.
type pathBound struct {
	// exceeded reports that the walk must not extend past this frame.
	exceeded func(hops int, dist int64) bool

	// accept reports whether a walk ending at the destination is a result.
	accept func(hops int, dist int64) bool

	// guardZeroLoops enables the same-distance revisit check.
	guardZeroLoops bool
}

// pathWalker holds the state of one enumeration.
type pathWalker struct {
	adj   map[string][]core.Edge // adjacency snapshot
	dst   string                 // destination station
	bound pathBound              // variant rules
	opts  DFSOptions             // hooks, cap, context

	path []string  // current walk from the source
	at   []int64   // cumulative distance at each walk position
	out  [][]string // collected results
}

// PathsWithMaxStops returns every walk source → … → destination with
// 1..maxStops routes.
//
// Errors:
//   - ErrGraphNil, ErrNegativeBound, ErrStationNotFound.
//   - ErrResultLimit (with the truncated result) when MaxResults is hit.
//   - Context and OnPath errors.
func PathsWithMaxStops(g *core.Graph, source, destination string, maxStops int, opts ...Option) ([][]string, error) {
	if maxStops < 0 {
		return [][]string{}, fmt.Errorf("%w: maxStops=%d", ErrNegativeBound, maxStops)
	}
	b := pathBound{
		exceeded: func(hops int, _ int64) bool { return hops > maxStops },
		accept:   func(int, int64) bool { return true },
	}

	return enumerate(g, source, destination, b, opts)
}

// PathsWithExactStops returns every walk source → … → destination with
// exactly numStops routes. numStops == 0 yields no result.
//
// Errors: as PathsWithMaxStops.
func PathsWithExactStops(g *core.Graph, source, destination string, numStops int, opts ...Option) ([][]string, error) {
	if numStops < 0 {
		return [][]string{}, fmt.Errorf("%w: numStops=%d", ErrNegativeBound, numStops)
	}
	b := pathBound{
		exceeded: func(hops int, _ int64) bool { return hops > numStops },
		accept:   func(hops int, _ int64) bool { return hops == numStops },
	}

	return enumerate(g, source, destination, b, opts)
}

// PathsLessThanDistance returns every walk source → … → destination whose
// total distance is strictly less than maxDistance.
//
// Errors: as PathsWithMaxStops.
func PathsLessThanDistance(g *core.Graph, source, destination string, maxDistance int64, opts ...Option) ([][]string, error) {
	if maxDistance < 0 {
		return [][]string{}, fmt.Errorf("%w: maxDistance=%d", ErrNegativeBound, maxDistance)
	}
	b := pathBound{
		exceeded:       func(_ int, dist int64) bool { return dist >= maxDistance },
		accept:         func(int, int64) bool { return true },
		guardZeroLoops: true,
	}

	return enumerate(g, source, destination, b, opts)
}

// enumerate validates inputs, snapshots g and runs the walker from source.
func enumerate(g *core.Graph, source, destination string, b pathBound, opts []Option) ([][]string, error) {
	// 1. Validate input graph
	if g == nil {
		return [][]string{}, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Snapshot and verify both endpoints before walking
	adj := g.AdjacencyList()
	if _, ok := adj[source]; !ok {
		return [][]string{}, fmt.Errorf("%w: source %q", ErrStationNotFound, source)
	}
	if _, ok := adj[destination]; !ok {
		return [][]string{}, fmt.Errorf("%w: destination %q", ErrStationNotFound, destination)
	}

	// 4. Walk
	w := &pathWalker{adj: adj, dst: destination, bound: b, opts: dopts, out: [][]string{}}
	err := w.walk(source, 0, 0)
	if errors.Is(err, errStopWalk) {
		return w.out, fmt.Errorf("%w: %d paths", ErrResultLimit, len(w.out))
	}
	if err != nil {
		return w.out, err
	}

	return w.out, nil
}

// walk visits id after `hops` routes with cumulative distance `dist`.
func (w *pathWalker) walk(id string, hops int, dist int64) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Bound: prune before touching the walk
	if w.bound.exceeded(hops, dist) {
		return nil
	}

	// 3. Extend the walk; backtrack on every return path
	stalled := w.bound.guardZeroLoops && w.revisitedAt(id, dist)
	w.path = append(w.path, id)
	w.at = append(w.at, dist)
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.at = w.at[:len(w.at)-1]
	}()

	// 4. Record, excluding the zero-hop start
	if id == w.dst && hops > 0 && w.bound.accept(hops, dist) {
		if err := w.record(); err != nil {
			return err
		}
	}

	// 5. A zero-weight loop brought us back here without progress
	if stalled {
		return nil
	}

	// 6. Recurse into every neighbor. An overflowing sum saturates at
	//    math.MaxInt64, which no distance bound accepts.
	var e core.Edge
	for _, e = range w.adj[id] {
		next, _ := core.AddDistance(dist, e.Weight)
		if err := w.walk(e.To, hops+1, next); err != nil {
			return err
		}
	}

	return nil
}

// revisitedAt reports whether id already sits on the walk at distance dist.
func (w *pathWalker) revisitedAt(id string, dist int64) bool {
	for i := len(w.path) - 1; i >= 0; i-- {
		if w.at[i] < dist {
			return false // distances only grow along the walk
		}
		if w.path[i] == id {
			return true
		}
	}

	return false
}

// record stores a copy of the current walk and applies hooks and the cap.
func (w *pathWalker) record() error {
	found := make([]string, len(w.path))
	copy(found, w.path)

	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(found); err != nil {
			return fmt.Errorf("dfs: OnPath hook for %v: %w", found, err)
		}
	}
	w.out = append(w.out, found)

	if w.opts.MaxResults > 0 && len(w.out) >= w.opts.MaxResults {
		return errStopWalk
	}

	return nil
}
