// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph rail network (one-way routes, non-negative weights).
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source station to
//     all reachable stations in O((V + E) log V) time.
//   - ShortestPath answers a single source/destination pair and reconstructs the
//     station sequence.
//   - A binary min-heap (github.com/emirpasic/gods/trees/binaryheap) always
//     expands the next-closest station.
//
// Key features:
//
//   - Per-call scratch state: tentative distances and predecessors live in maps
//     owned by the call, never on the stations, so nothing has to be reset before
//     or after a run and an interrupted run leaves the graph untouched.
//   - Lazy decrease-key: improved distances are pushed as new heap entries;
//     stale entries are skipped when popped.
//   - Self queries: ShortestPath(g, "B", "B") searches the cheapest cycle leaving
//     and re-entering B. WithZeroLengthSelfPath(true) switches to the trivial
//     zero-length answer [B].
//   - MaxDistance: stops exploring beyond a distance cap.
//   - InfEdgeThreshold: treats heavy routes as closed lines.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource / ErrEmptyDestination: empty station IDs.
//   - ErrNilGraph: nil *core.Graph.
//   - ErrVertexNotFound: source or destination missing from the graph.
//   - ErrNoPath: destination unreachable within the configured limits.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic by the option constructors.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (*Result, error)
//
// Ties:
//
//   - Among equal-cost paths the first predecessor found is kept; heap ties are
//     broken by station ID, so results are reproducible for a fixed graph.
//
// Thread safety:
//
//   - Each call reads one snapshot of the graph (core.Graph.AdjacencyList) and
//     keeps all state locally, so concurrent calls on the same graph are safe.
package dijkstra
