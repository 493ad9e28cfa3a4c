// Package core provides a thread-safe in-memory rail network: named stations
// joined by one-way, weighted routes.
//
// The Graph G = (V,E) has a deliberately small surface:
//
//   - Directed edges only (a route A→B never implies B→A)
//   - Non-negative integer weights (negative distances are rejected)
//   - At most one route per ordered pair: re-adding (from,to) overwrites the weight
//   - Self-routes (A→A) are allowed
//   - Stations are created lazily by AddRoute and are never removed
//   - Constant-time route lookup via nested maps: adjacency[from][to] = *Edge
//   - One sync.RWMutex guards the whole catalog
//
// Core Methods:
//
//	// Station lifecycle
//	AddStation(id string) error                         // O(1)
//	HasStation(id string) bool                          // O(1)
//	Station(id string) (Vertex, error)                  // O(m), m = metadata keys
//	SetStationMetadata(id, key string, v any) error     // O(1)
//	Stations() []string                                 // O(V·log V)
//	StationCount() int                                  // O(1)
//
//	// Route lifecycle
//	AddRoute(from, to string, weight int64) error       // O(1)
//	HasRoute(from, to string) bool                      // O(1)
//	Route(from, to string) (Edge, error)                // O(1)
//	Routes() []Edge                                     // O(E·log E)
//	RouteCount() int                                    // O(1)
//
//	// Adjacency
//	Neighbors(id string) (map[string]Edge, error)       // O(d)
//	NeighborIDs(id string) ([]string, error)            // O(d·log d)
//	DistanceToNeighbor(id, nb string) (int64, error)    // O(1), NoRoute if not adjacent
//	AdjacencyList() map[string][]Edge                   // O(V+E·log d) snapshot
//
//	// Diagnostics
//	Stats() *GraphStats                                 // O(V+E)
//
// Errors:
//
//	ErrEmptyStationID  – zero-length station ID
//	ErrStationNotFound – missing station
//	ErrRouteNotFound   – missing route
//	ErrNegativeWeight  – negative distance on AddRoute
//
// Shortest-path scratch state (tentative distance, predecessor) is never
// stored on Vertex; algorithms keep it in per-call maps.
package core
