// Package core defines the central Graph, Vertex, and Edge types of a rail
// network and provides thread-safe primitives for building and querying it.
//
// All core APIs share a single sync.RWMutex: mutations (AddStation, AddRoute,
// SetStationMetadata) take the write lock, queries take the read lock.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyStationID  - station ID is the empty string.
//	ErrStationNotFound - requested station does not exist.
//	ErrRouteNotFound   - requested route does not exist.
//	ErrNegativeWeight  - negative distance supplied to AddRoute.
//	ErrDistanceOverflow - a summed distance exceeds math.MaxInt64.
package core

import (
	"errors"
	"sync"
)

// NoRoute is the sentinel distance returned by DistanceToNeighbor when the
// neighbor is not directly connected. Valid weights are always >= 0.
const NoRoute int64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStationID indicates that the provided station ID is empty.
	ErrEmptyStationID = errors.New("core: station ID is empty")

	// ErrStationNotFound indicates an operation referenced a non-existent station.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrRouteNotFound indicates an operation referenced a non-existent route.
	ErrRouteNotFound = errors.New("core: route not found")

	// ErrNegativeWeight indicates a negative distance was supplied for a route.
	ErrNegativeWeight = errors.New("core: route distance must be non-negative")

	// ErrDistanceOverflow indicates a summed distance does not fit in an int64.
	ErrDistanceOverflow = errors.New("core: distance overflows int64")
)

// Vertex represents a station in the network.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata carries optional station-specific data (platforms, zone, display
// name...). The graph itself never reads it.
type Vertex struct {
	// ID is the unique identifier for this station.
	ID string

	// Metadata stores arbitrary user data attached to the station.
	Metadata map[string]interface{}
}

// Edge represents a one-way route between two stations.
//
// Edges are stored by value in snapshots returned to callers, so mutating
// a returned Edge never affects the graph.
type Edge struct {
	// From is the source station ID.
	From string

	// To is the destination station ID.
	To string

	// Weight is the distance of the route (always >= 0).
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStationCapacity pre-sizes the station catalog and adjacency maps for n
// stations. Non-positive values are ignored.
func WithStationCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory rail network.
//
// Stations are created lazily by AddRoute (or explicitly by AddStation) and
// are never removed. adjacency[from][to] holds the single route from→to;
// re-adding the same pair overwrites its weight.
type Graph struct {
	mu sync.RWMutex // guards vertices, adjacency, routeCount

	capacity int // initial map size hint

	// Storage
	vertices   map[string]*Vertex          // station ID → Vertex
	adjacency  map[string]map[string]*Edge // adjacency[from][to] = route
	routeCount int                         // number of distinct (from,to) routes
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.adjacency = make(map[string]map[string]*Edge, g.capacity)

	return g
}
