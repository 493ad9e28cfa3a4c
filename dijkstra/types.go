// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on rail networks.
//
// Options:
//
//	– Source:             ID of the starting station (must be non-empty and present in the graph).
//	– ReturnPath:         if true, Dijkstra returns the predecessor map for path reconstruction.
//	– MaxDistance:        optional cap on distances to explore; stations beyond this are skipped.
//	– InfEdgeThreshold:   routes with weight >= this threshold are treated as closed (0 = none).
//	– ZeroLengthSelfPath: how ShortestPath answers source == destination.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrEmptyDestination if the provided destination ID is empty.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexNotFound   if the source or destination station does not exist.
//	– ErrNoPath           if the destination cannot be reached.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source station ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyDestination indicates that the provided destination station ID is empty.
	ErrEmptyDestination = errors.New("dijkstra: destination vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or destination station does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that no route connects source to destination.
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all routes (including zero-weight routes) as closed.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source             – starting station ID (must be non-empty and present in the graph).
// ReturnPath         – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance        – optional cap on distances to explore (stations beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold   – treat routes with weight ≥ this threshold as closed.
//
//	Default is 0 (no closures); WithInfEdgeThreshold requires a positive value.
//
// ZeroLengthSelfPath – when source == destination, ShortestPath returns the
//
//	trivial one-station path (true) or searches for the cheapest cycle back
//	to the source through at least one route (false, default).
type Options struct {
	Source             string // The ID of the source station
	ReturnPath         bool   // Whether to return the predecessor map
	MaxDistance        int64  // Maximum distance to explore
	InfEdgeThreshold   int64  // Weight at or above which routes are non-traversable; 0 disables
	ZeroLengthSelfPath bool   // source == destination answers with a zero-length path
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting station ID for Dijkstra.
// ShortestPath sets it itself from its source argument.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Stations whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which routes are
// considered closed (treated as infinite weight).
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithZeroLengthSelfPath selects how ShortestPath answers source == destination.
// true: the trivial path [source] with distance 0.
// false: the cheapest cycle source → … → source (ErrNoPath if none exists).
func WithZeroLengthSelfPath(allow bool) Option {
	return func(o *Options) {
		o.ZeroLengthSelfPath = allow
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source station ID.
//
// Defaults:
//   - Source:             <as passed> (validated later).
//   - ReturnPath:         false.
//   - MaxDistance:        math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold:   0 (no closed routes).
//   - ZeroLengthSelfPath: false (self queries search for a cycle).
func DefaultOptions(source string) Options {
	return Options{
		Source:             source,
		ReturnPath:         false,
		MaxDistance:        math.MaxInt64,
		InfEdgeThreshold:   0,
		ZeroLengthSelfPath: false,
	}
}

// Result is the answer of a single-pair ShortestPath query.
type Result struct {
	// Path lists station IDs from source to destination inclusive.
	// For a cycle query (source == destination) both ends are the source.
	Path []string

	// Distance is the total weight along Path.
	Distance int64
}

// Stops returns the number of hops in the path.
func (r *Result) Stops() int {
	if r == nil || len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
