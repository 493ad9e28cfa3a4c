// Package dfs defines types and options for depth-first search over a rail
// network, including cancellation, hooks, depth limiting, neighbor filtering,
// and the result cap used by bounded path enumeration.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or to
	// one of the path enumerators.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start station ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrStationNotFound indicates that the source or destination of a path
	// enumeration does not exist in the graph.
	ErrStationNotFound = errors.New("dfs: station not found")

	// ErrNegativeBound indicates a negative stop count or distance bound.
	ErrNegativeBound = errors.New("dfs: bound must be non-negative")

	// ErrResultLimit indicates that enumeration stopped after collecting
	// MaxResults paths. The paths collected so far are returned with it.
	ErrResultLimit = errors.New("dfs: result limit reached")
)

// Option configures optional behavior of DFS traversal and path enumeration.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts traversal at the next visited station.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a station (pre-order).
	// Returning an error aborts traversal with that error. DFS only.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start station. Default is -1 (no limit). DFS only.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	// Return true to traverse into that neighbor, false to skip it. DFS only.
	FilterNeighbor func(id string) bool

	// OnPath, if non-nil, is invoked with every discovered path before it is
	// stored. The slice is the stored result; treat it as read-only.
	// Returning an error aborts enumeration.
	OnPath func(path []string) error

	// MaxResults, if positive, stops enumeration once that many paths are
	// collected (ErrResultLimit). Default is 0 (no limit).
	MaxResults int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - No result cap
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		OnPath:         nil,
		MaxResults:     0,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start station is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithOnPath returns an Option that streams every discovered path to fn.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *DFSOptions) {
		o.OnPath = fn
	}
}

// WithMaxResults returns an Option that caps the number of collected paths.
// Non-positive values mean no cap.
func WithMaxResults(n int) Option {
	return func(o *DFSOptions) {
		o.MaxResults = n
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records stations in the sequence they finished (post-order).
	Order []string

	// Depth maps each station ID to its discovery depth (#routes) from the start.
	// Under MaxDepth it is the fewest routes to the station.
	Depth map[string]int

	// Parent maps each station ID to the station it was discovered from
	// (the shallowest such station under MaxDepth).
	// The start station does not appear in this map.
	Parent map[string]string

	// Visited flags which stations were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}
