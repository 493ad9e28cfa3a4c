// Package bfs provides tunable options and error definitions
// for breadth-first search over a rail network.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a station the search never reached.
	ErrNotReached = errors.New("bfs: station not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a station is dequeued, with its stop count.
	// Returning an error aborts the search.
	OnVisit func(id string, stops int) error

	// MaxStops, if non-negative, stops exploring beyond this many stops.
	// 0 reaches only the start station. Default is -1 (no limit).
	MaxStops int

	// FilterRoute can skip routes by returning false. Called for each route
	// curr→next before next is enqueued.
	FilterRoute func(curr, next string) bool

	err error
}

// DefaultOptions returns BFSOptions with a background context, no hooks,
// no stop limit and no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:         context.Background(),
		OnVisit:     func(string, int) error { return nil },
		MaxStops:    -1,
		FilterRoute: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id string, stops int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStops limits the search radius.
//
//	n >= 0: stations at most n stops away (0 = the start only)
//	n < 0:  ErrOptionViolation; omit the option for no limit
func WithMaxStops(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStops = n
	}
}

// WithFilterRoute skips routes when fn returns false.
func WithFilterRoute(fn func(curr, next string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterRoute = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: stations in visit sequence.
//   - Stops: fewest routes needed to reach each station from the start.
//   - Parent: predecessor of each station in the BFS tree.
type BFSResult struct {
	Order  []string
	Stops  map[string]int
	Parent map[string]string
}

// PathTo reconstructs a fewest-stops path from the start station to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Stops[dest]; !ok {
		return []string{}, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
