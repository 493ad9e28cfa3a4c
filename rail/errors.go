package rail

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/railnet/bfs"
	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dfs"
	"github.com/katalvlaran/railnet/dijkstra"
)

// Error kinds reported by Network. Each returned error matches exactly one
// of these with errors.Is, and also matches the underlying package error.
var (
	// ErrInvalidWeight indicates a negative route distance; the graph is unchanged.
	ErrInvalidWeight = errors.New("rail: invalid route distance")

	// ErrUnknownStation indicates a query referenced a station absent from the network.
	ErrUnknownStation = errors.New("rail: unknown station")

	// ErrNoRoute indicates a requested hop or path does not exist.
	ErrNoRoute = errors.New("rail: no such route")

	// ErrEmptyPath indicates DistanceOfRoute was called without stations.
	ErrEmptyPath = errors.New("rail: empty path")

	// ErrInvalidBound indicates a negative stop count or distance bound.
	ErrInvalidBound = errors.New("rail: invalid bound")

	// ErrDistanceOverflow indicates a route distance too large for an int64.
	ErrDistanceOverflow = errors.New("rail: distance overflow")

	// ErrResultLimit indicates enumeration was truncated at the configured cap.
	ErrResultLimit = errors.New("rail: result limit reached")
)

// classify maps errors of the core, bfs, dfs and dijkstra packages onto the
// Network error kinds. Unknown errors (context, hooks) pass through.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var kind error
	switch {
	case errors.Is(err, core.ErrNegativeWeight):
		kind = ErrInvalidWeight
	case errors.Is(err, core.ErrStationNotFound),
		errors.Is(err, core.ErrEmptyStationID),
		errors.Is(err, bfs.ErrStartVertexNotFound),
		errors.Is(err, dfs.ErrStationNotFound),
		errors.Is(err, dfs.ErrStartVertexNotFound),
		errors.Is(err, dijkstra.ErrVertexNotFound),
		errors.Is(err, dijkstra.ErrEmptySource),
		errors.Is(err, dijkstra.ErrEmptyDestination):
		kind = ErrUnknownStation
	case errors.Is(err, core.ErrRouteNotFound),
		errors.Is(err, bfs.ErrNotReached),
		errors.Is(err, dijkstra.ErrNoPath):
		kind = ErrNoRoute
	case errors.Is(err, core.ErrDistanceOverflow):
		kind = ErrDistanceOverflow
	case errors.Is(err, dfs.ErrNegativeBound):
		kind = ErrInvalidBound
	case errors.Is(err, dfs.ErrResultLimit):
		kind = ErrResultLimit
	default:
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}
