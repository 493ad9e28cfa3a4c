// Package rail is the query engine of a rail network: it owns a core.Graph
// and answers route distance, shortest path and bounded trip enumeration
// queries over it.
//
// Every operation has a defined result for every input. Failures return the
// empty result of the operation (-1 for distances, an empty slice for paths)
// together with an error matching one of ErrInvalidWeight, ErrUnknownStation,
// ErrNoRoute, ErrEmptyPath, ErrInvalidBound, ErrDistanceOverflow or
// ErrResultLimit. Nothing is printed; events go to the injected *slog.Logger
// (discarded by default).
package rail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dfs"
	"github.com/katalvlaran/railnet/dijkstra"
)

// NoRoute is the distance reported when a route does not exist.
const NoRoute = core.NoRoute

// Router lists the public operations of the query engine.
type Router interface {
	AddRoute(source, destination string, distance int64) error
	DistanceOfRoute(path ...string) (int64, error)
	AllPathsLessThanDistance(source, destination string, maxDistance int64) ([][]string, error)
	AllPathsWithMaxStops(source, destination string, maxStops int) ([][]string, error)
	AllPathsWithNumStops(source, destination string, numStops int) ([][]string, error)
	ShortestPath(source, destination string) ([]string, error)
}

var _ Router = (*Network)(nil)

// Option configures a Network.
type Option func(*Network)

// WithLogger routes query events to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithZeroLengthSelfPath selects the answer of ShortestPath(X, X):
// [X] with distance 0 (true) or the cheapest cycle back to X (false, default).
func WithZeroLengthSelfPath(allow bool) Option {
	return func(n *Network) { n.zeroSelf = allow }
}

// WithMaxResults caps every enumeration at limit paths (0 = no cap).
func WithMaxResults(limit int) Option {
	return func(n *Network) {
		if limit > 0 {
			n.maxResults = limit
		}
	}
}

// WithClosedRouteThreshold closes every route of distance >= threshold to
// ShortestPath, ShortestDistance and DistancesFrom. 0 (default) closes none;
// negative values are ignored.
func WithClosedRouteThreshold(threshold int64) Option {
	return func(n *Network) {
		if threshold >= 0 {
			n.closedAt = threshold
		}
	}
}

// WithContext bounds enumeration queries by ctx. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(n *Network) {
		if ctx != nil {
			n.ctx = ctx
		}
	}
}

// WithGraph makes the Network query an existing graph instead of a new one.
func WithGraph(g *core.Graph) Option {
	return func(n *Network) {
		if g != nil {
			n.graph = g
		}
	}
}

// Network is the query engine. It is safe for concurrent use: the graph is
// lock-protected and every query keeps its scratch state per call.
type Network struct {
	graph      *core.Graph
	log        *slog.Logger
	ctx        context.Context
	zeroSelf   bool
	maxResults int
	closedAt   int64
}

// New creates a Network over an empty graph unless WithGraph is given.
func New(opts ...Option) *Network {
	n := &Network{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx: context.Background(),
	}
	var opt Option
	for _, opt = range opts {
		opt(n)
	}
	if n.graph == nil {
		n.graph = core.NewGraph()
	}

	return n
}

// Graph exposes the underlying store (read access for callers such as the CLI).
func (n *Network) Graph() *core.Graph { return n.graph }

// AddRoute inserts or overwrites the one-way route source→destination.
// A negative distance is rejected with ErrInvalidWeight and nothing changes.
func (n *Network) AddRoute(source, destination string, distance int64) error {
	if err := n.graph.AddRoute(source, destination, distance); err != nil {
		err = classify(err)
		n.log.Error("route rejected",
			slog.String("source", source),
			slog.String("destination", destination),
			slog.Int64("distance", distance),
			slog.Any("error", err))

		return err
	}
	n.log.Debug("route added",
		slog.String("source", source),
		slog.String("destination", destination),
		slog.Int64("distance", distance))

	return nil
}

// DistanceOfRoute returns the total distance of following path exactly.
//
// A single known station has distance 0. The walk stops at the first unknown
// station (ErrUnknownStation), missing hop (ErrNoRoute) or a total beyond
// math.MaxInt64 (ErrDistanceOverflow) and reports NoRoute; partial sums are
// never returned.
func (n *Network) DistanceOfRoute(path ...string) (int64, error) {
	if len(path) == 0 {
		n.log.Warn("route distance: empty path")

		return NoRoute, ErrEmptyPath
	}
	if len(path) == 1 && !n.graph.HasStation(path[0]) {
		err := classify(fmt.Errorf("%w: %q", core.ErrStationNotFound, path[0]))
		n.log.Warn("route distance: unknown station", slog.Any("path", path), slog.Any("error", err))

		return NoRoute, err
	}

	var total int64
	for i := 0; i+1 < len(path); i++ {
		d, err := n.graph.DistanceToNeighbor(path[i], path[i+1])
		if err != nil {
			err = classify(err)
			n.log.Warn("route distance: unknown station", slog.Any("path", path), slog.Any("error", err))

			return NoRoute, err
		}
		if d == core.NoRoute && !n.graph.HasStation(path[i+1]) {
			err = classify(fmt.Errorf("%w: %q", core.ErrStationNotFound, path[i+1]))
			n.log.Warn("route distance: unknown station", slog.Any("path", path), slog.Any("error", err))

			return NoRoute, err
		}
		if d == core.NoRoute {
			err = classify(fmt.Errorf("%w: %s→%s", core.ErrRouteNotFound, path[i], path[i+1]))
			n.log.Warn("route distance: no such route", slog.Any("path", path), slog.Any("error", err))

			return NoRoute, err
		}
		var ok bool
		if total, ok = core.AddDistance(total, d); !ok {
			err = classify(fmt.Errorf("%w: at %s→%s", core.ErrDistanceOverflow, path[i], path[i+1]))
			n.log.Warn("route distance: overflow", slog.Any("path", path), slog.Any("error", err))

			return NoRoute, err
		}
	}
	n.log.Info("route distance", slog.Any("path", path), slog.Int64("distance", total))

	return total, nil
}

// AllPathsLessThanDistance lists every trip source → … → destination whose
// total distance is strictly below maxDistance. Stations may repeat.
func (n *Network) AllPathsLessThanDistance(source, destination string, maxDistance int64) ([][]string, error) {
	paths, err := dfs.PathsLessThanDistance(n.graph, source, destination, maxDistance, n.dfsOptions()...)

	return n.reportPaths("paths less than distance", source, destination, slog.Int64("maxDistance", maxDistance), paths, err)
}

// AllPathsWithMaxStops lists every trip source → … → destination with
// between 1 and maxStops stops.
func (n *Network) AllPathsWithMaxStops(source, destination string, maxStops int) ([][]string, error) {
	paths, err := dfs.PathsWithMaxStops(n.graph, source, destination, maxStops, n.dfsOptions()...)

	return n.reportPaths("paths with max stops", source, destination, slog.Int("maxStops", maxStops), paths, err)
}

// AllPathsWithNumStops lists every trip source → … → destination with
// exactly numStops stops.
func (n *Network) AllPathsWithNumStops(source, destination string, numStops int) ([][]string, error) {
	paths, err := dfs.PathsWithExactStops(n.graph, source, destination, numStops, n.dfsOptions()...)

	return n.reportPaths("paths with exact stops", source, destination, slog.Int("numStops", numStops), paths, err)
}

// ShortestPath returns the cheapest station sequence from source to
// destination, or an empty slice with ErrUnknownStation / ErrNoRoute.
func (n *Network) ShortestPath(source, destination string) ([]string, error) {
	res, err := n.shortest(source, destination)
	if err != nil {
		return []string{}, err
	}

	return res.Path, nil
}

// ShortestDistance returns the distance of ShortestPath, or NoRoute.
func (n *Network) ShortestDistance(source, destination string) (int64, error) {
	res, err := n.shortest(source, destination)
	if err != nil {
		return NoRoute, err
	}

	return res.Distance, nil
}

// shortest runs dijkstra.ShortestPath with the configured self-path policy.
func (n *Network) shortest(source, destination string) (*dijkstra.Result, error) {
	res, err := dijkstra.ShortestPath(n.graph, source, destination,
		append(n.dijkstraOptions(), dijkstra.WithZeroLengthSelfPath(n.zeroSelf))...)
	if err != nil {
		err = classify(err)
		n.log.Warn("shortest path: none",
			slog.String("source", source),
			slog.String("destination", destination),
			slog.Any("error", err))

		return nil, err
	}
	n.log.Info("shortest path",
		slog.String("source", source),
		slog.String("destination", destination),
		slog.Any("path", res.Path),
		slog.Int64("distance", res.Distance))

	return res, nil
}

// dijkstraOptions translates Network settings into shortest-path options.
func (n *Network) dijkstraOptions() []dijkstra.Option {
	if n.closedAt > 0 {
		return []dijkstra.Option{dijkstra.WithInfEdgeThreshold(n.closedAt)}
	}

	return nil
}

// dfsOptions translates Network settings into enumeration options.
func (n *Network) dfsOptions() []dfs.Option {
	opts := []dfs.Option{dfs.WithContext(n.ctx)}
	if n.maxResults > 0 {
		opts = append(opts, dfs.WithMaxResults(n.maxResults))
	}

	return opts
}

// reportPaths logs an enumeration outcome and normalizes its result.
// A truncated result is returned with its ErrResultLimit error; any other
// failure yields an empty slice.
func (n *Network) reportPaths(query, source, destination string, bound slog.Attr, paths [][]string, err error) ([][]string, error) {
	attrs := []any{slog.String("source", source), slog.String("destination", destination), bound}
	if err != nil {
		err = classify(err)
		attrs = append(attrs, slog.Any("error", err))
		if len(paths) > 0 && errors.Is(err, ErrResultLimit) {
			n.log.Warn(query+": truncated", append(attrs, slog.Int("count", len(paths)))...)

			return paths, err
		}
		n.log.Warn(query+": failed", attrs...)

		return [][]string{}, err
	}
	if len(paths) == 0 {
		n.log.Info(query+": none found", attrs...)

		return [][]string{}, nil
	}
	n.log.Info(query, append(attrs, slog.Int("count", len(paths)), slog.Any("paths", paths))...)

	return paths, nil
}
