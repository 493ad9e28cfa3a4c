package rail

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/railnet/bfs"
	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dfs"
	"github.com/katalvlaran/railnet/dijkstra"
)

// Unlimited disables the stop or distance bound of Reachable, Explore and
// DistancesFrom.
const Unlimited = -1

// Reachable returns the stations reachable from source with their fewest
// stop counts, source included at 0. maxStops >= 0 limits the radius;
// Unlimited (any negative value) searches the whole network.
func (n *Network) Reachable(source string, maxStops int) (map[string]int, error) {
	opts := []bfs.Option{bfs.WithContext(n.ctx)}
	if maxStops >= 0 {
		opts = append(opts, bfs.WithMaxStops(maxStops))
	}
	res, err := bfs.BFS(n.graph, source, opts...)
	if err != nil {
		err = classify(err)
		n.log.Warn("reachable: failed", slog.String("source", source), slog.Any("error", err))

		return map[string]int{}, err
	}
	n.log.Info("reachable", slog.String("source", source), slog.Int("count", len(res.Stops)))

	return res.Stops, nil
}

// FewestStops returns a path from source to destination using the fewest
// routes, ignoring distance. source == destination yields [source].
func (n *Network) FewestStops(source, destination string) ([]string, error) {
	if !n.graph.HasStation(destination) {
		err := classify(fmt.Errorf("%w: %q", core.ErrStationNotFound, destination))
		n.log.Warn("fewest stops: failed", slog.String("destination", destination), slog.Any("error", err))

		return []string{}, err
	}
	res, err := bfs.BFS(n.graph, source, bfs.WithContext(n.ctx))
	if err == nil {
		var path []string
		if path, err = res.PathTo(destination); err == nil {
			n.log.Info("fewest stops",
				slog.String("source", source),
				slog.String("destination", destination),
				slog.Any("path", path))

			return path, nil
		}
	}
	err = classify(err)
	n.log.Warn("fewest stops: failed",
		slog.String("source", source),
		slog.String("destination", destination),
		slog.Any("error", err))

	return []string{}, err
}

// DistancesFrom returns the shortest distance from source to every station it
// reaches, source included at 0. Stations farther than maxDistance are
// omitted; Unlimited (any negative value) keeps them all. Closed routes
// (WithClosedRouteThreshold) are not used.
func (n *Network) DistancesFrom(source string, maxDistance int64) (map[string]int64, error) {
	opts := append(n.dijkstraOptions(), dijkstra.Source(source), dijkstra.WithReturnPath())
	if maxDistance >= 0 {
		opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
	}
	dist, prev, err := dijkstra.Dijkstra(n.graph, opts...)
	if err != nil {
		err = classify(err)
		n.log.Warn("distances: failed", slog.String("source", source), slog.Any("error", err))

		return map[string]int64{}, err
	}

	// A station is reached when it is the source or has a predecessor.
	out := make(map[string]int64, len(dist))
	for id, d := range dist {
		if id == source || prev[id] != "" {
			out[id] = d
		}
	}
	n.log.Info("distances",
		slog.String("source", source),
		slog.Int64("maxDistance", maxDistance),
		slog.Int("count", len(out)))

	return out, nil
}

// Explore lists the stations reachable from source in depth-first discovery
// order, neighbors taken in ascending ID order. maxStops >= 0 limits the
// depth; Unlimited (any negative value) does not. Trips never pass through
// an avoided station; avoiding source itself has no effect.
func (n *Network) Explore(source string, maxStops int, avoid ...string) ([]string, error) {
	skip := make(map[string]bool, len(avoid))
	for _, id := range avoid {
		if id != source {
			skip[id] = true
		}
	}

	order := make([]string, 0)
	opts := []dfs.Option{
		dfs.WithContext(n.ctx),
		dfs.WithMaxDepth(maxStops),
		dfs.WithFilterNeighbor(func(id string) bool { return !skip[id] }),
		dfs.WithOnVisit(func(id string) error {
			n.log.Debug("explore: visit", slog.String("source", source), slog.String("station", id))
			order = append(order, id)
			return nil
		}),
	}
	res, err := dfs.DFS(n.graph, source, opts...)
	if err != nil {
		err = classify(err)
		n.log.Warn("explore: failed", slog.String("source", source), slog.Any("error", err))

		return []string{}, err
	}
	n.log.Info("explore",
		slog.String("source", source),
		slog.Int("maxStops", maxStops),
		slog.Int("count", len(order)),
		slog.Int("skipped", res.SkippedNeighbors))

	return order, nil
}
