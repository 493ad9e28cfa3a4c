// Package railnet is an in-memory query engine for one-way rail networks.
//
// A network is a set of stations joined by directed routes with
// non-negative integer distances. railnet answers:
//
//   - the distance of following an exact station sequence;
//   - the shortest route between two stations (Dijkstra);
//   - every trip between two stations with at most, or exactly, N stops;
//   - every trip between two stations shorter than a distance;
//   - reachability and fewest-stops routes (BFS);
//   - distances to every reachable station, and depth-first exploration
//     that avoids chosen stations.
//
// Layout:
//
//	core/       thread-safe station/route store
//	bfs/        breadth-first reachability
//	dfs/        depth-first traversal and bounded trip enumeration
//	dijkstra/   shortest paths, cycle-aware for source == destination
//	rail/       Network facade: error kinds, logging, options
//	loader/     "AB5, BC4" route parser
//	config/     YAML + RAILNET_* environment configuration
//	logging/    slog construction
//	cmd/railnet  command-line front end
//
// Quick example (the five-station reference network):
//
//	    n := rail.New()
//	    loader.Load(strings.NewReader("AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7"), n)
//	    n.DistanceOfRoute("A", "B", "C")     // 9
//	    n.AllPathsWithMaxStops("C", "C", 3)  // [C D C] [C E B C]
//	    n.ShortestPath("B", "B")             // [B C E B]
package railnet
