// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; rely on it for quick diagnostics.

package core

// GraphStats is an immutable-by-convention snapshot of catalog sizes.
type GraphStats struct {
	// StationCount is the number of stations.
	StationCount int

	// RouteCount is the number of distinct (from,to) routes.
	RouteCount int

	// SelfRouteCount is the number of routes with From == To.
	SelfRouteCount int

	// DeadEndCount is the number of stations without outgoing routes.
	DeadEndCount int

	// TotalDistance is the sum of all route weights, saturated at math.MaxInt64.
	TotalDistance int64
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan the adjacency once, counting self-routes, dead ends and weights.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		StationCount: len(g.vertices),
		RouteCount:   g.routeCount,
	}
	var from string
	var bucket map[string]*Edge
	var e *Edge
	for from, bucket = range g.adjacency {
		if len(bucket) == 0 {
			stats.DeadEndCount++
		}
		for _, e = range bucket {
			if e.To == from {
				stats.SelfRouteCount++
			}
			stats.TotalDistance, _ = AddDistance(stats.TotalDistance, e.Weight)
		}
	}

	return &stats
}
