// File: methods_edges.go
// Role: Route lifecycle & queries: AddRoute/HasRoute/Route/Routes/RouteCount.
// Determinism:
//   - Routes() returns routes sorted by (From, To) asc.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - Negative distances are rejected with ErrNegativeWeight and leave the graph untouched.
//   - Re-adding the same (from,to) pair overwrites the weight; RouteCount does not grow.

package core

import (
	"fmt"
	"sort"
)

// AddRoute creates or overwrites the one-way route source→destination.
//
// Steps:
//  1. Validate IDs and weight (no mutation on failure).
//  2. Lock mu; create missing stations.
//  3. Store the route in adjacency[source][destination], overwriting any
//     previous weight for the same pair.
//
// No reverse route is created. Self-routes (source == destination) are legal.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddRoute(source, destination string, weight int64) error {
	// 1) Input validation
	if source == "" || destination == "" {
		return ErrEmptyStationID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, source, destination, weight)
	}

	// 2) Ensure stations exist
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureStation(source)
	g.ensureStation(destination)

	// 3) Set or overwrite the route
	if e, ok := g.adjacency[source][destination]; ok {
		e.Weight = weight

		return nil
	}
	g.adjacency[source][destination] = &Edge{From: source, To: destination, Weight: weight}
	g.routeCount++

	return nil
}

// HasRoute reports whether a direct route from→to exists.
// Complexity: O(1).
func (g *Graph) HasRoute(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Route returns a copy of the direct route from→to.
//
// Errors:
//   - ErrStationNotFound if from is absent.
//   - ErrRouteNotFound if from exists but has no route to `to`.
func (g *Graph) Route(from, to string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[from]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrStationNotFound, from)
	}
	e, ok := out[to]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s→%s", ErrRouteNotFound, from, to)
	}

	return *e, nil
}

// Routes returns copies of all routes sorted by (From, To) ascending.
// Complexity: O(E log E).
func (g *Graph) Routes() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.routeCount)
	var bucket map[string]*Edge
	var e *Edge
	for _, bucket = range g.adjacency {
		for _, e = range bucket {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// RouteCount returns the number of distinct routes.
// Complexity: O(1).
func (g *Graph) RouteCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.routeCount
}
