// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, DistanceToNeighbor, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns IDs sorted lex asc.
//   - AdjacencyList() returns per-station route slices sorted by To asc.
// Concurrency:
//   - All operations hold the read lock for a consistent snapshot.
// AI-HINT (file):
//   - Returned maps and slices are independent copies; mutating them never touches the graph.
//   - DistanceToNeighbor never fails for a missing neighbor; it returns NoRoute.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns a snapshot of the outgoing routes of id, keyed by
// destination station ID.
//
// Errors:
//   - ErrEmptyStationID: if id == "".
//   - ErrStationNotFound: if the station does not exist.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) (map[string]Edge, error) {
	if id == "" {
		return nil, ErrEmptyStationID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}
	out := make(map[string]Edge, len(bucket))
	var to string
	var e *Edge
	for to, e = range bucket {
		out[to] = *e
	}

	return out, nil
}

// NeighborIDs returns the destination IDs reachable in one hop from id,
// sorted ascending.
//
// Errors:
//   - ErrEmptyStationID, ErrStationNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyStationID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}
	out := make([]string, 0, len(bucket))
	var to string
	for to = range bucket {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// DistanceToNeighbor returns the weight of the direct route id→neighbor,
// or NoRoute (with a nil error) if neighbor is not directly connected.
//
// Errors:
//   - ErrEmptyStationID, ErrStationNotFound: only for a missing source station.
//
// Complexity: O(1).
func (g *Graph) DistanceToNeighbor(id, neighbor string) (int64, error) {
	// AI-HINT: a missing neighbor is not an error; compare the result against NoRoute.
	if id == "" {
		return NoRoute, ErrEmptyStationID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return NoRoute, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}
	e, ok := bucket[neighbor]
	if !ok {
		return NoRoute, nil
	}

	return e.Weight, nil
}

// AdjacencyList returns a consistent snapshot of every station's outgoing
// routes. Every station appears as a key (possibly with an empty slice);
// each slice is sorted by Edge.To ascending.
//
// Query algorithms run on this snapshot so that a single read lock covers
// the whole traversal input and per-step locking is avoided.
//
// Complexity:
//   - Time O(V + E log d), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string][]Edge, len(g.adjacency))
	var from string
	var bucket map[string]*Edge
	var e *Edge
	for from, bucket = range g.adjacency {
		edges := make([]Edge, 0, len(bucket))
		for _, e = range bucket {
			edges = append(edges, *e)
		}
		sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
		out[from] = edges
	}

	return out
}
