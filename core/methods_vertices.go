// File: methods_vertices.go
// Role: Station lifecycle & queries.
//
// Determinism:
//   - Stations() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Station catalog protected by mu.
//
// AI-Hints (file):
//   - Stations() is a stable enumeration surface; rely on it for reproducible outputs.
//   - There is no RemoveStation: stations live as long as the graph.
package core

import (
	"fmt"
	"sort"
)

// AddStation inserts a station if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyStationID).
//   - Stage 2: Under the write lock, register the station if absent.
//
// Errors:
//   - ErrEmptyStationID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddStation(id string) error {
	if id == "" {
		return ErrEmptyStationID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureStation(id)

	return nil
}

// ensureStation registers id in the catalog and bootstraps its adjacency bucket.
// Caller must hold the write lock.
func (g *Graph) ensureStation(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string]*Edge)
}

// HasStation reports whether the station ID exists (empty ID ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasStation(id string) bool {
	// AI-HINT: O(1) membership on station catalog; empty id → false.
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Station returns a copy of the station record with a shallow copy of its
// Metadata map.
//
// Errors:
//   - ErrEmptyStationID, ErrStationNotFound.
func (g *Graph) Station(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyStationID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}
	meta := make(map[string]interface{}, len(v.Metadata))
	var k string
	var val interface{}
	for k, val = range v.Metadata {
		meta[k] = val
	}

	return Vertex{ID: v.ID, Metadata: meta}, nil
}

// SetStationMetadata attaches key=value to an existing station.
//
// Errors:
//   - ErrEmptyStationID, ErrStationNotFound.
func (g *Graph) SetStationMetadata(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyStationID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}
	v.Metadata[key] = value

	return nil
}

// Stations returns all station IDs sorted ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Stations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// StationCount returns the number of stations.
// Complexity: O(1).
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
