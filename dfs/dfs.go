// Package dfs implements depth-first search over a core.Graph rail network.
//
// Key features:
//   - DFS(g, startID, opts...): reachability traversal with discovery depth,
//     parent links and post-order
//   - Hooks: OnVisit (pre-order) with error abort
//   - Limits: MaxDepth (every station within the limit is reached at its
//     fewest routes), FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/railnet/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj  map[string][]core.Edge // adjacency snapshot
	opts DFSOptions             // traversal options
	res  *DFSResult             // result collector
}

// DFS performs depth-first search from startID following one-way routes.
// Neighbors are explored in ascending station ID order.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Snapshot and verify startID
	adj := g.AdjacencyList()
	if _, ok := adj[startID]; !ok {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	res := &DFSResult{
		Order:   make([]string, 0, len(adj)),
		Depth:   make(map[string]int, len(adj)),
		Parent:  make(map[string]string, len(adj)),
		Visited: make(map[string]bool, len(adj)),
	}

	// 5. Traverse; SkippedNeighbors is accumulated on res directly
	walker := &dfsWalker{adj: adj, opts: dopts, res: res}
	if err := walker.traverse(startID, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits station id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth. Under a depth limit a station may be
	//    entered again through a shallower path; hooks and Order see it once.
	first := !w.res.Visited[id]
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if first && w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 5. Explore each neighbor
	var e core.Edge
	for _, e = range w.adj[id] {
		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			w.res.SkippedNeighbors++
			continue
		}

		// Recurse on unvisited, or on a shallower route within the depth limit
		if !w.res.Visited[e.To] || w.shallower(e.To, depth+1) {
			w.res.Parent[e.To] = id
			if err := w.traverse(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Record finish order
	if first {
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

// shallower reports whether depth improves on id's recorded depth while a
// depth limit is in force. Without a limit the first discovery is final.
func (w *dfsWalker) shallower(id string, depth int) bool {
	return w.opts.MaxDepth >= 0 && depth < w.res.Depth[id]
}
