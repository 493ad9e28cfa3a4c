// Package bfs explores a rail network breadth-first from one station,
// returning each reachable station's fewest-stops count, parent links and
// visit order. Route distances are ignored: BFS counts stops.
//
// Neighbors are expanded in ascending station ID order, so Order and Parent
// are reproducible for a fixed graph.
//
// Complexity: Time O(V + E log d), Memory O(V).
package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/railnet/core"
)

// queueItem pairs a station ID with its stop count.
type queueItem struct {
	id    string
	stops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   map[string][]core.Edge
	opts  BFSOptions
	ctx   context.Context
	queue *arrayqueue.Queue
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// a context error, or any OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj := g.AdjacencyList()
	if _, ok := adj[startID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := len(adj)
	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: arrayqueue.New(),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Stops:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id reached after `stops` routes and records its parent.
func (w *walker) enqueue(id string, stops int, parent string) {
	w.res.Stops[id] = stops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue.Enqueue(queueItem{id: id, stops: stops})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.stops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.stops + 1
		if w.opts.MaxStops >= 0 && next > w.opts.MaxStops {
			continue
		}
		var e core.Edge
		for _, e = range w.adj[item.id] {
			if !w.opts.FilterRoute(item.id, e.To) {
				continue
			}
			if _, seen := w.res.Stops[e.To]; !seen {
				w.enqueue(e.To, next, item.id)
			}
		}
	}

	return nil
}
