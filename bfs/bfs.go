// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/socialnet/core"
)

// queueItem pairs a user with its BFS depth.
type queueItem struct {
	id    core.UserID
	depth int
}

// walker encapsulates mutable BFS state.
// visited is dense: identifiers are [0, UserCount()).
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrOptionViolation, an error wrapping
// core.ErrUserNotFound for an unknown start, or any OnVisit error.
func BFS(g *core.Graph, start core.UserID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.Valid(start) {
		return nil, fmt.Errorf("%w: start %d", core.ErrUserNotFound, start)
	}

	n := g.UserCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]core.UserID, 0, n),
			Depth:  make(map[core.UserID]int, n),
			Parent: make(map[core.UserID]core.UserID, n),
		},
	}

	w.enqueue(start, 0, core.NoUser)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(id core.UserID, d int, parent core.UserID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.NoUser {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// users registered after the walk started are outside the snapshot
		if int(nbr) >= len(w.visited) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}

// Distance returns the minimum number of hops between from and to.
//
// Implementation:
//   - Stage 1: Validate graph, options and both users (unknown user wraps core.ErrUserNotFound).
//   - Stage 2: from == to → 0.
//   - Stage 3: Level-by-level BFS from from; the first time to appears as a
//     neighbor of the current frontier, the frontier depth + 1 is returned.
//   - Stage 4: Frontier exhausted (or MaxDepth reached) → Unreachable, nil error.
//
// Adjacency order may change which users are expanded first inside a level,
// never the returned distance.
//
// Complexity:
//   - Time O(V + E) over the component of from, Space O(V).
func Distance(g *core.Graph, from, to core.UserID, opts ...Option) (int, error) {
	if g == nil {
		return Unreachable, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Unreachable, err
	}
	if !g.Valid(from) || !g.Valid(to) {
		return Unreachable, fmt.Errorf("%w: %d or %d", core.ErrUserNotFound, from, to)
	}
	if from == to {
		return 0, nil
	}

	visited := make([]bool, g.UserCount())
	visited[from] = true
	frontier := []core.UserID{from}
	var next []core.UserID
	for depth := 0; len(frontier) > 0; depth++ {
		if o.MaxDepth > 0 && depth+1 > o.MaxDepth {
			break
		}
		next = next[:0]
		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				if !o.FilterNeighbor(u, v) {
					continue
				}
				if v == to {
					return depth + 1, nil
				}
				if int(v) < len(visited) && !visited[v] {
					visited[v] = true
					next = append(next, v)
				}
			}
		}
		frontier, next = next, frontier
	}

	return Unreachable, nil
}
