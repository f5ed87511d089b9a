// Package bfs provides breadth-first search over a core.BaseMap,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores cells in increasing hop count from a start cell,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	m       core.BaseMap
	n       int  // declared cell count
	bounded bool // whether exits are range-checked against n
	opts    Options
	ctx     context.Context
	queue   []queueItem
	res     *Result
}

// BFS runs breadth-first search on m starting from start,
// applying any number of functional Options. Exit costs are ignored;
// depth counts hops.
// Returns ErrNilMap, ErrOptionViolation for bad options,
// core.ErrIndexOutOfRange for start or exits outside a core.Bounded map,
// the context error on cancellation, or any user-supplied hook error.
func BFS(m core.BaseMap, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	n, bounded := core.CellCountOf(m)
	if bounded {
		if err := core.CheckIndex(start, n); err != nil {
			return nil, fmt.Errorf("bfs: start: %w", err)
		}
	}

	// Prepare walker
	w := &walker{
		m:       m,
		n:       n,
		bounded: bounded,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, start)
	// Main loop
	return w.res, w.loop()
}

// enqueue records cell at depth d with its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(cell, d, parent int) {
	w.res.Depth[cell] = d
	if cell != parent {
		w.res.Parent[cell] = parent
	}
	w.opts.OnEnqueue(cell, d)
	w.queue = append(w.queue, queueItem{cell: cell, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.cell, err)
	}
	return nil
}

// enqueueNeighbors walks the cell's exits, applies the filter and hop cap,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	// cancellation check before fanning out (OnVisit may have cancelled)
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	nextDepth := item.depth + 1
	if w.opts.MaxHops > 0 && nextDepth > w.opts.MaxHops {
		return nil
	}
	for _, e := range w.m.Exits(item.cell) {
		if w.bounded {
			if err := core.CheckIndex(e.To, w.n); err != nil {
				return fmt.Errorf("bfs: exit %d→%d: %w", item.cell, e.To, err)
			}
		}
		if !w.opts.FilterNeighbor(item.cell, e.To) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[e.To]; !seen {
			w.enqueue(e.To, nextDepth, item.cell)
		}
	}
	return nil
}
