package astar

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/lvnav/core"
)

var searchers = sync.Pool{
	New: func() interface{} { return NewSearcher() },
}

// Search finds a path from start to end over m using a pooled Searcher.
//
// Returns a failed NavigationPath with a nil error when end is unreachable
// or the expansion budget runs out. Errors are reserved for invalid input:
// ErrNilMap, core.ErrIndexOutOfRange, core.ErrInvalidCost, ErrInvalidHeuristic
// and ErrBrokenPath.
//
// Complexity: O(S·d·log S) time, O(S·d) memory, S = MaxSteps, d = exits per cell.
func Search(m core.BaseMap, start, end int, opts ...Option) (NavigationPath, error) {
	s := searchers.Get().(*Searcher)
	s.configure(opts)
	path, err := s.Search(m, start, end)
	searchers.Put(s)

	return path, err
}

// Searcher runs A* searches and keeps its open heap, closed set and parent
// map between calls. A Searcher is not safe for concurrent use.
type Searcher struct {
	options  Options
	open     openQueue
	openIdx  map[int]*node
	closed   map[int]float64 // expanded cell → f at expansion
	parents  map[int]int
	seq      uint64
	expanded int
}

// NewSearcher returns a Searcher configured by opts.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		openIdx: make(map[int]*node),
		closed:  make(map[int]float64),
		parents: make(map[int]int),
	}
	s.configure(opts)

	return s
}

func (s *Searcher) configure(opts []Option) {
	s.options = DefaultOptions()
	for _, opt := range opts {
		opt(&s.options)
	}
}

// Expanded returns the number of nodes expanded by the last Search.
func (s *Searcher) Expanded() int { return s.expanded }

// Search finds a path from start to end over m.
// See the package-level Search for result and error semantics.
func (s *Searcher) Search(m core.BaseMap, start, end int) (NavigationPath, error) {
	began := time.Now()
	path, err := s.run(m, start, end)
	s.options.Metrics.RecordSearch(time.Since(began), s.expanded, path.Success, err)

	return path, err
}

func (s *Searcher) run(m core.BaseMap, start, end int) (NavigationPath, error) {
	// 1) Reset buffers and validate inputs
	s.reset()
	fail := NavigationPath{Destination: end}
	if m == nil {
		return fail, ErrNilMap
	}
	n, bounded := core.CellCountOf(m)
	if bounded {
		if err := core.CheckIndex(start, n); err != nil {
			return fail, fmt.Errorf("start: %w", err)
		}
		if err := core.CheckIndex(end, n); err != nil {
			return fail, fmt.Errorf("end: %w", err)
		}
	}

	// 2) Trivial search: no expansion
	if start == end {
		return NavigationPath{Destination: end, Success: true, Steps: []int{start}}, nil
	}

	// 3) Seed the open set with start
	h, err := heuristic(m, start, end)
	if err != nil {
		return fail, err
	}
	s.push(start, 0, h)

	// 4) Expand lowest-f nodes until the goal is generated or the budget runs out
	for s.open.Len() > 0 && s.expanded < s.options.MaxSteps {
		q := heap.Pop(&s.open).(*node)
		delete(s.openIdx, q.idx)
		s.expanded++

		for _, e := range m.Exits(q.idx) {
			if err = core.CheckCost(e.Cost); err != nil {
				return fail, fmt.Errorf("exit %d→%d: %w", q.idx, e.To, err)
			}
			if bounded {
				if err = core.CheckIndex(e.To, n); err != nil {
					return fail, fmt.Errorf("exit %d→%d: %w", q.idx, e.To, err)
				}
			}
			g := q.g + e.Cost
			if e.To == end {
				s.parents[end] = q.idx
				return s.reconstruct(start, end)
			}
			if h, err = heuristic(m, e.To, end); err != nil {
				return fail, err
			}
			f := g + h

			if c, seen := s.closed[e.To]; seen && c < f {
				continue
			}
			if o, ok := s.openIdx[e.To]; ok {
				if o.f < f {
					continue
				}
				if o.f == f {
					// Same cell, same h, so same g: only the parent moves.
					s.parents[e.To] = q.idx
					continue
				}
				// Decrease-key: the cheaper route takes a fresh insertion rank.
				s.seq++
				o.g, o.f, o.seq = g, f, s.seq
				heap.Fix(&s.open, o.index)
				s.parents[e.To] = q.idx
				continue
			}
			s.push(e.To, g, f)
			s.parents[e.To] = q.idx
		}

		s.closed[q.idx] = q.f
	}

	if s.open.Len() > 0 {
		s.options.Logger.Debug("astar: step budget exhausted",
			slog.Int("start", start), slog.Int("end", end),
			slog.Int("max_steps", s.options.MaxSteps), slog.Int("open", s.open.Len()))
	}

	return fail, nil
}

// push inserts a new node; f must already include the heuristic.
func (s *Searcher) push(idx int, g, f float64) {
	s.seq++
	nd := &node{idx: idx, g: g, f: f, seq: s.seq}
	heap.Push(&s.open, nd)
	s.openIdx[idx] = nd
}

// reconstruct walks parents from end back to start.
// The walk is bounded by the parent count, so a rewired cycle cannot hang it.
func (s *Searcher) reconstruct(start, end int) (NavigationPath, error) {
	steps := []int{end}
	limit := len(s.parents) + 1
	for cur := end; cur != start; {
		p, ok := s.parents[cur]
		if !ok || len(steps) > limit {
			s.options.Logger.Warn("astar: broken parent chain",
				slog.Int("start", start), slog.Int("end", end), slog.Int("at", cur))
			return NavigationPath{Destination: end}, fmt.Errorf("%w: stuck at %d", ErrBrokenPath, cur)
		}
		steps = append(steps, p)
		cur = p
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return NavigationPath{Destination: end, Success: true, Steps: steps}, nil
}

func (s *Searcher) reset() {
	for i := range s.open {
		s.open[i] = nil
	}
	s.open = s.open[:0]
	clear(s.openIdx)
	clear(s.closed)
	clear(s.parents)
	s.seq = 0
	s.expanded = 0
}

func heuristic(m core.BaseMap, from, to int) (float64, error) {
	h := m.PathingDistance(from, to)
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0, fmt.Errorf("%w: %d→%d got %v", ErrInvalidHeuristic, from, to, h)
	}

	return h, nil
}
