package astar

// node is one live entry of the open set.
type node struct {
	idx   int     // cell index
	g     float64 // cost from start
	f     float64 // g + heuristic
	seq   uint64  // insertion rank, breaks f ties
	index int     // position in the heap, maintained by openQueue
}

// openQueue is a min-heap of *node ordered by (f, seq) ascending.
// Each node tracks its own heap position so heap.Fix can apply decrease-key.
type openQueue []*node

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x interface{}) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *openQueue) Pop() interface{} {
	old := *q
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*q = old[:last]

	return n
}
