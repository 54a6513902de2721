package astar

// entry is one frontier item: a node together with the costs it was
// queued with. The frontier is insert-only; a better path to a node
// pushes a fresh entry, and the superseded one is recognized as stale
// when popped.
type entry struct {
	node int
	g    float64 // cost from start at push time
	f    float64 // g plus the heuristic estimate to the goal
}

// frontier implements heap.Interface as a min-heap on f.
type frontier []entry

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	return q[i].f < q[j].f
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *frontier) Push(x any) {
	*q = append(*q, x.(entry))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[0 : n-1]
	return e
}
