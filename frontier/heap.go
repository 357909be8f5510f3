package frontier

import "container/heap"

// Heap is the priority-ordered frontier. It keeps every live entry in
// two binary heaps over shared pointers: one ordered best-first for Pop,
// one ordered worst-first for Evict. Removal from one side marks the
// entry dead; the other side discards dead entries lazily when they
// surface. Both orders break score ties by insertion sequence, so
// behavior is reproducible for a given deal and weight set.
type Heap struct {
	best  bestHeap
	worst worstHeap
	live  int
	seq   uint64
}

func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) Push(e *Entry) {
	h.seq++
	e.seq = h.seq
	heap.Push(&h.best, e)
	heap.Push(&h.worst, e)
	h.live++
	h.maybeCompact()
}

// maybeCompact rebuilds both heaps from the live entries once dead ones
// dominate either side, so boards removed from the frontier stop being
// retained. Pop leaves its dead entry in the worst heap and Evict in the
// best heap, so both lengths have to be watched.
func (h *Heap) maybeCompact() {
	if len(h.best) <= 2*h.live+1024 && len(h.worst) <= 2*h.live+1024 {
		return
	}
	livers := make([]*Entry, 0, h.live)
	for _, e := range h.best {
		if !e.dead {
			livers = append(livers, e)
		}
	}
	h.best = bestHeap(livers)
	h.worst = worstHeap(append([]*Entry(nil), livers...))
	heap.Init(&h.best)
	heap.Init(&h.worst)
}

func (h *Heap) Pop() *Entry {
	for h.best.Len() > 0 {
		e := heap.Pop(&h.best).(*Entry)
		if e.dead {
			continue
		}
		e.dead = true
		h.live--
		h.maybeCompact()
		return e
	}
	return nil
}

func (h *Heap) Evict() *Entry {
	for h.worst.Len() > 0 {
		e := heap.Pop(&h.worst).(*Entry)
		if e.dead {
			continue
		}
		e.dead = true
		h.live--
		h.maybeCompact()
		return e
	}
	return nil
}

func (h *Heap) Len() int {
	return h.live
}

// bestHeap pops the highest score; among equal scores, the earliest
// insertion.
type bestHeap []*Entry

func (q bestHeap) Len() int { return len(q) }
func (q bestHeap) Less(i, j int) bool {
	if q[i].Score != q[j].Score {
		return q[i].Score > q[j].Score
	}
	return q[i].seq < q[j].seq
}
func (q bestHeap) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *bestHeap) Push(x interface{}) { *q = append(*q, x.(*Entry)) }
func (q *bestHeap) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// worstHeap pops the lowest score; among equal scores, the latest
// insertion, so the oldest of a score class is the last to go.
type worstHeap []*Entry

func (q worstHeap) Len() int { return len(q) }
func (q worstHeap) Less(i, j int) bool {
	if q[i].Score != q[j].Score {
		return q[i].Score < q[j].Score
	}
	return q[i].seq > q[j].seq
}
func (q worstHeap) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *worstHeap) Push(x interface{}) { *q = append(*q, x.(*Entry)) }
func (q *worstHeap) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}
