package frontier

import (
	"testing"

	"github.com/matryer/is"
)

func entry(score int) *Entry {
	return &Entry{Score: score}
}

func TestHeapPopsBestFirst(t *testing.T) {
	is := is.New(t)
	h := NewHeap()
	for _, s := range []int{5, -3, 12, 0, 12, 7} {
		h.Push(entry(s))
	}
	is.Equal(h.Len(), 6)

	var got []int
	for e := h.Pop(); e != nil; e = h.Pop() {
		got = append(got, e.Score)
	}
	is.Equal(got, []int{12, 12, 7, 5, 0, -3})
	is.Equal(h.Len(), 0)
	is.True(h.Pop() == nil)
}

func TestHeapTiesBreakByInsertionOrder(t *testing.T) {
	is := is.New(t)
	h := NewHeap()
	a := entry(4)
	b := entry(4)
	c := entry(4)
	h.Push(a)
	h.Push(b)
	h.Push(c)

	// Pop prefers the earliest of a score class, Evict the latest.
	is.Equal(h.Pop(), a)
	is.Equal(h.Evict(), c)
	is.Equal(h.Pop(), b)
}

func TestHeapEvictsWorstFirst(t *testing.T) {
	is := is.New(t)
	h := NewHeap()
	for _, s := range []int{5, -3, 12, 0} {
		h.Push(entry(s))
	}
	is.Equal(h.Evict().Score, -3)
	is.Equal(h.Evict().Score, 0)
	is.Equal(h.Len(), 2)

	// an evicted entry never surfaces from Pop
	is.Equal(h.Pop().Score, 12)
	is.Equal(h.Pop().Score, 5)
	is.True(h.Pop() == nil)
}

func TestHeapInterleavedPopAndEvict(t *testing.T) {
	is := is.New(t)
	h := NewHeap()
	for s := 0; s < 100; s++ {
		h.Push(entry(s))
	}
	for i := 0; i < 30; i++ {
		is.Equal(h.Pop().Score, 99-i)
		is.Equal(h.Evict().Score, i)
	}
	is.Equal(h.Len(), 40)
}

func TestHeapCompactionPreservesLiveEntries(t *testing.T) {
	is := is.New(t)
	h := NewHeap()
	// churn well past the compaction threshold
	for i := 0; i < 8000; i++ {
		h.Push(entry(i))
		if i%4 != 0 {
			h.Evict()
		}
	}
	is.Equal(h.Len(), 2000)

	prev := h.Pop()
	for e := h.Pop(); e != nil; e = h.Pop() {
		is.True(e.Score <= prev.Score)
		prev = e
	}
}

func TestHeapReleasesPoppedEntries(t *testing.T) {
	is := is.New(t)
	h := NewHeap()
	for i := 0; i < 50000; i++ {
		h.Push(entry(i))
	}
	for e := h.Pop(); e != nil; e = h.Pop() {
	}
	is.Equal(h.Len(), 0)

	// draining through Pop alone must not strand dead entries (and their
	// boards) on the eviction side
	is.True(len(h.worst) <= 1024)
	is.True(len(h.best) <= 1024)

	// still fully usable afterwards
	h.Push(entry(2))
	h.Push(entry(1))
	h.Push(entry(3))
	is.Equal(h.Pop().Score, 3)
	is.Equal(h.Evict().Score, 1)
	is.Equal(h.Pop().Score, 2)
}

func TestQueueIsFIFO(t *testing.T) {
	is := is.New(t)
	q := NewQueue()
	a := entry(1)
	b := entry(2)
	c := entry(3)
	q.Push(a)
	q.Push(b)
	q.Push(c)

	is.Equal(q.Len(), 3)
	is.Equal(q.Pop(), a)
	is.Equal(q.Pop(), b)
	is.Equal(q.Len(), 1)
	is.Equal(q.Pop(), c)
	is.True(q.Pop() == nil)
}

func TestQueueEvictDropsNewest(t *testing.T) {
	is := is.New(t)
	q := NewQueue()
	a := entry(1)
	b := entry(2)
	c := entry(3)
	q.Push(a)
	q.Push(b)
	q.Push(c)

	is.Equal(q.Evict(), c)
	is.Equal(q.Pop(), a)
	is.Equal(q.Evict(), b)
	is.True(q.Evict() == nil)
	is.Equal(q.Len(), 0)
}

func TestQueueCompaction(t *testing.T) {
	is := is.New(t)
	q := NewQueue()
	for i := 0; i < 4096; i++ {
		q.Push(entry(i))
	}
	for i := 0; i < 4096; i++ {
		e := q.Pop()
		is.Equal(e.Score, i)
	}
	is.Equal(q.Len(), 0)

	// still usable after the internal shift
	q.Push(entry(42))
	is.Equal(q.Pop().Score, 42)
}

func TestNewSelectsImplementation(t *testing.T) {
	is := is.New(t)
	_, isHeap := New(true).(*Heap)
	is.True(isHeap)
	_, isQueue := New(false).(*Queue)
	is.True(isQueue)
}

func TestDefaultCapacityBounds(t *testing.T) {
	is := is.New(t)
	c := DefaultCapacity()
	is.True(c >= 1<<16)
}
