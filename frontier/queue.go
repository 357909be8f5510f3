package frontier

// Queue is the FIFO frontier used when the heuristic weights induce no
// ordering: search becomes plain breadth-first. Pop takes the oldest
// entry; Evict drops the newest, which in breadth-first order is the
// deepest and therefore least promising.
type Queue struct {
	entries []*Entry
	head    int
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(e *Entry) {
	q.entries = append(q.entries, e)
}

func (q *Queue) Pop() *Entry {
	if q.head >= len(q.entries) {
		return nil
	}
	e := q.entries[q.head]
	q.entries[q.head] = nil
	q.head++
	if q.head > 1024 && q.head*2 >= len(q.entries) {
		n := copy(q.entries, q.entries[q.head:])
		clear(q.entries[n:])
		q.entries = q.entries[:n]
		q.head = 0
	}
	return e
}

func (q *Queue) Evict() *Entry {
	if q.head >= len(q.entries) {
		return nil
	}
	n := len(q.entries) - 1
	e := q.entries[n]
	q.entries[n] = nil
	q.entries = q.entries[:n]
	return e
}

func (q *Queue) Len() int {
	return len(q.entries) - q.head
}
