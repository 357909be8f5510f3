// Package frontier holds the not-yet-expanded search nodes awaiting
// evaluation, under a hard capacity. Two implementations satisfy one
// contract: a best-first heap for priority-ordered search, and a plain
// FIFO queue for the breadth-first degenerate configuration.
package frontier

import (
	"math"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/JoshDreamland/FreeCell-Solver/board"
)

// Entry is one pending search node. Entries are owned by the frontier
// from Push until Pop or Evict.
type Entry struct {
	Key   board.Key
	Board *board.Board
	Score int
	Depth int

	seq  uint64
	dead bool
}

// Frontier is the capability contract the search driver relies on:
// push, pop-best, evict-worst. Implementations must be deterministic;
// ties are broken by insertion order, never by map iteration.
type Frontier interface {
	// Push admits an entry.
	Push(*Entry)
	// Pop removes and returns the most promising entry, or nil when empty.
	Pop() *Entry
	// Evict removes and returns the least promising entry, or nil when
	// empty. The entry is dropped from the frontier only; its graph
	// record survives, so it can never be re-admitted as new.
	Evict() *Entry
	Len() int
}

// New selects the implementation for a weight configuration: a priority
// heap when the weights induce an ordering, a FIFO queue otherwise.
func New(ordered bool) Frontier {
	if ordered {
		return NewHeap()
	}
	return NewQueue()
}

// approximate retained bytes per pending node: board copy, graph record,
// and both heap slots.
const entryFootprint = 640

// DefaultCapacity derives a frontier capacity from total system memory,
// in the same way the deduplication structures of game engines size
// their tables. A floor keeps tiny machines searchable at all.
func DefaultCapacity() int {
	totalMem := memory.TotalMemory()
	capacity := int(float64(totalMem) / 8 / entryFootprint)
	if capacity < 1<<16 {
		capacity = 1 << 16
	}
	if capacity > math.MaxInt32 {
		capacity = math.MaxInt32
	}
	log.Debug().Int("capacity", capacity).
		Uint64("total-system-memory-bytes", totalMem).
		Msg("derived-frontier-capacity")
	return capacity
}
