// Package movegraph is the deduplicating move graph of the search: it
// maps each canonical board key to the best known way of reaching that
// configuration. Equivalent states reached by different move sequences
// collapse to one record, which both prevents re-expansion and provides
// the predecessor chain for reconstructing the winning sequence.
package movegraph

import (
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
	"github.com/JoshDreamland/FreeCell-Solver/movegen"
)

const numShards = 64

// Entry is the small mutable record for one canonical configuration:
// the best known depth, the predecessor's key, the move that reached it,
// and the reserve snapshot the canonical key leaves out. Depth may only
// ever be lowered, when a shorter path to the same configuration turns
// up; the board data itself is never aliased or mutated.
type Entry struct {
	Depth   int
	Prev    board.Key
	Move    movegen.Move
	Reserve []card.Card
}

// Graph shards its records by xxhash of the canonical key. The solver is
// single-threaded; sharding just keeps the individual maps from growing
// monstrous during multi-million-state runs.
type Graph struct {
	shards [numShards]map[board.Key]*Entry
	size   int
}

func New() *Graph {
	g := &Graph{}
	for i := range g.shards {
		g.shards[i] = make(map[board.Key]*Entry)
	}
	return g
}

func (g *Graph) shard(k board.Key) map[board.Key]*Entry {
	return g.shards[xxhash.Sum64String(string(k))&(numShards-1)]
}

// AddStart records the root configuration at depth zero. Its zero Move
// marks the end of every predecessor walk.
func (g *Graph) AddStart(k board.Key, reserve []card.Card) {
	g.shard(k)[k] = &Entry{Reserve: append([]card.Card(nil), reserve...)}
	g.size++
}

// Visit feeds one generated successor through the dedup rules. It
// returns the successor's canonical key and whether the configuration is
// new (and so should be admitted to the frontier):
//
//   - unknown key: record it and admit;
//   - known at depth <= the new depth: discard, keep the old record;
//   - known at a greater depth: improve the record in place, but do not
//     re-admit.
func (g *Graph) Visit(parent board.Key, parentDepth int, m movegen.Move, b *board.Board) (board.Key, bool) {
	key := b.Key()
	depth := parentDepth + 1
	shard := g.shard(key)
	if e, ok := shard[key]; ok {
		if depth < e.Depth {
			e.Depth = depth
			e.Prev = parent
			e.Move = m
			e.Reserve = append(e.Reserve[:0], b.Reserve...)
		}
		return key, false
	}
	shard[key] = &Entry{
		Depth:   depth,
		Prev:    parent,
		Move:    m,
		Reserve: append([]card.Card(nil), b.Reserve...),
	}
	g.size++
	return key, true
}

// Get returns the record for a canonical key.
func (g *Graph) Get(k board.Key) (*Entry, bool) {
	e, ok := g.shard(k)[k]
	return e, ok
}

// Len returns the number of distinct configurations seen.
func (g *Graph) Len() int {
	return g.size
}

// Step is one element of a reconstructed solution: a move and the board
// it produced.
type Step struct {
	Move  movegen.Move
	Board *board.Board
}

// Path walks the predecessor chain from the winning key back to the
// start and returns the move sequence in playing order, each step paired
// with a snapshot of the board it produces. A broken chain is an
// invariant violation, not a caller error.
func (g *Graph) Path(winning board.Key, slots int) ([]Step, error) {
	var steps []Step
	key := winning
	for {
		e, ok := g.Get(key)
		if !ok {
			return nil, fmt.Errorf("move graph chain broken at key %x", string(key))
		}
		if e.Move.IsZero() {
			break
		}
		b, err := board.Decode(key, e.Reserve, slots)
		if err != nil {
			return nil, fmt.Errorf("rebuilding board for path step %d: %w", e.Depth, err)
		}
		steps = append(steps, Step{Move: e.Move, Board: b})
		key = e.Prev
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, nil
}
