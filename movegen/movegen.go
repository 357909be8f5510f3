// Package movegen enumerates the legal single-card moves of a board and
// the successor boards they produce. The generator is pure: it never
// mutates its input, and every successor is an independent copy.
package movegen

import (
	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// Successor pairs a legal move with the board it produces.
type Successor struct {
	Move  Move
	Board *board.Board
}

// Generator produces successors for boards of one game configuration.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenAll returns every board reachable from b by exactly one legal move.
// Multi-card run moves are not modeled; a run moves one card at a time.
// The generation order is fixed, which keeps search behavior reproducible
// for a given deal and weight configuration.
func (g *Generator) GenAll(b *board.Board) []Successor {
	var res []Successor
	for i := range b.Cascades {
		for j := range b.Reserve {
			if reserveToCascadeValid(b, j, i) {
				res = append(res, reserveToCascade(b, j, i))
			}
		}

		if len(b.Cascades[i]) == 0 {
			continue
		}

		for j := range b.Cascades {
			if cascadeMoveValid(b, i, j) {
				res = append(res, cascadeMove(b, i, j))
			}
		}

		if len(b.Reserve) < b.Slots {
			res = append(res, cascadeToReserve(b, i))
		}

		if b.FoundationWants(b.Top(i)) {
			res = append(res, cascadeToFoundation(b, i))
		}

		for f := card.Spade; f <= card.Club; f++ {
			if foundationToCascadeValid(b, f, i) {
				res = append(res, foundationToCascade(b, f, i))
			}
		}
	}

	for j := range b.Reserve {
		if b.FoundationWants(b.Reserve[j]) {
			res = append(res, reserveToFoundation(b, j))
		}
	}
	return res
}

// destSpot names the top of a cascade as a move destination.
func destSpot(b *board.Board, i int) Spot {
	if top := b.Top(i); !top.IsEmpty() {
		return CardSpot(top)
	}
	return EmptyCascade
}

func reserveToCascadeValid(b *board.Board, j, i int) bool {
	if len(b.Cascades[i]) == 0 {
		return true
	}
	return card.Stackable(b.Reserve[j], b.Top(i))
}

func reserveToCascade(b *board.Board, j, i int) Successor {
	m := Move{Source: CardSpot(b.Reserve[j]), Dest: destSpot(b, i)}
	next := b.Copy()
	next.Cascades[i] = append(next.Cascades[i], next.Reserve[j])
	next.Reserve = append(next.Reserve[:j:j], next.Reserve[j+1:]...)
	return Successor{Move: m, Board: next}
}

func cascadeMoveValid(b *board.Board, src, dst int) bool {
	if src == dst || len(b.Cascades[src]) == 0 {
		return false
	}
	if len(b.Cascades[dst]) == 0 {
		return true
	}
	return card.Stackable(b.Top(src), b.Top(dst))
}

func cascadeMove(b *board.Board, src, dst int) Successor {
	moved := b.Top(src)
	m := Move{Source: CardSpot(moved), Dest: destSpot(b, dst)}
	next := b.Copy()
	next.Cascades[src] = next.Cascades[src][:len(next.Cascades[src])-1]
	next.Cascades[dst] = append(next.Cascades[dst], moved)
	return Successor{Move: m, Board: next}
}

func cascadeToReserve(b *board.Board, src int) Successor {
	moved := b.Top(src)
	m := Move{Source: CardSpot(moved), Dest: EmptyReserve}
	next := b.Copy()
	next.Cascades[src] = next.Cascades[src][:len(next.Cascades[src])-1]
	next.Reserve = append(next.Reserve, moved)
	return Successor{Move: m, Board: next}
}

func cascadeToFoundation(b *board.Board, src int) Successor {
	moved := b.Top(src)
	m := Move{Source: CardSpot(moved), Dest: Foundation}
	next := b.Copy()
	next.Cascades[src] = next.Cascades[src][:len(next.Cascades[src])-1]
	next.Foundations[moved.Suit()]++
	return Successor{Move: m, Board: next}
}

// foundationToCascadeValid allows unstacking a foundation card back onto
// a tableau. Color alternation is enforced explicitly here: rank
// adjacency alone does not permit placing onto a same-color top card.
func foundationToCascadeValid(b *board.Board, f card.Suit, i int) bool {
	if b.Foundations[f] == card.NoRank {
		return false
	}
	if len(b.Cascades[i]) == 0 {
		return true
	}
	onto := b.Top(i)
	if f.Color() == onto.Color() {
		return false
	}
	return b.Foundations[f] == onto.Rank()-1
}

func foundationToCascade(b *board.Board, f card.Suit, i int) Successor {
	moved := card.New(b.Foundations[f], f)
	m := Move{Source: CardSpot(moved), Dest: destSpot(b, i)}
	next := b.Copy()
	next.Foundations[f]--
	next.Cascades[i] = append(next.Cascades[i], moved)
	return Successor{Move: m, Board: next}
}

func reserveToFoundation(b *board.Board, j int) Successor {
	moved := b.Reserve[j]
	m := Move{Source: CardSpot(moved), Dest: Foundation}
	next := b.Copy()
	next.Reserve = append(next.Reserve[:j:j], next.Reserve[j+1:]...)
	next.Foundations[moved.Suit()]++
	return Successor{Move: m, Board: next}
}
