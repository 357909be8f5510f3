// Package board holds the full game state of a FreeCell-family deal:
// the tableau cascades, the single-card reserve slots, and the four
// suit foundations. Boards are value-ish: successors are always fresh
// copies, never in-place mutations visible to a parent.
package board

import (
	"errors"
	"fmt"

	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// DefaultReserveSlots is the reserve size of the classic three-slot
// variant this solver was written for.
const DefaultReserveSlots = 3

// DefaultCascades is the column count of a standard deal.
const DefaultCascades = 8

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

var ErrNotFullDeck = errors.New("board does not hold exactly one full deck")

// Board is the complete game state. Cascades are ordered bottom to top.
// Reserve holds only the occupied slots; Slots is the slot capacity.
// Foundations hold the highest rank placed so far per suit (NoRank when
// empty).
type Board struct {
	Cascades    [][]card.Card
	Reserve     []card.Card
	Foundations [card.NumSuits]card.Rank
	Slots       int
}

// New returns an empty board with the given cascade count and reserve
// slot capacity.
func New(cascades, slots int) *Board {
	return &Board{
		Cascades: make([][]card.Card, cascades),
		Reserve:  make([]card.Card, 0, slots),
		Slots:    slots,
	}
}

// Copy returns a deep copy of b. Successor boards are built by copying
// the parent and applying exactly one move to the copy.
func (b *Board) Copy() *Board {
	c := &Board{
		Cascades:    make([][]card.Card, len(b.Cascades)),
		Reserve:     make([]card.Card, len(b.Reserve), b.Slots),
		Foundations: b.Foundations,
		Slots:       b.Slots,
	}
	for i, casc := range b.Cascades {
		c.Cascades[i] = append([]card.Card(nil), casc...)
	}
	copy(c.Reserve, b.Reserve)
	return c
}

// Top returns the top card of cascade i, or the empty sentinel if the
// cascade is empty.
func (b *Board) Top(i int) card.Card {
	casc := b.Cascades[i]
	if len(casc) == 0 {
		return card.Empty
	}
	return casc[len(casc)-1]
}

// FoundationWants reports whether the foundation for c's suit can accept
// c: it currently holds exactly the next lower rank. An ace is accepted
// only by an empty foundation.
func (b *Board) FoundationWants(c card.Card) bool {
	return b.Foundations[c.Suit()] == c.Rank()-1
}

// Won reports whether every foundation has reached the King.
func (b *Board) Won() bool {
	for _, f := range b.Foundations {
		if f < card.King {
			return false
		}
	}
	return true
}

// Completion returns the percentage of the deck already on foundations.
func (b *Board) Completion() int {
	sum := 0
	for _, f := range b.Foundations {
		sum += int(f)
	}
	return sum * 100 / DeckSize
}

// Validate checks the full-deck invariant: the multiset of cards across
// cascades, reserve, and foundations is exactly one 52-card deck. Any
// violation is a programming error in the move machinery, not bad input.
func (b *Board) Validate() error {
	var seen [256]int
	count := 0
	for _, casc := range b.Cascades {
		for _, c := range casc {
			if c.IsEmpty() || c.Rank() > card.King {
				return fmt.Errorf("%w: invalid card 0x%02x in cascade", ErrNotFullDeck, uint8(c))
			}
			seen[c]++
			count++
		}
	}
	for _, c := range b.Reserve {
		if c.IsEmpty() || c.Rank() > card.King {
			return fmt.Errorf("%w: invalid card 0x%02x in reserve", ErrNotFullDeck, uint8(c))
		}
		seen[c]++
		count++
	}
	if len(b.Reserve) > b.Slots {
		return fmt.Errorf("%w: %d cards in a %d-slot reserve", ErrNotFullDeck,
			len(b.Reserve), b.Slots)
	}
	for s := card.Spade; s <= card.Club; s++ {
		if b.Foundations[s] > card.King {
			return fmt.Errorf("%w: foundation %v above King", ErrNotFullDeck, s)
		}
		for r := card.Ace; r <= b.Foundations[s]; r++ {
			seen[card.New(r, s)]++
			count++
		}
	}
	if count != DeckSize {
		return fmt.Errorf("%w: %d cards present", ErrNotFullDeck, count)
	}
	for _, c := range card.FullDeck() {
		if seen[c] != 1 {
			return fmt.Errorf("%w: %v appears %d times", ErrNotFullDeck, c, seen[c])
		}
	}
	return nil
}
