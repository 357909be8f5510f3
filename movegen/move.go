package movegen

import (
	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// Spot identifies one end of a move: either a specific card (its one-byte
// encoding, which is always non-negative) or one of the place sentinels.
type Spot int8

const (
	EmptyCascade Spot = -3
	EmptyReserve Spot = -2
	Foundation   Spot = -1
)

// CardSpot returns the spot naming a specific card.
func CardSpot(c card.Card) Spot {
	return Spot(c)
}

// Card returns the card a spot names, or the empty sentinel for places.
func (s Spot) Card() card.Card {
	if s < 0 {
		return card.Empty
	}
	return card.Card(s)
}

func (s Spot) String() string {
	switch s {
	case EmptyCascade:
		return "an empty cascade"
	case EmptyReserve:
		return "an empty reserve"
	case Foundation:
		return "the foundation"
	}
	return "the " + s.Card().String()
}

// Move describes one legal transition: a single card moved from Source
// onto Dest. Moves are attached to graph entries for path reconstruction;
// boards do not carry a move log.
type Move struct {
	Source Spot
	Dest   Spot
}

func (m Move) String() string {
	return "Move " + m.Source.String() + " onto " + m.Dest.String()
}

// IsZero reports whether m is the zero move, which marks the start node
// of a search (no move produced it).
func (m Move) IsZero() bool {
	return m == Move{}
}
