// Package card defines the playing-card value types used by the rest of
// the solver: suits, ranks, colors, and a compact one-byte card encoding.
package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four French suits. The numeric order matters; it is
// baked into the card encoding and the foundation indexing.
type Suit uint8

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
	NumSuits = 4
)

func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spades"
	case Heart:
		return "Hearts"
	case Diamond:
		return "Diamonds"
	case Club:
		return "Clubs"
	}
	return "??"
}

// Color derives the suit color used by the tableau alternation rule.
func (s Suit) Color() Color {
	if s == Heart || s == Diamond {
		return Red
	}
	return Black
}

// Color is a suit color; spades and clubs are black, hearts and diamonds red.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank is a card face value. NoRank is the empty sentinel; it doubles as
// the value of an empty foundation.
type Rank uint8

const (
	NoRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{
	"??", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

const rankCodes = "XA23456789TJQK"
const suitCodes = "SHDC"

func (r Rank) String() string {
	if r > King {
		return "??"
	}
	return rankNames[r]
}

// Card packs a suit and a rank into one byte: suit*16 + rank. The zero
// value is the empty sentinel. The encoding is stable; board canonical
// keys are built from it.
type Card uint8

// Empty is the "no card" sentinel used for vacant reserve slots and
// empty-cascade lookups.
const Empty Card = 0

// New returns the card with the given rank and suit.
func New(r Rank, s Suit) Card {
	return Card(uint8(s)<<4 | uint8(r))
}

func (c Card) Rank() Rank { return Rank(c & 0x0f) }
func (c Card) Suit() Suit { return Suit(c >> 4) }

func (c Card) Color() Color { return c.Suit().Color() }

// IsEmpty reports whether c is the empty sentinel.
func (c Card) IsEmpty() bool { return c.Rank() == NoRank }

// String returns the long English name, e.g. "Ace of Spades".
func (c Card) String() string {
	if c.IsEmpty() {
		return "Empty"
	}
	return c.Rank().String() + " of " + c.Suit().String()
}

// Code returns the two-letter code used in deal files, e.g. "AS" or "TH".
func (c Card) Code() string {
	if c.IsEmpty() {
		return "XX"
	}
	return string(rankCodes[c.Rank()]) + string(suitCodes[c.Suit()])
}

// Glyph returns the Unicode playing-card glyph for c, or the card-back
// glyph for the empty sentinel. The Unicode block inserts the Knight
// between Jack and Queen, hence the skip.
func (c Card) Glyph() string {
	if c.IsEmpty() {
		return "\U0001F0A0"
	}
	ordinal := rune(0x1F0A0 + 0x10*int(c.Suit()) + int(c.Rank()))
	if c.Rank() > Jack {
		ordinal++
	}
	return string(ordinal)
}

// Stackable reports whether c may be placed on onto in a cascade:
// descending adjacent rank and opposite color, or onto is empty
// (anything may start an empty cascade).
func Stackable(c, onto Card) bool {
	if onto.IsEmpty() {
		return true
	}
	return onto.Rank() == c.Rank()+1 && c.Color() != onto.Color()
}

// Parse reads a short card descriptor such as "AS", "th", or "10d".
// Rank may be a letter or a number; suit is a single letter. Surrounding
// whitespace is ignored.
func Parse(desc string) (Card, error) {
	s := strings.TrimSpace(desc)
	if s == "" {
		return Empty, fmt.Errorf("card descriptor is empty")
	}
	var rank Rank
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 {
		v, err := strconv.Atoi(s[:i])
		if err != nil || v < int(Ace) || v > int(King) {
			return Empty, fmt.Errorf("card %q has invalid rank value %q", desc, s[:i])
		}
		rank = Rank(v)
	} else {
		switch s[0] {
		case 'a', 'A':
			rank = Ace
		case 't', 'T':
			rank = Ten
		case 'j', 'J':
			rank = Jack
		case 'q', 'Q':
			rank = Queen
		case 'k', 'K':
			rank = King
		default:
			return Empty, fmt.Errorf("card %q has unknown rank %q", desc, s[0:1])
		}
		i = 1
	}
	if i >= len(s) {
		return Empty, fmt.Errorf("card %q is missing its suit", desc)
	}
	var suit Suit
	switch s[i] {
	case 's', 'S':
		suit = Spade
	case 'h', 'H':
		suit = Heart
	case 'd', 'D':
		suit = Diamond
	case 'c', 'C':
		suit = Club
	default:
		return Empty, fmt.Errorf("card %q: %q is not a suit", desc, s[i:i+1])
	}
	if i+1 < len(s) {
		return Empty, fmt.Errorf("junk at end of card descriptor %q", desc)
	}
	return New(rank, suit), nil
}

// FullDeck returns all 52 cards in suit-major, rank-minor order.
func FullDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := Spade; s <= Club; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, New(r, s))
		}
	}
	return deck
}
