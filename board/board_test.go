package board

import (
	"testing"

	"github.com/matryer/is"

	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// The deal that started it all.
const sampleGame = `: 6C 9S 2H AC JD AS 9C 7H
: 2D AD QC KD JC JS 3D 2C
: KC TD 7D 9D QD TS 6D 6H
: 8S TH 3H KS 2S QS 8C KH
: AH JH 7C 8H 5H 8D 5D 3S
: 4S TC 4D QH 4C 3C 5C 6S
: 9H 4H 5S 7S`

func sampleBoard(t *testing.T) *Board {
	t.Helper()
	b, err := Parse(sampleGame, DefaultReserveSlots)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestParseSampleGame(t *testing.T) {
	is := is.New(t)
	b := sampleBoard(t)
	is.Equal(len(b.Cascades), 8)
	is.Equal(len(b.Cascades[0]), 7)
	is.Equal(len(b.Cascades[4]), 6)
	is.Equal(b.Cascades[0][0], card.New(card.Six, card.Club))
	is.Equal(b.Cascades[3][6], card.New(card.Seven, card.Spade))
	is.Equal(len(b.Reserve), 0)
	is.NoErr(b.Validate())
}

func TestParseSingleLineWithColons(t *testing.T) {
	is := is.New(t)
	b, err := Parse(": AS 2S : 3S 4S", 3)
	is.NoErr(err)
	is.Equal(len(b.Cascades), 2)
	is.Equal(b.Cascades[0], []card.Card{
		card.New(card.Ace, card.Spade), card.New(card.Three, card.Spade)})
	is.Equal(b.Cascades[1], []card.Card{
		card.New(card.Two, card.Spade), card.New(card.Four, card.Spade)})
}

func TestFoundationWants(t *testing.T) {
	is := is.New(t)
	b := New(8, 3)
	is.True(b.FoundationWants(card.New(card.Ace, card.Heart)))
	is.True(!b.FoundationWants(card.New(card.Two, card.Heart)))
	b.Foundations[card.Heart] = card.Seven
	is.True(b.FoundationWants(card.New(card.Eight, card.Heart)))
	is.True(!b.FoundationWants(card.New(card.Eight, card.Diamond)))
	is.True(!b.FoundationWants(card.New(card.Seven, card.Heart)))
	is.True(!b.FoundationWants(card.New(card.Nine, card.Heart)))
}

func TestWonAndCompletion(t *testing.T) {
	is := is.New(t)
	b := New(8, 3)
	is.True(!b.Won())
	is.Equal(b.Completion(), 0)
	for s := card.Spade; s <= card.Club; s++ {
		b.Foundations[s] = card.King
	}
	is.True(b.Won())
	is.Equal(b.Completion(), 100)
	b.Foundations[card.Club] = card.Queen
	is.True(!b.Won())
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	b := sampleBoard(t)
	b.Reserve = append(b.Reserve, b.Top(7))
	b.Cascades[7] = b.Cascades[7][:len(b.Cascades[7])-1]

	c := b.Copy()
	c.Cascades[0] = append(c.Cascades[0], card.Empty)
	c.Reserve[0] = card.Empty
	c.Foundations[card.Spade] = card.King

	is.Equal(len(b.Cascades[0]), 7)
	is.Equal(b.Reserve[0], card.New(card.Six, card.Spade))
	is.Equal(b.Foundations[card.Spade], card.NoRank)
}

func TestValidateDetectsCorruption(t *testing.T) {
	is := is.New(t)

	b := sampleBoard(t)
	is.NoErr(b.Validate())

	// duplicate a card
	dup := b.Copy()
	dup.Cascades[0][0] = dup.Cascades[1][0]
	is.True(dup.Validate() != nil)

	// lose a card
	short := b.Copy()
	short.Cascades[2] = short.Cascades[2][:len(short.Cascades[2])-1]
	is.True(short.Validate() != nil)

	// overfull reserve
	full := b.Copy()
	for i := 0; i < 4; i++ {
		full.Reserve = append(full.Reserve, full.Top(i))
		full.Cascades[i] = full.Cascades[i][:len(full.Cascades[i])-1]
	}
	is.True(full.Validate() != nil)

	// card counted on a foundation and still in a cascade
	double := b.Copy()
	double.Foundations[card.Club] = card.Ace
	is.True(double.Validate() != nil)
}

func TestDisplayRows(t *testing.T) {
	is := is.New(t)
	b := sampleBoard(t)
	desc := b.Describe()
	reparsed, err := Parse(desc, DefaultReserveSlots)
	is.NoErr(err)
	is.Equal(reparsed.Key(), b.Key())
}
