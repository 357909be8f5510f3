package board

import (
	"testing"

	"github.com/matryer/is"

	"github.com/JoshDreamland/FreeCell-Solver/card"
)

func TestKeyIgnoresReserveOrder(t *testing.T) {
	is := is.New(t)
	b := sampleBoard(t)
	for i := 0; i < 2; i++ {
		b.Reserve = append(b.Reserve, b.Top(i))
		b.Cascades[i] = b.Cascades[i][:len(b.Cascades[i])-1]
	}

	swapped := b.Copy()
	swapped.Reserve[0], swapped.Reserve[1] = swapped.Reserve[1], swapped.Reserve[0]
	is.Equal(b.Key(), swapped.Key())

	// Moving a card between cascades does change the key.
	moved := b.Copy()
	moved.Cascades[2] = append(moved.Cascades[2], moved.Top(3))
	moved.Cascades[3] = moved.Cascades[3][:len(moved.Cascades[3])-1]
	is.True(b.Key() != moved.Key())
}

func TestKeyIncludesFoundations(t *testing.T) {
	is := is.New(t)
	a := New(8, 3)
	b := New(8, 3)
	is.Equal(a.Key(), b.Key())
	b.Foundations[card.Heart] = card.Ace
	is.True(a.Key() != b.Key())
}

func TestDecodeRoundTrip(t *testing.T) {
	is := is.New(t)
	b := sampleBoard(t)
	b.Foundations[card.Spade] = card.Two
	b.Reserve = append(b.Reserve, b.Top(5))
	b.Cascades[5] = b.Cascades[5][:len(b.Cascades[5])-1]

	got, err := Decode(b.Key(), b.Reserve, b.Slots)
	is.NoErr(err)
	is.Equal(got.Key(), b.Key())
	is.Equal(got.Reserve, b.Reserve)
	is.Equal(got.Slots, b.Slots)
	is.Equal(len(got.Cascades), len(b.Cascades))
	is.Equal(got.Foundations, b.Foundations)
}

func TestDecodeRejectsTruncatedKeys(t *testing.T) {
	is := is.New(t)
	b := sampleBoard(t)
	k := b.Key()

	_, err := Decode(k[:2], nil, 3)
	is.True(err != nil)

	// length byte promising more cards than remain
	_, err = Decode(k[:len(k)-1], nil, 3)
	is.True(err != nil)
}

func TestEmptyCascadeSurvivesRoundTrip(t *testing.T) {
	is := is.New(t)
	b := New(4, 3)
	b.Cascades[1] = []card.Card{card.New(card.King, card.Heart)}

	got, err := Decode(b.Key(), nil, 3)
	is.NoErr(err)
	is.Equal(len(got.Cascades), 4)
	is.Equal(len(got.Cascades[0]), 0)
	is.Equal(got.Top(1), card.New(card.King, card.Heart))
}
