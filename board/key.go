package board

import (
	"fmt"

	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// Key is the canonical serialization of a board's cascades and
// foundations, used to identify equivalent states for deduplication.
// The reserve is deliberately excluded: two boards differing only in
// which slot holds a given card are the same game state, so they must
// collapse to one entry. The reserve content is carried separately and
// rehydrated by Decode.
//
// Layout: four foundation rank bytes, then for each cascade a length
// byte followed by one encoded byte per card, bottom to top.
type Key string

// Key returns the canonical key for b.
func (b *Board) Key() Key {
	n := card.NumSuits + len(b.Cascades)
	for _, casc := range b.Cascades {
		n += len(casc)
	}
	buf := make([]byte, 0, n)
	for _, f := range b.Foundations {
		buf = append(buf, byte(f))
	}
	for _, casc := range b.Cascades {
		buf = append(buf, byte(len(casc)))
		for _, c := range casc {
			buf = append(buf, byte(c))
		}
	}
	return Key(buf)
}

// Decode rebuilds a board from a canonical key plus the reserve snapshot
// that accompanied it. slots is the reserve capacity of the game.
func Decode(k Key, reserve []card.Card, slots int) (*Board, error) {
	if len(k) < card.NumSuits {
		return nil, fmt.Errorf("board key too short: %d bytes", len(k))
	}
	b := &Board{
		Reserve: append(make([]card.Card, 0, slots), reserve...),
		Slots:   slots,
	}
	for i := 0; i < card.NumSuits; i++ {
		b.Foundations[i] = card.Rank(k[i])
	}
	i := card.NumSuits
	for i < len(k) {
		count := int(k[i])
		i++
		if i+count > len(k) {
			return nil, fmt.Errorf("board key truncated: cascade of %d cards at offset %d", count, i)
		}
		casc := make([]card.Card, count)
		for j := 0; j < count; j++ {
			casc[j] = card.Card(k[i+j])
		}
		i += count
		b.Cascades = append(b.Cascades, casc)
	}
	return b, nil
}
