// Package automatic deals and solves games without a human in the loop:
// random deals, parallel batch runs, aggregate statistics, and an
// archive of results.
package automatic

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// RandomDeal shuffles a fresh deck and deals it round-robin into the
// cascades, the way the initial deal of a real game works.
func RandomDeal(cascades, slots int) *board.Board {
	return dealWith(func(deck []card.Card) {
		frand.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
	}, cascades, slots)
}

// SeededDeal is RandomDeal with a reproducible shuffle, so a batch run
// can be replayed deal for deal.
func SeededDeal(seed uint64, cascades, slots int) *board.Board {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	rng := frand.NewCustom(key[:], 1024, 12)
	return dealWith(func(deck []card.Card) {
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
	}, cascades, slots)
}

func dealWith(shuffle func([]card.Card), cascades, slots int) *board.Board {
	if cascades < 1 {
		cascades = 1
	}
	deck := card.FullDeck()
	shuffle(deck)
	b := board.New(cascades, slots)
	for i, c := range deck {
		col := i % cascades
		b.Cascades[col] = append(b.Cascades[col], c)
	}
	return b
}
