package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// Parse reads a textual deal description into an initial board: empty
// reserve, empty foundations, cards dealt into cascades. Each line is
// one row across the cascades; an optional leading colon marks a row.
// Cards are short descriptors like "AS", "th", or "10d", separated by
// whitespace.
//
// A deal that is not exactly one full deck parses anyway (the warnings
// name every missing or repeated card) but fails Validate; callers
// decide whether to proceed.
func Parse(desc string, slots int) (*Board, error) {
	b := &Board{Reserve: make([]card.Card, 0, slots), Slots: slots}
	counts := map[card.Card]int{}

	// A colon or a newline both start a new row across the cascades.
	rows := strings.FieldsFunc(desc, func(r rune) bool {
		return r == ':' || r == '\n' || r == '\r'
	})
	for _, row := range rows {
		cascade := 0
		for _, field := range strings.FieldsFunc(row, unicode.IsSpace) {
			c, err := card.Parse(field)
			if err != nil {
				return nil, fmt.Errorf("bad deal description: %w", err)
			}
			for cascade >= len(b.Cascades) {
				b.Cascades = append(b.Cascades, nil)
			}
			b.Cascades[cascade] = append(b.Cascades[cascade], c)
			cascade++
			counts[c]++
		}
	}

	if len(counts) != DeckSize {
		log.Warn().Int("distinct-cards", len(counts)).
			Msg("deal does not contain all 52 card faces")
		for _, c := range card.FullDeck() {
			if counts[c] == 0 {
				log.Warn().Str("card", c.String()).Msg("missing card")
			}
		}
	}
	for _, c := range card.FullDeck() {
		if n := counts[c]; n > 1 {
			log.Warn().Str("card", c.String()).Int("count", n).
				Msg("card appears more than once")
		}
	}
	return b, nil
}
