package board

import (
	"strings"

	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// String renders the board with Unicode card glyphs: the reserve row and
// foundation row on top, then the cascade grid row by row.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < b.Slots; i++ {
		c := card.Empty
		if i < len(b.Reserve) {
			c = b.Reserve[i]
		}
		sb.WriteString(c.Glyph())
		sb.WriteString(" ")
	}
	sb.WriteString("       ")
	for s := card.Spade; s <= card.Club; s++ {
		sb.WriteString(card.New(b.Foundations[s], s).Glyph())
		sb.WriteString(" ")
	}
	sb.WriteString("\n\n")

	for row := 0; ; row++ {
		line := ""
		more := false
		for _, casc := range b.Cascades {
			if row >= len(casc) {
				if line == "" {
					line += " "
				} else {
					line += "   "
				}
				continue
			}
			if line != "" {
				line += "  "
			}
			line += casc[row].Glyph()
			more = true
		}
		if !more {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Describe renders the cascades as rows of two-letter card codes, the
// same format Parse accepts.
func (b *Board) Describe() string {
	var sb strings.Builder
	for row := 0; ; row++ {
		line := ":"
		more := false
		for _, casc := range b.Cascades {
			if row >= len(casc) {
				line += "   "
				continue
			}
			line += " " + casc[row].Code()
			more = true
		}
		if !more {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
