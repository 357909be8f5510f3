// Package heuristic scores boards for search prioritization. Higher is
// more promising. Weight tuning is configuration, not engine logic; the
// engine takes a Weights value at construction.
package heuristic

import (
	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// Weights are the four tunable terms of the evaluation function.
//
// Greed biases toward cards already on the foundations; smaller values
// cost more memory but tend to produce better solutions. MovePenalty
// punishes each move taken; higher values produce shorter solutions at
// the cost of a wider frontier. Inaccessibility punishes high cards
// buried on top of low cards; higher values make play more human-like,
// for better or for worse. TableauReward is its complement, rewarding
// well-formed descending runs.
type Weights struct {
	Greed           int
	MovePenalty     int
	Inaccessibility int
	TableauReward   int
}

// DefaultWeights are the production defaults.
func DefaultWeights() Weights {
	return Weights{
		Greed:           32,
		MovePenalty:     8,
		Inaccessibility: 64,
		TableauReward:   4,
	}
}

// Ordered reports whether this weight set induces a meaningful priority
// order. When every board-shape term is zero the score depends on depth
// alone, so the frontier degenerates to a plain FIFO queue and search
// becomes breadth-first. That is a supported configuration, selected
// once when the frontier is built.
func (w Weights) Ordered() bool {
	return w.Greed != 0 || w.Inaccessibility != 0 || w.TableauReward != 0
}

// Evaluator scores boards with a fixed weight set.
type Evaluator struct {
	weights Weights
}

func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{weights: w}
}

func (e *Evaluator) Weights() Weights {
	return e.weights
}

// Score evaluates a board reached in depth moves. Cards on foundations
// earn Greed each. Within a cascade, each card sitting directly on a
// lower-ranked card is charged Inaccessibility scaled by how deeply it
// buries the cards below; each correctly descending, color-alternating
// pair earns TableauReward. Depth costs MovePenalty per move.
func (e *Evaluator) Score(b *board.Board, depth int) int {
	score := 0
	for _, f := range b.Foundations {
		score += int(f) * e.weights.Greed
	}

	for _, casc := range b.Cascades {
		for i := 1; i < len(casc); i++ {
			if casc[i].Rank() > casc[i-1].Rank() {
				score -= (1 + len(casc) - i) * e.weights.Inaccessibility
			} else if card.Stackable(casc[i], casc[i-1]) {
				score += e.weights.TableauReward
			}
		}
	}

	score -= depth * e.weights.MovePenalty
	return score
}
