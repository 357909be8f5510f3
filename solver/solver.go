// Package solver drives the best-first search: pop the most promising
// board, test for the win, expand, deduplicate, and evict when the
// frontier outgrows its capacity. One Solve call runs to completion;
// the graph and frontier it owns are never shared.
package solver

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/frontier"
	"github.com/JoshDreamland/FreeCell-Solver/heuristic"
	"github.com/JoshDreamland/FreeCell-Solver/movegen"
	"github.com/JoshDreamland/FreeCell-Solver/movegraph"
)

// Status is the terminal state of a search run.
type Status int

const (
	Running Status = iota
	Won
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Won:
		return "won"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Config is supplied by the caller; the engine itself never reads the
// environment. A zero Capacity derives one from system memory.
type Config struct {
	Capacity int
	Weights  heuristic.Weights
	// ValidateBoards rechecks the full-deck invariant on every expanded
	// board. Costly; meant for debugging the move machinery.
	ValidateBoards bool
}

// Result is what a finished run reports. On Won, Moves replays from the
// initial board to the winning board; on Exhausted it is empty. The
// engine cannot distinguish a provably unsolvable deal from one that
// merely did not fit in the memory budget, and neither should callers.
type Result struct {
	Status   Status
	Moves    []movegraph.Step
	Searched uint64
	Deduped  uint64
	Evicted  uint64
	Frontier int
	Graph    int
}

// Solver owns the mutable search structures for the duration of one
// Solve call. It is not safe for concurrent use; run one Solver per
// goroutine.
type Solver struct {
	cfg  Config
	gen  SuccessorGenerator
	eval *heuristic.Evaluator

	searched atomic.Uint64
	deduped  atomic.Uint64
	evicted  atomic.Uint64

	logStream io.Writer
	printer   *message.Printer
}

// SuccessorGenerator is the slice of the move generator the driver
// needs. movegen.Generator satisfies it.
type SuccessorGenerator interface {
	GenAll(b *board.Board) []movegen.Successor
}

// NewSolver builds a solver around a generator and a configuration.
func NewSolver(gen SuccessorGenerator, cfg Config) *Solver {
	if cfg.Capacity <= 0 {
		cfg.Capacity = frontier.DefaultCapacity()
	}
	return &Solver{
		cfg:     cfg,
		gen:     gen,
		eval:    heuristic.NewEvaluator(cfg.Weights),
		printer: message.NewPrinter(language.English),
	}
}

// SetLogStream directs a YAML stream of progress records to w. Purely
// observational; it has no influence on control flow.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

type progressRecord struct {
	Searched   uint64 `yaml:"searched"`
	Frontier   int    `yaml:"frontier"`
	Graph      int    `yaml:"graph"`
	Depth      int    `yaml:"depth"`
	Completion int    `yaml:"completion"`
}

// Solve searches from start until a won board is reached or the state
// space within the memory budget is exhausted. The returned error is
// reserved for invariant violations and cancellation; an unsolved deal
// is a normal Exhausted result, not an error.
func (s *Solver) Solve(ctx context.Context, start *board.Board) (*Result, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("initial board: %w", err)
	}

	graph := movegraph.New()
	front := frontier.New(s.cfg.Weights.Ordered())

	startKey := start.Key()
	graph.AddStart(startKey, start.Reserve)
	front.Push(&frontier.Entry{
		Key:   startKey,
		Board: start.Copy(),
		Score: s.eval.Score(start, 0),
	})

	lastCompletion := -1
	for front.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e := front.Pop()
		n := s.searched.Add(1)

		if e.Board.Won() {
			steps, err := graph.Path(e.Key, start.Slots)
			if err != nil {
				return nil, err
			}
			log.Info().Uint64("searched", n).Int("moves", len(steps)).
				Msg("solution found")
			return s.result(Won, steps, front, graph), nil
		}

		if s.cfg.ValidateBoards {
			if err := e.Board.Validate(); err != nil {
				return nil, fmt.Errorf("board at depth %d: %w", e.Depth, err)
			}
		}

		for _, succ := range s.gen.GenAll(e.Board) {
			key, fresh := graph.Visit(e.Key, e.Depth, succ.Move, succ.Board)
			if !fresh {
				s.deduped.Add(1)
				continue
			}
			front.Push(&frontier.Entry{
				Key:   key,
				Board: succ.Board,
				Score: s.eval.Score(succ.Board, e.Depth+1),
				Depth: e.Depth + 1,
			})
		}

		for front.Len() > s.cfg.Capacity {
			front.Evict()
			s.evicted.Add(1)
		}

		completion := e.Board.Completion()
		if n&0x1ff == 0 || completion > lastCompletion {
			s.reportProgress(n, front.Len(), graph.Len(), e.Depth, completion)
			if completion > lastCompletion {
				lastCompletion = completion
			}
		}
	}

	log.Info().Uint64("searched", s.searched.Load()).Msg("search space exhausted")
	return s.result(Exhausted, nil, front, graph), nil
}

func (s *Solver) result(status Status, steps []movegraph.Step,
	front frontier.Frontier, graph *movegraph.Graph) *Result {
	return &Result{
		Status:   status,
		Moves:    steps,
		Searched: s.searched.Load(),
		Deduped:  s.deduped.Load(),
		Evicted:  s.evicted.Load(),
		Frontier: front.Len(),
		Graph:    graph.Len(),
	}
}

func (s *Solver) reportProgress(searched uint64, frontierLen, graphLen, depth, completion int) {
	log.Debug().
		Str("searched", s.printer.Sprintf("%d", searched)).
		Str("frontier", s.printer.Sprintf("%d", frontierLen)).
		Str("graph", s.printer.Sprintf("%d", graphLen)).
		Int("depth", depth).
		Int("completion-pct", completion).
		Msg("searching")
	if s.logStream != nil {
		out, err := yaml.Marshal(progressRecord{
			Searched:   searched,
			Frontier:   frontierLen,
			Graph:      graphLen,
			Depth:      depth,
			Completion: completion,
		})
		if err == nil {
			s.logStream.Write(out)
			io.WriteString(s.logStream, "---\n")
		}
	}
}
