package automatic

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/JoshDreamland/FreeCell-Solver/movegen"
	"github.com/JoshDreamland/FreeCell-Solver/solver"
)

// GameResult is the outcome of one solved (or exhausted) deal.
type GameResult struct {
	Seed     uint64 `yaml:"seed"`
	Solved   bool   `yaml:"solved"`
	Moves    int    `yaml:"moves"`
	Searched uint64 `yaml:"searched"`
	Deduped  uint64 `yaml:"deduped"`
	Evicted  uint64 `yaml:"evicted"`
	Millis   int64  `yaml:"millis"`
}

// BatchStats aggregates a whole run.
type BatchStats struct {
	Games        int
	SolvedGames  int
	MeanMoves    float64
	StddevMoves  float64
	MeanSearched float64
}

// Runner solves batches of seeded deals in parallel. Each goroutine
// gets its own Solver; nothing is shared between games but the result
// slice.
type Runner struct {
	cfg      solver.Config
	cascades int
	slots    int

	archive *Archive
	logMu   sync.Mutex
	logOut  io.Writer
}

func NewRunner(cfg solver.Config, cascades, slots int) *Runner {
	return &Runner{cfg: cfg, cascades: cascades, slots: slots}
}

// SetArchive records every finished game in db.
func (r *Runner) SetArchive(a *Archive) {
	r.archive = a
}

// SetGameLog streams a YAML document per finished game to w.
func (r *Runner) SetGameLog(w io.Writer) {
	r.logOut = w
}

// Run solves games with seeds [firstSeed, firstSeed+n) across the given
// number of worker goroutines and returns the per-game results along
// with aggregate statistics.
func (r *Runner) Run(ctx context.Context, firstSeed uint64, n, threads int) ([]GameResult, *BatchStats, error) {
	if threads < 1 {
		threads = 1
	}
	results := make([]GameResult, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			seed := firstSeed + uint64(i)
			deal := SeededDeal(seed, r.cascades, r.slots)
			s := solver.NewSolver(movegen.NewGenerator(), r.cfg)

			begin := time.Now()
			res, err := s.Solve(ctx, deal)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = GameResult{
				Seed:     seed,
				Solved:   res.Status == solver.Won,
				Moves:    len(res.Moves),
				Searched: res.Searched,
				Deduped:  res.Deduped,
				Evicted:  res.Evicted,
				Millis:   time.Since(begin).Milliseconds(),
			}
			log.Info().Uint64("seed", seed).Bool("solved", results[i].Solved).
				Int("moves", results[i].Moves).
				Uint64("searched", res.Searched).
				Msg("game finished")
			return r.logGame(deal.Describe(), results[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, summarize(results), nil
}

func (r *Runner) logGame(deal string, res GameResult) error {
	if r.archive != nil {
		if err := r.archive.Record(context.Background(), deal, res); err != nil {
			return err
		}
	}
	if r.logOut != nil {
		out, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		r.logMu.Lock()
		defer r.logMu.Unlock()
		if _, err := r.logOut.Write(out); err != nil {
			return err
		}
		_, err = io.WriteString(r.logOut, "---\n")
		return err
	}
	return nil
}

func summarize(results []GameResult) *BatchStats {
	solved := lo.Filter(results, func(g GameResult, _ int) bool { return g.Solved })
	moveCounts := lo.Map(solved, func(g GameResult, _ int) float64 { return float64(g.Moves) })
	searched := lo.Map(results, func(g GameResult, _ int) float64 { return float64(g.Searched) })

	stats := &BatchStats{
		Games:        len(results),
		SolvedGames:  len(solved),
		MeanSearched: stat.Mean(searched, nil),
	}
	if len(moveCounts) > 0 {
		stats.MeanMoves = stat.Mean(moveCounts, nil)
		stats.StddevMoves = stat.StdDev(moveCounts, nil)
	}
	return stats
}

// WriteMoveHistogram renders a histogram of solution lengths for the
// solved games of a batch.
func WriteMoveHistogram(w io.Writer, results []GameResult) error {
	data := lo.FilterMap(results, func(g GameResult, _ int) (float64, bool) {
		return float64(g.Moves), g.Solved
	})
	if len(data) == 0 {
		_, err := io.WriteString(w, "no solved games\n")
		return err
	}
	hist := histogram.Hist(9, data)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
