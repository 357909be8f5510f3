package automatic

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/heuristic"
	"github.com/JoshDreamland/FreeCell-Solver/solver"
)

func TestSeededDealIsReproducible(t *testing.T) {
	is := is.New(t)
	a := SeededDeal(7, board.DefaultCascades, board.DefaultReserveSlots)
	b := SeededDeal(7, board.DefaultCascades, board.DefaultReserveSlots)
	is.Equal(a.Key(), b.Key())

	c := SeededDeal(8, board.DefaultCascades, board.DefaultReserveSlots)
	is.True(a.Key() != c.Key())
}

func TestDealsAreFullDecks(t *testing.T) {
	is := is.New(t)
	is.NoErr(SeededDeal(1, 8, 3).Validate())
	is.NoErr(RandomDeal(8, 3).Validate())

	// round-robin leaves the first columns one card longer
	b := SeededDeal(2, 8, 3)
	is.Equal(len(b.Cascades[0]), 7)
	is.Equal(len(b.Cascades[7]), 6)
}

func TestDealClampsCascadeCount(t *testing.T) {
	is := is.New(t)
	b := SeededDeal(3, 0, 3)
	is.Equal(len(b.Cascades), 1)
	is.Equal(len(b.Cascades[0]), board.DeckSize)
	is.NoErr(b.Validate())
}

func TestSummarize(t *testing.T) {
	results := []GameResult{
		{Seed: 1, Solved: true, Moves: 50, Searched: 1000},
		{Seed: 2, Solved: false, Moves: 0, Searched: 3000},
		{Seed: 3, Solved: true, Moves: 60, Searched: 2000},
	}
	stats := summarize(results)

	assert.Equal(t, 3, stats.Games)
	assert.Equal(t, 2, stats.SolvedGames)
	assert.InDelta(t, 55.0, stats.MeanMoves, 1e-9)
	assert.InDelta(t, math.Sqrt2*5, stats.StddevMoves, 1e-9)
	assert.InDelta(t, 2000.0, stats.MeanSearched, 1e-9)
}

func TestSummarizeAllUnsolved(t *testing.T) {
	stats := summarize([]GameResult{{Seed: 1}, {Seed: 2}})
	assert.Equal(t, 2, stats.Games)
	assert.Equal(t, 0, stats.SolvedGames)
	assert.Zero(t, stats.MeanMoves)
	assert.Zero(t, stats.StddevMoves)
}

func TestWriteMoveHistogram(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	err := WriteMoveHistogram(&buf, []GameResult{
		{Solved: true, Moves: 48},
		{Solved: true, Moves: 52},
		{Solved: true, Moves: 70},
		{Solved: false, Moves: 0},
	})
	is.NoErr(err)
	is.True(buf.Len() > 0)

	buf.Reset()
	is.NoErr(WriteMoveHistogram(&buf, nil))
	is.Equal(buf.String(), "no solved games\n")
}

// spreadConfig deals every card into its own cascade, which any weight
// set solves immediately. Batch plumbing can then be tested end to end
// without long searches.
func spreadConfig() (solver.Config, int, int) {
	cfg := solver.Config{Capacity: 1 << 16, Weights: heuristic.DefaultWeights()}
	return cfg, board.DeckSize, board.DefaultReserveSlots
}

func TestRunnerSolvesBatch(t *testing.T) {
	is := is.New(t)
	cfg, cascades, slots := spreadConfig()
	r := NewRunner(cfg, cascades, slots)

	var gameLog bytes.Buffer
	r.SetGameLog(&gameLog)

	results, stats, err := r.Run(context.Background(), 100, 4, 2)
	is.NoErr(err)
	is.Equal(len(results), 4)
	is.Equal(stats.Games, 4)
	is.Equal(stats.SolvedGames, 4)
	for i, g := range results {
		is.Equal(g.Seed, uint64(100+i))
		is.True(g.Solved)
		is.True(g.Moves >= board.DeckSize)
	}
	is.True(bytes.Contains(gameLog.Bytes(), []byte("seed: 100")))
	is.True(bytes.Contains(gameLog.Bytes(), []byte("---")))
}

func TestRunnerHonorsCancellation(t *testing.T) {
	is := is.New(t)
	cfg, cascades, slots := spreadConfig()
	r := NewRunner(cfg, cascades, slots)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := r.Run(ctx, 1, 2, 1)
	is.True(err != nil)
}

func TestArchive(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	a, err := OpenArchive(filepath.Join(t.TempDir(), "solves.db"))
	is.NoErr(err)
	defer a.Close()

	is.NoErr(a.Record(ctx, ": AS 2S", GameResult{Seed: 9, Solved: true, Moves: 52, Searched: 88}))
	is.NoErr(a.Record(ctx, ": 3S 4S", GameResult{Seed: 10, Solved: false}))

	n, err := a.Count(ctx)
	is.NoErr(err)
	is.Equal(n, 2)

	solved, err := a.SolvedCount(ctx)
	is.NoErr(err)
	is.Equal(solved, 1)
}

func TestRunnerRecordsToArchive(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	a, err := OpenArchive(filepath.Join(t.TempDir(), "batch.db"))
	is.NoErr(err)
	defer a.Close()

	cfg, cascades, slots := spreadConfig()
	r := NewRunner(cfg, cascades, slots)
	r.SetArchive(a)

	_, _, err = r.Run(ctx, 5, 2, 1)
	is.NoErr(err)

	n, err := a.Count(ctx)
	is.NoErr(err)
	is.Equal(n, 2)
}
