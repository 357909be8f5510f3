// fcdeal deals random games and solves them in bulk: a tuning harness
// for the heuristic weights, with optional archiving of every result.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JoshDreamland/FreeCell-Solver/automatic"
	"github.com/JoshDreamland/FreeCell-Solver/config"
	"github.com/JoshDreamland/FreeCell-Solver/solver"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))

	threads := cfg.GetInt(config.ConfigThreads)
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	runner := automatic.NewRunner(solver.Config{
		Capacity: cfg.GetInt(config.ConfigFrontierCapacity),
		Weights:  cfg.Weights(),
	}, cfg.GetInt(config.ConfigCascades), cfg.GetInt(config.ConfigReserveSlots))

	if path := cfg.GetString(config.ConfigArchive); path != "" {
		archive, err := automatic.OpenArchive(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not open archive")
		}
		defer archive.Close()
		runner.SetArchive(archive)
	}
	if path := cfg.GetString(config.ConfigGameLog); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create game log")
		}
		defer f.Close()
		runner.SetGameLog(f)
	}

	results, stats, err := runner.Run(context.Background(),
		cfg.GetUint64(config.ConfigSeed), cfg.GetInt(config.ConfigGames), threads)
	if err != nil {
		log.Fatal().Err(err).Msg("batch run failed")
	}

	fmt.Printf("Solved %d of %d deals.\n", stats.SolvedGames, stats.Games)
	fmt.Printf("Mean solution length: %.1f moves (stddev %.1f)\n",
		stats.MeanMoves, stats.StddevMoves)
	fmt.Printf("Mean boards searched: %.0f\n", stats.MeanSearched)
	fmt.Println("\nSolution lengths:")
	if err := automatic.WriteMoveHistogram(os.Stdout, results); err != nil {
		log.Fatal().Err(err).Msg("could not render histogram")
	}
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}
