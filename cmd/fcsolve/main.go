// fcsolve reads a textual deal description, searches for a winning move
// sequence, and prints (or interactively replays) the solution.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/config"
	"github.com/JoshDreamland/FreeCell-Solver/movegen"
	"github.com/JoshDreamland/FreeCell-Solver/movegraph"
	"github.com/JoshDreamland/FreeCell-Solver/solver"
)

// This game was so hard, this program got written.
const sampleGame = `: 6C 9S 2H AC JD AS 9C 7H
: 2D AD QC KD JC JS 3D 2C
: KC TD 7D 9D QD TS 6D 6H
: 8S TH 3H KS 2S QS 8C KH
: AH JH 7C 8H 5H 8D 5D 3S
: 4S TC 4D QH 4C 3C 5C 6S
: 9H 4H 5S 7S`

func usage(w io.Writer, prg string) {
	fmt.Fprintf(w, "Usage: %s <game_file> [flags]\n\n", prg)
	fmt.Fprintln(w, "Game file should look something like this:")
	fmt.Fprintln(w, sampleGame)
	fmt.Fprintln(w, "\nThe colons are optional, but the game data isn't.")
	fmt.Fprintln(w, "You may use numbers in place of 'A', 'T', 'J', 'Q', and 'K'.")
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))

	if path := cfg.GetString(config.ConfigCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	args := cfg.Args()
	if len(args) < 1 {
		usage(os.Stdout, os.Args[0])
		return
	}

	log.Info().Str("file", args[0]).Msg("parsing board")
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open input file")
	}
	game, err := board.Parse(string(data), cfg.GetInt(config.ConfigReserveSlots))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse deal")
	}
	fmt.Println("Evaluates as the following board:")
	fmt.Println(game.String())

	s := solver.NewSolver(movegen.NewGenerator(), solver.Config{
		Capacity:       cfg.GetInt(config.ConfigFrontierCapacity),
		Weights:        cfg.Weights(),
		ValidateBoards: cfg.GetBool(config.ConfigValidateBoards),
	})
	if path := cfg.GetString(config.ConfigSolveLog); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create solve log")
		}
		defer f.Close()
		s.SetLogStream(f)
	}

	res, err := s.Solve(context.Background(), game)
	if err != nil {
		log.Fatal().Err(err).Msg("search aborted")
	}
	if res.Status != solver.Won {
		fmt.Println("Solution could not be found.")
		os.Exit(1)
	}

	if cfg.GetBool(config.ConfigInteractive) {
		if err := replay(res.Moves); err != nil {
			log.Fatal().Err(err).Msg("replay failed")
		}
		return
	}
	printBoards := cfg.GetBool(config.ConfigPrintBoards)
	for _, step := range res.Moves {
		if printBoards {
			fmt.Println()
			fmt.Println(step.Board.String())
		}
		fmt.Println(step.Move.String())
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

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func shellFields(line string) ([]string, error) {
	return shellquote.Split(strings.TrimSpace(line))
}

func replay(steps []movegraph.Step) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              "\033[31mreplay>\033[0m ",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	at := 0
	show := func() {
		if at >= len(steps) {
			fmt.Println("End of solution. 'p' to step back, 'q' to quit.")
			return
		}
		fmt.Println()
		fmt.Println(steps[at].Board.String())
		fmt.Printf("%d/%d: %s\n", at+1, len(steps), steps[at].Move.String())
	}
	show()
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fields, err := shellFields(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		cmd := ""
		if len(fields) > 0 {
			cmd = fields[0]
		}
		switch cmd {
		case "", "n", "next":
			if at < len(steps) {
				at++
			}
		case "p", "prev", "b", "back":
			if at > 0 {
				at--
			}
		case "g", "goto":
			if len(fields) < 2 {
				fmt.Println("goto needs a move number")
				continue
			}
			var n int
			if _, err := fmt.Sscanf(fields[1], "%d", &n); err != nil || n < 1 || n > len(steps) {
				fmt.Printf("move number must be 1..%d\n", len(steps))
				continue
			}
			at = n - 1
		case "q", "quit", "exit", "bye":
			return nil
		default:
			fmt.Println("commands: n(ext), p(rev), goto <n>, q(uit)")
			continue
		}
		show()
	}
}
