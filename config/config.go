// Package config wraps viper with the named settings of the solver
// CLIs. The engine packages never read configuration themselves; they
// take plain values, and the commands translate from here.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/heuristic"
)

const (
	ConfigReserveSlots     = "reserve-slots"
	ConfigCascades         = "cascades"
	ConfigFrontierCapacity = "frontier-capacity"
	ConfigGreed            = "greed"
	ConfigMovePenalty      = "move-penalty"
	ConfigInaccessibility  = "inaccessibility"
	ConfigTableauReward    = "tableau-reward"
	ConfigDebug            = "debug"
	ConfigValidateBoards   = "validate-boards"
	ConfigInteractive      = "interactive"
	ConfigPrintBoards      = "print-boards"
	ConfigSolveLog         = "solve-log"
	ConfigCPUProfile       = "cpu-profile"

	// batch-runner settings
	ConfigGames   = "games"
	ConfigThreads = "threads"
	ConfigSeed    = "seed"
	ConfigArchive = "archive"
	ConfigGameLog = "game-log"
)

type Config struct {
	v    *viper.Viper
	args []string
}

// Load parses flags out of args and binds them, plus FCSOLVE_* env
// overrides, into the config. Remaining positional arguments are
// available from Args.
func (c *Config) Load(args []string) error {
	c.v = viper.New()
	defaults := heuristic.DefaultWeights()

	fs := pflag.NewFlagSet("fcsolve", pflag.ContinueOnError)
	fs.Int(ConfigReserveSlots, board.DefaultReserveSlots, "number of single-card reserve slots")
	fs.Int(ConfigCascades, board.DefaultCascades, "number of tableau cascades for generated deals")
	fs.Int(ConfigFrontierCapacity, 0, "max pending boards before eviction; 0 sizes from system memory")
	fs.Int(ConfigGreed, defaults.Greed, "heuristic weight per card on the foundations")
	fs.Int(ConfigMovePenalty, defaults.MovePenalty, "heuristic deduction per move taken")
	fs.Int(ConfigInaccessibility, defaults.Inaccessibility, "heuristic cost of burying low cards under high ones")
	fs.Int(ConfigTableauReward, defaults.TableauReward, "heuristic reward per well-stacked cascade pair")
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.Bool(ConfigValidateBoards, false, "recheck the deck invariant on every expanded board")
	fs.Bool(ConfigInteractive, false, "step through the solution interactively")
	fs.Bool(ConfigPrintBoards, false, "print each intermediate board with its move")
	fs.String(ConfigSolveLog, "", "path for a YAML progress log of the search")
	fs.String(ConfigCPUProfile, "", "path for a CPU profile")
	fs.Int(ConfigGames, 100, "number of deals per batch run")
	fs.Int(ConfigThreads, 0, "batch worker goroutines; 0 means one per CPU")
	fs.Uint64(ConfigSeed, 1, "first deal seed of a batch run")
	fs.String(ConfigArchive, "", "path of a SQLite archive for batch results")
	fs.String(ConfigGameLog, "", "path for a YAML log of batch games")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.v.SetEnvPrefix("fcsolve")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetUint64(key string) uint64 {
	return c.v.GetUint64(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Weights assembles the heuristic weight set from the config.
func (c *Config) Weights() heuristic.Weights {
	return heuristic.Weights{
		Greed:           c.GetInt(ConfigGreed),
		MovePenalty:     c.GetInt(ConfigMovePenalty),
		Inaccessibility: c.GetInt(ConfigInaccessibility),
		TableauReward:   c.GetInt(ConfigTableauReward),
	}
}
