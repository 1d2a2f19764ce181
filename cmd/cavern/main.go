// cavern is a tile-grid cave platformer: dig down through stone, dirt,
// acid and water, dodge the swarm, and reach the lab at the bottom.
//
// Usage:
//
//	cavern play              - Play in the terminal
//	cavern gui               - Play in a window (needs -tags ebiten)
//	cavern generate          - Print a slice of a generated cave
//	cavern simulate          - Run a headless session and log telemetry
//	cavern runs              - Show recorded runs
//	cavern config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible caves
//	--db <path>          - Set database path (default: ~/.cavern/runs.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavern/internal/config"
	"github.com/vovakirdan/cavern/internal/games/cavern"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cavern",
	Short: "Cavern - dig to the lab at the bottom of the cave",
	Long: `Cavern is a tile-grid cave platformer. Every run generates a cave from a
seed: flood-filled stone and dirt, pools of water and acid that flow, bats,
vines and a swarm of creatures. Blast your way down to the lab.

Available commands:
  play      - Play in the terminal
  gui       - Play in a window (build with -tags ebiten)
  generate  - Print a slice of a generated cave
  simulate  - Run a headless session and log telemetry
  runs      - Show recorded runs
  config    - Print the default configuration

Examples:
  cavern play
  cavern play --difficulty hard --seed 42
  cavern generate --seed 7 --rows 40
  cavern simulate --ticks 6000 --log-level debug
  cavern runs --browse`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cavern/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom cave config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// fail reports err and exits with status 1.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger builds the CLI logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cavern",
		Level:           level,
	}), nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadConfig loads the cave configuration and applies --difficulty.
func loadConfig(logger *log.Logger) (config.CavernConfig, error) {
	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyCavernPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

// newGame builds a game from cfg that logs to logger.
func newGame(cfg config.CavernConfig, logger *log.Logger) (*cavern.Game, error) {
	game, err := cavern.New(cfg)
	if err != nil {
		return nil, err
	}
	game.SetLogger(logger)
	return game, nil
}
