package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/games/cavern"
	"github.com/vovakirdan/cavern/internal/platform/tui"
	"github.com/vovakirdan/cavern/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. One character is one tile.

Controls:
  A/D, Left/Right  - Walk
  W/Up/Space       - Jump (swim up in liquid)
  I/J/K/L          - Fire the mining gun up/left/down/right
  Mouse click      - Fire toward the cursor
  P/Esc            - Pause
  R                - Restart (after reaching the lab)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer enemies and weaker acid, progression from the lowest level
  normal - Start at 30% difficulty, progresses with depth
  hard   - More enemies and harsher damage, starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  cavern play
  cavern play --difficulty easy
  cavern play --seed 42 --config ./my-cave.yaml
  cavern play --log-file /tmp/cavern.log --log-level debug`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPlay(); err != nil {
			fail(err)
		}
	},
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the screen is owned by the game)")
}

func runPlay() error {
	// The terminal belongs to Bubble Tea; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	game, err := newGame(cfg, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	// Runs are recorded best-effort
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(game, store, rc, tui.Options{
		Anchor: cavern.ScreenAnchor,
		Logger: logger,
	})
}
