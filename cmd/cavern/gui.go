package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/platform/gui"
	"github.com/vovakirdan/cavern/internal/storage"
)

var (
	flagRows int
	flagCols int
	flagZoom int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Start a run in a window, one tile per 4x4 pixel block.

The window needs the ebiten build tag:
  go build -tags ebiten ./cmd/cavern

Controls are the same as 'cavern play'; click to fire toward the cursor.

Examples:
  cavern gui
  cavern gui --zoom 3 --rows 50 --cols 80`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !gui.Available {
			fmt.Fprintln(os.Stderr, "This build has no window support.")
			fmt.Fprintln(os.Stderr, "Rebuild with: go build -tags ebiten ./cmd/cavern")
			fmt.Fprintln(os.Stderr, "Or play in the terminal with 'cavern play'.")
			os.Exit(2)
		}
		if err := runGUI(); err != nil {
			fail(err)
		}
	},
}

func init() {
	guiCmd.Flags().IntVar(&flagRows, "rows", 40, "Visible tile rows")
	guiCmd.Flags().IntVar(&flagCols, "cols", 60, "Visible tile columns")
	guiCmd.Flags().IntVar(&flagZoom, "zoom", 4, "Screen pixels per frame pixel")
}

func runGUI() error {
	logger, err := newLogger(os.Stderr)
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = resolveSeed()

	return gui.Run(game, rc, gui.Options{
		Rows:   flagRows,
		Cols:   flagCols,
		Zoom:   flagZoom,
		Logger: logger,
		OnFinish: func(seed int64, st core.GameState) {
			if store == nil || st.Ticks == 0 {
				return
			}
			run := storage.Run{
				Seed:   seed,
				Depth:  st.Score,
				Deaths: st.Deaths,
				Ticks:  st.Ticks,
				Won:    st.Won,
			}
			if _, err := store.SaveRun(run); err != nil {
				logger.Warn("could not save run", "err", err)
			}
		},
	})
}
