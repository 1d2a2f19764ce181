package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/games/cavern"
	"github.com/vovakirdan/cavern/internal/storage"
	"github.com/vovakirdan/cavern/internal/world"
)

var (
	flagSimTicks  int
	flagSimEvery  int
	flagSimFire   bool
	flagSimRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session and log telemetry",
	Long: `Run the game without a screen using a scripted player that paces left
and right, hops, and digs straight down. Telemetry is logged every --every
ticks.

With --fire=false nothing is ever destroyed, so the number of acid and water
tiles must stay constant; simulate fails if it does not.

Examples:
  cavern simulate --seed 42
  cavern simulate --ticks 20000 --every 1000 --record
  cavern simulate --fire=false --log-level debug`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimulate(); err != nil {
			fail(err)
		}
	},
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Ticks to simulate")
	simulateCmd.Flags().IntVar(&flagSimEvery, "every", 600, "Log telemetry every N ticks")
	simulateCmd.Flags().BoolVar(&flagSimFire, "fire", true, "Let the scripted player dig with the gun")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the runs database")
}

// scriptedInput is the simulated player's input for tick t.
func scriptedInput(t int, fire bool) core.InputFrame {
	in := core.NewInputFrame()
	if (t/240)%2 == 0 {
		in.Set(core.ActionRight)
	} else {
		in.Set(core.ActionLeft)
	}
	if t%90 == 0 {
		in.Set(core.ActionJump)
	}
	if fire && t%20 == 0 {
		in.Fire(core.AimDown)
	}
	return in
}

func liquidCounts(g *world.Grid) (acid, water int) {
	return g.Count(world.Acid), g.Count(world.Water)
}

func runSimulate() error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}
	every := flagSimEvery
	if every <= 0 {
		every = flagSimTicks
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	game, err := newGame(cfg, logger)
	if err != nil {
		return err
	}
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = resolveSeed()
	game.Reset(rc)

	acid0, water0 := liquidCounts(game.Grid())
	logger.Info("simulation started", "seed", game.Seed(), "ticks", flagSimTicks, "acid", acid0, "water", water0)

	moved := 0
	var st core.GameState
	for t := 1; t <= flagSimTicks; t++ {
		st = game.Step(scriptedInput(t, flagSimFire)).State
		moved += game.Flow().Moved
		if t%every == 0 || st.GameOver {
			logTelemetry(logger, game, t, moved)
		}
		if st.GameOver {
			break
		}
	}

	acid, water := liquidCounts(game.Grid())
	if !flagSimFire && (acid != acid0 || water != water0) {
		return fmt.Errorf("liquid not conserved: acid %d -> %d, water %d -> %d", acid0, acid, water0, water)
	}

	if flagSimRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.SaveRun(storage.Run{
			Seed:   game.Seed(),
			Depth:  st.Score,
			Deaths: st.Deaths,
			Ticks:  st.Ticks,
			Won:    st.Won,
		})
		if err != nil {
			return err
		}
		logger.Info("run recorded", "id", id)
	}

	fmt.Printf("Seed:     %d\n", game.Seed())
	fmt.Printf("Ticks:    %d\n", st.Ticks)
	fmt.Printf("Depth:    %d/%d\n", st.Score, game.Grid().Height())
	fmt.Printf("Deaths:   %d\n", st.Deaths)
	fmt.Printf("Kills:    %d\n", game.Kills())
	fmt.Printf("Flowed:   %d\n", moved)
	fmt.Printf("Acid:     %d -> %d\n", acid0, acid)
	fmt.Printf("Water:    %d -> %d\n", water0, water)
	if st.Won {
		fmt.Println("Reached the lab.")
	}
	return nil
}

func logTelemetry(logger *log.Logger, game *cavern.Game, tick, moved int) {
	p := game.Player()
	acid, water := liquidCounts(game.Grid())
	logger.Info("telemetry",
		"tick", tick,
		"x", fmt.Sprintf("%.1f", p.X),
		"y", fmt.Sprintf("%.1f", p.Y),
		"mode", p.Mode,
		"health", fmt.Sprintf("%.2f", p.Health),
		"depth", game.State().Score,
		"tracked", game.Liquids(),
		"flowed", moved,
		"acid", acid,
		"water", water,
		"kills", game.Kills(),
	)
}
