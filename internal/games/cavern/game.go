// Package cavern runs one descent through a generated cave: liquids flow,
// the player walks, swims and digs with the mining gun, enemies chase, and
// the run is won by standing on the lab at the bottom.
package cavern

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cavern/internal/config"
	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/enemy"
	"github.com/vovakirdan/cavern/internal/liquid"
	"github.com/vovakirdan/cavern/internal/player"
	"github.com/vovakirdan/cavern/internal/weapon"
	"github.com/vovakirdan/cavern/internal/world"
	"github.com/vovakirdan/cavern/internal/worldgen"
)

// liquidSalt separates the flow rng from the terrain rng of the same seed.
const liquidSalt = 0x5eed

// Game implements the cave descent.
type Game struct {
	cfg        config.CavernConfig
	set        settings
	gen        *worldgen.Generator
	difficulty *config.DifficultyManager
	log        *log.Logger

	seed    int64
	grid    *world.Grid
	liquids *liquid.Automaton
	player  *player.Controller
	swarm   *enemy.Swarm
	gun     *weapon.Gun

	depth    int // deepest row reached
	deaths   int
	kills    int
	ticks    int
	flow     liquid.Report
	gameOver bool
	won      bool
	paused   bool
}

// New validates cfg and returns a game ready for Reset.
func New(cfg config.CavernConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	set, err := fromConfig(cfg)
	if err != nil {
		return nil, err
	}
	gen, err := worldgen.New(set.params)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:        cfg,
		set:        set,
		gen:        gen,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		log:        log.New(io.Discard),
	}, nil
}

// SetLogger routes game events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cavern"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cavern"
}

// Reset generates a new cave from cfg.Seed and puts the player above it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	start := time.Now()
	res := g.gen.Generate(cfg.Seed)

	g.seed = cfg.Seed
	g.grid = res.Grid
	g.liquids = liquid.New(rand.New(rand.NewSource(cfg.Seed^liquidSalt)), g.set.liquids...)
	g.liquids.Track(g.grid)

	spawnX := float64(g.grid.Width()) * g.set.params.TileSize / 2
	g.player = player.NewController(spawnX, g.set.spawnY, g.set.phys)

	g.swarm = enemy.NewSwarm(g.set.swarm)
	for _, sp := range res.Spawns {
		g.swarm.Add(sp.X, sp.Y)
	}
	g.gun = weapon.NewGun(g.set.gun)

	g.depth = 0
	g.deaths = 0
	g.kills = 0
	g.ticks = 0
	g.flow = liquid.Report{}
	g.gameOver = false
	g.won = false
	g.paused = false

	g.log.Info("cave generated",
		"seed", cfg.Seed,
		"size", fmt.Sprintf("%dx%d", g.grid.Width(), g.grid.Height()),
		"liquids", g.liquids.Len(),
		"enemies", len(res.Spawns),
		"took", time.Since(start).Round(time.Millisecond),
	)
}

// Step advances the cave by one tick: liquids, then the player, then the
// enemies, then bullets in flight.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.flow = g.liquids.Tick(g.grid)

	st := g.player.Advance(g.grid, player.Intents{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Jump:      in.Has(core.ActionJump),
	}, g.swarm.Boxes()...)
	if st.Respawned {
		g.deaths++
		g.log.Debug("player died", "tick", g.ticks, "deaths", g.deaths, "depth", g.depth)
	}
	if row := int(math.Floor(st.Y / g.set.params.TileSize)); row > g.depth {
		g.depth = row
	}

	g.swarm.SetSpeed(g.difficulty.Speed(g.set.swarm.Speed, g.depth, g.ticks))
	g.swarm.SetChaseDistance(g.difficulty.Chase(g.set.swarm.ChaseDistance, g.depth, g.ticks))
	g.swarm.Update(st.X, st.Y)

	if in.Has(core.ActionFire) && g.player.TryFire(g.set.gun.ReloadTicks) {
		cx, cy := st.Box().Center()
		g.gun.Fire(cx, cy, in.Aim)
	}
	reach := float64(g.set.gun.Blast.Range) * g.set.params.TileSize
	for _, hit := range g.gun.Update(g.grid) {
		killed := g.swarm.Blast(hit.X, hit.Y, reach)
		g.kills += killed
		g.log.Debug("blast", "row", hit.Row, "col", hit.Col, "carved", hit.Carved, "killed", killed)
	}

	if st.Grounded && g.onLab(st) {
		g.won = true
		g.gameOver = true
		g.log.Info("lab reached", "ticks", g.ticks, "deaths", g.deaths, "kills", g.kills)
	}

	return core.StepResult{State: g.State()}
}

// onLab reports whether a lab block lies directly under the player's feet.
func (g *Game) onLab(st player.State) bool {
	t := g.set.params.TileSize
	row := int(math.Floor((st.Y + st.Size) / t))
	first := int(math.Floor(st.X / t))
	last := int(math.Ceil((st.X+st.Size)/t)) - 1
	for col := first; col <= last; col++ {
		if g.grid.At(row, col).Lab() {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.depth,
		Deaths:   g.deaths,
		Ticks:    g.ticks,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Seed returns the seed of the current cave.
func (g *Game) Seed() int64 { return g.seed }

// Config returns the configuration the game was built from.
func (g *Game) Config() config.CavernConfig { return g.cfg }

// Grid returns the live cave. Callers must not mutate it.
func (g *Game) Grid() *world.Grid { return g.grid }

// Player returns a snapshot of the player.
func (g *Game) Player() player.State { return g.player.State() }

// Enemies returns every enemy, dead or alive.
func (g *Game) Enemies() []enemy.Enemy { return g.swarm.Enemies() }

// Bullets returns the bullets in flight.
func (g *Game) Bullets() []weapon.Bullet { return g.gun.Bullets() }

// Kills returns the number of enemies destroyed by blasts.
func (g *Game) Kills() int { return g.kills }

// Flow returns the liquid report of the last tick.
func (g *Game) Flow() liquid.Report { return g.flow }

// Pressure names the swarm's current difficulty level.
func (g *Game) Pressure() string { return g.difficulty.Pressure(g.depth, g.ticks) }

// Liquids returns the number of tracked liquid tiles.
func (g *Game) Liquids() int { return g.liquids.Len() }
