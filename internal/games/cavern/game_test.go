package cavern

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/cavern/internal/config"
	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/world"
)

func testConfig() config.CavernConfig {
	cfg := config.DefaultCavernConfig()
	cfg.World.Width = 30
	cfg.World.Height = 80
	cfg.Enemies.Count = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.CavernConfig, seed int64) *Game {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t, testConfig(), 42)

	state := g.State()
	if state.Score != 0 || state.Deaths != 0 || state.Ticks != 0 {
		t.Errorf("initial state = %+v, want zeroes", state)
	}
	if state.GameOver || state.Paused || state.Won {
		t.Errorf("initial state flags = %+v", state)
	}
	p := g.Player()
	if p.X != 30*40/2 || p.Y != -100 {
		t.Errorf("spawn = (%v, %v), want (600, -100)", p.X, p.Y)
	}
	if p.Health != 100 {
		t.Errorf("health = %v, want 100", p.Health)
	}
	if g.Grid().Width() != 30 || g.Grid().Height() != 80 {
		t.Errorf("grid = %dx%d", g.Grid().Width(), g.Grid().Height())
	}
}

func TestGameInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.World.Width = 0
	if _, err := New(cfg); err == nil {
		t.Error("New() should reject a zero-width world")
	}

	cfg = testConfig()
	cfg.Terrain.Materials[0].Kind = "lava"
	if _, err := New(cfg); err == nil {
		t.Error("New() should reject an unknown material")
	}

	cfg = testConfig()
	cfg.Player.Size = 60
	if _, err := New(cfg); err == nil {
		t.Error("New() should reject a player larger than a tile")
	}
}

func TestGameDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Enemies.Count = 6
	a := newTestGame(t, cfg, 7)
	b := newTestGame(t, cfg, 7)

	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		in.Clear()
		if i%3 != 0 {
			in.Set(core.ActionRight)
		}
		if i%40 == 0 {
			in.Set(core.ActionJump)
		}
		if i%120 == 60 {
			in.Fire(core.AimDown)
		}
		a.Step(in)
		b.Step(in)
	}

	if !a.Grid().Equal(b.Grid()) {
		t.Error("grids diverged for the same seed and input")
	}
	if a.Player() != b.Player() {
		t.Errorf("players diverged: %+v vs %+v", a.Player(), b.Player())
	}
	if a.State() != b.State() {
		t.Errorf("states diverged: %+v vs %+v", a.State(), b.State())
	}
	if !reflect.DeepEqual(a.Enemies(), b.Enemies()) {
		t.Error("enemies diverged")
	}
}

func TestGameResetRegenerates(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	first := g.Grid().Clone()

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 50; i++ {
		g.Step(in)
	}

	rc := core.DefaultConfig()
	rc.Seed = 1
	g.Reset(rc)
	if !g.Grid().Equal(first) {
		t.Error("Reset with the same seed should rebuild the same cave")
	}
	if g.State().Ticks != 0 {
		t.Errorf("Ticks = %d after Reset, want 0", g.State().Ticks)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, testConfig(), 3)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Player()
	in.Clear()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if g.State().Ticks != 0 {
		t.Errorf("Ticks = %d while paused, want 0", g.State().Ticks)
	}
	if g.Player() != before {
		t.Error("player moved while paused")
	}

	in.Set(core.ActionPause)
	g.Step(in)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
	if g.State().Ticks != 1 {
		t.Errorf("Ticks = %d after unpause, want 1", g.State().Ticks)
	}
}

func TestGameFireRespectsReload(t *testing.T) {
	g := newTestGame(t, testConfig(), 5)

	in := core.NewInputFrame()
	in.Fire(core.AimDown)
	g.Step(in)
	if n := len(g.Bullets()); n != 1 {
		t.Fatalf("bullets = %d after first shot, want 1", n)
	}
	if r := g.Player().Reload; r != 100 {
		t.Errorf("reload = %d, want 100", r)
	}

	g.Step(in)
	if n := len(g.Bullets()); n != 1 {
		t.Errorf("bullets = %d while reloading, want 1", n)
	}
}

func TestGameCountsDeaths(t *testing.T) {
	g := newTestGame(t, testConfig(), 9)
	g.player.SetHealth(0)

	g.Step(core.NewInputFrame())
	if d := g.State().Deaths; d != 1 {
		t.Errorf("Deaths = %d, want 1", d)
	}
	p := g.Player()
	if p.X != p.SpawnX || p.Y != p.SpawnY {
		t.Errorf("player at (%v, %v), want spawn (%v, %v)", p.X, p.Y, p.SpawnX, p.SpawnY)
	}
}

func TestGameWinsOnLab(t *testing.T) {
	g := newTestGame(t, testConfig(), 11)
	grid := g.Grid()

	col := grid.Width() / 2
	top := grid.Height() - 2
	for grid.At(top-1, col).Lab() {
		top--
	}
	if !grid.At(top, col).Lab() {
		t.Fatalf("no lab under column %d", col)
	}
	g.player.Place(float64(col)*40+5, float64(top)*40-30.5)

	in := core.NewInputFrame()
	for i := 0; i < 60 && !g.State().GameOver; i++ {
		g.Step(in)
	}
	state := g.State()
	if !state.Won || !state.GameOver {
		t.Fatalf("state = %+v, want a won run", state)
	}
	if state.Score < top-1 {
		t.Errorf("Score = %d, want at least %d", state.Score, top-1)
	}

	ticks := state.Ticks
	g.Step(in)
	if g.State().Ticks != ticks {
		t.Error("game kept running after the run was won")
	}
}

func TestGameLiquidsConserved(t *testing.T) {
	g := newTestGame(t, testConfig(), 21)
	acid := g.Grid().Count(world.Acid)
	water := g.Grid().Count(world.Water)

	in := core.NewInputFrame()
	for i := 0; i < 500; i++ {
		g.Step(in)
	}
	if got := g.Grid().Count(world.Acid); got != acid {
		t.Errorf("acid = %d, want %d", got, acid)
	}
	if got := g.Grid().Count(world.Water); got != water {
		t.Errorf("water = %d, want %d", got, water)
	}
	if g.Liquids() != acid+water {
		t.Errorf("tracked liquids = %d, want %d", g.Liquids(), acid+water)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, testConfig(), 42)
	screen := core.NewScreen(60, 20)
	g.Render(screen)

	ax, ay := ScreenAnchor(60, 20)
	if r := screen.GetCell(ax, ay).Rune; r != PlayerChar {
		t.Errorf("anchor cell = %q, want %q", r, PlayerChar)
	}
	if !strings.Contains(screen.Row(0), "Depth") {
		t.Errorf("HUD row = %q, want depth readout", screen.Row(0))
	}
	wide := core.NewScreen(120, 20)
	g.Render(wide)
	if !strings.Contains(wide.Row(0), "Swarm calm") {
		t.Errorf("HUD row = %q, want swarm pressure", wide.Row(0))
	}

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 10, 4, "░░░░"},
		{5, 10, 4, "██░░"},
		{10, 10, 4, "████"},
		{20, 10, 4, "████"},
		{-3, 10, 4, "░░░░"},
		{1, 0, 4, ""},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}
