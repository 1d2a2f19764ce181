package gui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cavern/internal/config"
	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/games/cavern"
)

func newGame(t *testing.T) *cavern.Game {
	t.Helper()
	cfg := config.DefaultCavernConfig()
	cfg.World.Width = 30
	cfg.World.Height = 60
	cfg.Enemies.Count = 0
	g, err := cavern.New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rc := core.DefaultConfig()
	rc.Seed = 4
	g.Reset(rc)
	return g
}

func TestViewportAround(t *testing.T) {
	v := ViewportAround(615, 95, 40, 10, 20)
	if v.Row0 != 2-5 || v.Col0 != 15-10 {
		t.Errorf("viewport = %+v, want top-left (-3, 5)", v)
	}

	x, y := v.World(SubPixels*10, SubPixels*5, 40)
	if x != 600 || y != 80 {
		t.Errorf("World() = (%v, %v), want (600, 80)", x, y)
	}
}

func TestFramePaintsPlayerAndSky(t *testing.T) {
	g := newGame(t)
	p := g.Player()
	cx, cy := p.Box().Center()
	v := ViewportAround(cx, cy, 40, 10, 12)

	f := NewFrame(10, 12)
	if f.W != 12*SubPixels || f.H != 10*SubPixels || len(f.Pix) != 4*f.W*f.H {
		t.Fatalf("frame = %dx%d (%d bytes)", f.W, f.H, len(f.Pix))
	}
	f.Paint(g, v)

	if got := f.At(0, 0); got != skyColor {
		t.Errorf("top-left pixel = %v, want sky above the surface", got)
	}
	wx, wy := cx, cy
	px := int((wx - float64(v.Col0)*40) * SubPixels / 40)
	py := int((wy - float64(v.Row0)*40) * SubPixels / 40)
	if got := f.At(px, py); got != playerColor {
		t.Errorf("pixel under player = %v, want player color", got)
	}
}

func TestFrameFillClips(t *testing.T) {
	f := NewFrame(2, 2)
	f.fill(-5, -5, 100, 100, enemyColor)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if f.At(x, y) != enemyColor {
				t.Fatalf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
}

func TestHUDText(t *testing.T) {
	g := newGame(t)
	hud := HUDText(g)
	if !strings.Contains(hud, "Depth 0/60") || !strings.Contains(hud, "HP 100") {
		t.Errorf("HUDText() = %q", hud)
	}
}
