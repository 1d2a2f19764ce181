package cavern

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/world"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	EnemyChar  = 'M'
	BulletChar = '•'
)

var kindColors = map[world.TileKind]core.Color{
	world.Barrier:    core.ColorDarkGray,
	world.Dirt:       core.ColorBrown,
	world.Stone:      core.ColorGray,
	world.Acid:       core.ColorBrightGreen,
	world.Water:      core.ColorBrightBlue,
	world.LabBlock1:  core.ColorBrightMagenta,
	world.LabBlock2:  core.ColorMagenta,
	world.LabBlock3:  core.ColorBrightCyan,
	world.Stalactite: core.ColorWhite,
	world.Stalagmite: core.ColorWhite,
	world.Bat:        core.ColorRed,
	world.Flower:     core.ColorBrightYellow,
	world.Vine:       core.ColorGreen,
}

// ScreenAnchor returns the screen cell the player is drawn at on a
// width x height screen. Row 0 is the HUD.
func ScreenAnchor(width, height int) (int, int) {
	return width / 2, 1 + (height-1)/2
}

// Render draws the cave around the player, one tile per cell.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.grid == nil {
		return
	}

	t := g.set.params.TileSize
	st := g.player.State()
	cx, cy := st.Box().Center()
	prow, pcol := tileOf(cy, t), tileOf(cx, t)
	ax, ay := ScreenAnchor(dst.Width(), dst.Height())

	toScreen := func(row, col int) (int, int, bool) {
		x, y := col-pcol+ax, row-prow+ay
		return x, y, x >= 0 && x < dst.Width() && y >= 1 && y < dst.Height()
	}

	for y := 1; y < dst.Height(); y++ {
		row := prow + y - ay
		if row < 0 {
			continue
		}
		for x := 0; x < dst.Width(); x++ {
			col := pcol + x - ax
			kind := g.grid.At(row, col)
			if d, ok := g.grid.Decor(row, col); ok {
				kind = d
			}
			dst.SetColored(x, y, kind.Glyph(), kindColors[kind])
		}
	}

	for _, e := range g.swarm.Enemies() {
		if !e.Alive {
			continue
		}
		half := g.set.swarm.Size / 2
		if x, y, ok := toScreen(tileOf(e.Y+half, t), tileOf(e.X+half, t)); ok {
			dst.SetColored(x, y, EnemyChar, core.ColorBrightRed)
		}
	}
	for _, b := range g.gun.Bullets() {
		if x, y, ok := toScreen(tileOf(b.Y, t), tileOf(b.X, t)); ok {
			dst.SetColored(x, y, BulletChar, core.ColorOrange)
		}
	}

	playerColor := core.ColorBrightCyan
	if st.Health < g.set.phys.MaxHealth*0.3 {
		playerColor = core.ColorBrightRed
	}
	dst.SetColored(ax, ay, PlayerChar, playerColor)

	g.drawHUD(dst, st.Health)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
	if g.won {
		g.drawCenteredMessage(dst, "YOU REACHED THE LAB",
			fmt.Sprintf("Deaths: %d  Ticks: %d  |  Press R to restart", g.deaths, g.ticks), core.ColorBrightGreen)
	}
}

func tileOf(v, size float64) int {
	return int(math.Floor(v / size))
}

// drawHUD writes depth progress, health and gun state on row 0.
func (g *Game) drawHUD(dst *core.Screen, health float64) {
	gun := "ready"
	if r := g.player.Reload(); r > 0 {
		gun = fmt.Sprintf("%3d", r)
	}
	hud := fmt.Sprintf(" Depth %3d/%d %s  HP %3.0f  Gun %s  Deaths %d  Swarm %s ",
		g.depth, g.grid.Height(), ProgressBar(g.depth, g.grid.Height(), 12), health, gun, g.deaths, g.Pressure())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// ProgressBar draws done/total as a bar of width cells.
func ProgressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := core.Clamp(done*width/total, 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)
	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
